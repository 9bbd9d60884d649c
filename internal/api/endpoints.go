package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/wexinc/offerdesk/internal/dashboard"
	"github.com/wexinc/offerdesk/internal/offers"
)

// Login exchanges credentials for a token and the user record.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListOffers fetches one page of offers. The window's zero-based page is sent
// as the 1-based page parameter.
func (c *Client) ListOffers(ctx context.Context, w offers.Window) (offers.Page, error) {
	var page offers.Page
	err := c.do(ctx, http.MethodGet, "/api/offers", pageQuery(w.WirePage(), w.PerPage), nil, &page)
	return page, err
}

// CreateOffer submits a new offer.
func (c *Client) CreateOffer(ctx context.Context, req CreateOfferRequest) (*CreateOfferResponse, error) {
	if req.Additions == nil {
		req.Additions = []string{}
	}
	var resp CreateOfferResponse
	if err := c.do(ctx, http.MethodPost, "/api/offers", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListUsers fetches one page of users. page is 1-based.
func (c *Client) ListUsers(ctx context.Context, page, perPage int) ([]User, error) {
	var resp UserPage
	if err := c.do(ctx, http.MethodGet, "/api/users", pageQuery(page, perPage), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Summary fetches the dashboard metric totals for period.
func (c *Client) Summary(ctx context.Context, period dashboard.Period) (dashboard.Summary, error) {
	var s dashboard.Summary
	err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", url.Values{"filter": {string(period)}}, nil, &s)
	return s, err
}

// Stats fetches the dashboard chart series for period.
func (c *Client) Stats(ctx context.Context, period dashboard.Period) (dashboard.Stats, error) {
	var s dashboard.Stats
	err := c.do(ctx, http.MethodGet, "/api/dashboard/stat", url.Values{"filter": {string(period)}}, nil, &s)
	return s, err
}

func pageQuery(page, perPage int) url.Values {
	return url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}
}
