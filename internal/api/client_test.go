package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wexinc/offerdesk/internal/dashboard"
	apperrors "github.com/wexinc/offerdesk/internal/errors"
	"github.com/wexinc/offerdesk/internal/logging"
	"github.com/wexinc/offerdesk/internal/offers"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithLogger(logging.NewNoop())}, opts...)
	c, err := NewClient(srv.URL, opts...)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a url"} {
		if _, err := NewClient(raw); !errors.Is(err, apperrors.ErrConfig) {
			t.Errorf("NewClient(%q) error = %v, want config error", raw, err)
		}
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c, err := NewClient("https://api.example.com/")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if c.BaseURL() != "https://api.example.com" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
}

func TestClient_SendsHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{"data":[]}`)
	}, WithTokenSource(staticToken("tok-123")))
	c.newID = func() string { return "req-1" }

	if _, err := c.ListUsers(context.Background(), 1, 5); err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if got.Get("Authorization") != "Bearer tok-123" {
		t.Errorf("Authorization = %q", got.Get("Authorization"))
	}
	if got.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q", got.Get("Accept"))
	}
	if got.Get("X-Request-ID") != "req-1" {
		t.Errorf("X-Request-ID = %q", got.Get("X-Request-ID"))
	}
	if got.Get("Content-Type") != "" {
		t.Errorf("Content-Type on GET = %q, want empty", got.Get("Content-Type"))
	}
}

func TestClient_NoAuthorizationWithoutToken(t *testing.T) {
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"data":[]}`)
	}, WithTokenSource(staticToken("")))

	if _, err := c.ListUsers(context.Background(), 1, 5); err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if auth != "" {
		t.Errorf("Authorization = %q, want none", auth)
	}
}

func TestClient_SetTokenSource(t *testing.T) {
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"data":[]}`)
	})
	c.SetTokenSource(staticToken("late"))

	if _, err := c.ListUsers(context.Background(), 1, 5); err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if auth != "Bearer late" {
		t.Errorf("Authorization = %q", auth)
	}
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   error
		wantServer string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Unauthenticated."}`, apperrors.ErrAuth, "Unauthenticated."},
		{"not found", http.StatusNotFound, ``, apperrors.ErrNotFound, ""},
		{"unprocessable", http.StatusUnprocessableEntity, `{"message":"The price field is required."}`, apperrors.ErrValidation, "The price field is required."},
		{"server error", http.StatusInternalServerError, `<html>oops</html>`, apperrors.ErrAPI, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.ListUsers(context.Background(), 1, 5)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("error = %v, want kind %v", err, tt.wantKind)
			}
			appErr, ok := apperrors.As(err)
			if !ok {
				t.Fatalf("error %T is not an AppError", err)
			}
			if appErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", appErr.Status, tt.status)
			}
			if appErr.Details["server_message"] != tt.wantServer {
				t.Errorf("server_message = %q, want %q", appErr.Details["server_message"], tt.wantServer)
			}
		})
	}
}

func TestClient_DecodeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":`)
	})

	_, err := c.ListUsers(context.Background(), 1, 5)
	if !errors.Is(err, apperrors.ErrAPI) {
		t.Fatalf("error = %v, want api error", err)
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, WithLogger(logging.NewNoop()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	_, err = c.ListUsers(context.Background(), 1, 5)
	if !errors.Is(err, apperrors.ErrNetwork) {
		t.Fatalf("error = %v, want network error", err)
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(20*time.Millisecond))
	defer close(release)

	_, err := c.ListUsers(context.Background(), 1, 5)
	if !errors.Is(err, apperrors.ErrTimeout) {
		t.Fatalf("error = %v, want timeout error", err)
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("error = %q, want timed out message", err.Error())
	}
}

func TestClient_Cancelled(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.ListUsers(ctx, 1, 5)
	if !errors.Is(err, apperrors.ErrTimeout) {
		t.Fatalf("error = %v, want timeout kind", err)
	}
	if !strings.Contains(err.Error(), "cancelled") {
		t.Errorf("error = %q, want cancelled message", err.Error())
	}
}

func TestClient_LogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[]}`)
	}, WithLogger(logging.NewWithWriter(&buf, logging.LevelDebug, false)))
	c.newID = func() string { return "req-42" }

	if _, err := c.ListUsers(context.Background(), 1, 5); err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if !strings.Contains(buf.String(), "request_id=req-42") {
		t.Errorf("log = %q, want request id", buf.String())
	}
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		var body LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Email != "a@b.com" || body.Password != "secret" {
			t.Errorf("body = %+v", body)
		}
		_, _ = io.WriteString(w, `{"user":{"id":7,"name":"Ann","email":"a@b.com","role":"admin"},"token":"jwt"}`)
	})

	resp, err := c.Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token != "jwt" || resp.User.ID != 7 || resp.User.Name != "Ann" {
		t.Errorf("resp = %+v", resp)
	}
	if string(resp.User.Extra["role"]) != `"admin"` {
		t.Errorf("Extra[role] = %s", resp.User.Extra["role"])
	}
}

func TestListOffers_SendsOneBasedPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/offers" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "3" || q.Get("per_page") != "10" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `{
			"data":[{"id":1,"user_name":"Ann","email":"a@b.com","jobTitle":"CTO","type":"monthly","status":"accepted","price":10}],
			"links":{"first":"f","last":"l","prev":null,"next":"n"},
			"meta":{"current_page":3,"from":21,"last_page":4,"per_page":10,"to":21,"total":31}
		}`)
	})

	page, err := c.ListOffers(context.Background(), offers.Window{Page: 2, PerPage: 10})
	if err != nil {
		t.Fatalf("ListOffers() error = %v", err)
	}
	if len(page.Data) != 1 || page.Data[0].UserName != "Ann" || page.Data[0].JobTitle != "CTO" {
		t.Errorf("data = %+v", page.Data)
	}
	if page.Meta.Total != 31 {
		t.Errorf("total = %d", page.Meta.Total)
	}
	if page.Links.Prev != nil || page.Links.Next == nil {
		t.Errorf("links = %+v", page.Links)
	}
}

func TestCreateOffer(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/offers" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	})

	resp, err := c.CreateOffer(context.Background(), CreateOfferRequest{
		PlanType: "monthly",
		UserID:   4,
		Expired:  "2026-12-31",
		Price:    99.5,
	})
	if err != nil {
		t.Fatalf("CreateOffer() error = %v", err)
	}
	if resp.Message != "ok" {
		t.Errorf("Message = %q", resp.Message)
	}
	additions, ok := body["additions"].([]any)
	if !ok || len(additions) != 0 {
		t.Errorf("additions = %#v, want empty list", body["additions"])
	}
	if body["plan_type"] != "monthly" || body["user_id"] != float64(4) || body["price"] != 99.5 {
		t.Errorf("body = %v", body)
	}
}

func TestSummaryAndStats_SendPeriodFilter(t *testing.T) {
	var filters []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		filters = append(filters, r.URL.Query().Get("filter"))
		switch r.URL.Path {
		case "/api/dashboard/summary":
			_, _ = io.WriteString(w, `{"current":{"active_users":1200,"clicks":30,"appearances":5},"previous":{"active_users":1000,"clicks":0,"appearances":5}}`)
		case "/api/dashboard/stat":
			_, _ = io.WriteString(w, `{"website_visits":{"sunday":{"desktop":1,"mobile":2}},"offers_sent":{"sunday":3}}`)
		default:
			t.Errorf("path = %s", r.URL.Path)
		}
	})

	s, err := c.Summary(context.Background(), dashboard.PeriodPrevWeek)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if s.Current.ActiveUsers != 1200 || s.Previous.ActiveUsers != 1000 {
		t.Errorf("summary = %+v", s)
	}
	st, err := c.Stats(context.Background(), dashboard.PeriodPrevWeek)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(st.WebsiteVisits) != 1 || st.OffersSent[0].Count != 3 {
		t.Errorf("stats = %+v", st)
	}
	for _, f := range filters {
		if f != "prev-week" {
			t.Errorf("filter = %q, want prev-week", f)
		}
	}
}

func TestClient_SatisfiesDashboardSource(t *testing.T) {
	var _ dashboard.Source = (*Client)(nil)
}
