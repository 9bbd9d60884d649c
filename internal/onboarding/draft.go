// Package onboarding implements the create-offer form: the draft being edited,
// its validation and its submission.
package onboarding

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/wexinc/offerdesk/internal/api"
	"github.com/wexinc/offerdesk/internal/offers"
)

// Addition tags accepted by the API.
const (
	AdditionRefundable = "refundable"
	AdditionOnDemand   = "on_demand"
	AdditionNegotiable = "negotiable"
)

// Additions returns the allowed addition tags in display order.
func Additions() []string {
	return []string{AdditionRefundable, AdditionOnDemand, AdditionNegotiable}
}

// ExpiryLayout is the expected format of Draft.Expired.
const ExpiryLayout = "2006-01-02"

// Draft is the form as the user is editing it. Price stays text until
// validation so that non-numeric input can be reported.
type Draft struct {
	PlanType  string
	Additions []string
	UserID    int
	Expired   string
	Price     string
}

// NewDraft returns the initial form state.
func NewDraft() Draft {
	return Draft{PlanType: string(offers.PlanMonthly)}
}

// HasAddition reports whether tag is selected.
func (d Draft) HasAddition(tag string) bool {
	return slices.Contains(d.Additions, tag)
}

// ToggleAddition selects or deselects tag, keeping display order.
func (d *Draft) ToggleAddition(tag string) {
	if d.HasAddition(tag) {
		d.Additions = slices.DeleteFunc(slices.Clone(d.Additions), func(a string) bool { return a == tag })
		return
	}
	var next []string
	for _, a := range Additions() {
		if a == tag || d.HasAddition(a) {
			next = append(next, a)
		}
	}
	if !slices.Contains(next, tag) {
		next = append(next, tag)
	}
	d.Additions = next
}

// NextPlan moves the plan selection forward, wrapping around.
func (d *Draft) NextPlan() {
	plans := offers.PlanTypes()
	i := slices.Index(plans, offers.PlanType(d.PlanType))
	d.PlanType = string(plans[(i+1)%len(plans)])
}

// PrevPlan moves the plan selection back, wrapping around.
func (d *Draft) PrevPlan() {
	plans := offers.PlanTypes()
	i := slices.Index(plans, offers.PlanType(d.PlanType))
	if i <= 0 {
		i = len(plans)
	}
	d.PlanType = string(plans[i-1])
}

// Dirty reports whether the draft differs from NewDraft.
func (d Draft) Dirty() bool {
	fresh := NewDraft()
	return d.PlanType != fresh.PlanType ||
		len(d.Additions) > 0 ||
		d.UserID != 0 ||
		strings.TrimSpace(d.Expired) != "" ||
		strings.TrimSpace(d.Price) != ""
}

// payload renders the draft as the JSON value the schema validates. Empty
// fields are omitted so that "required" fires for them.
func (d Draft) payload() map[string]any {
	p := map[string]any{}
	if d.PlanType != "" {
		p["plan_type"] = d.PlanType
	}
	additions := make([]any, 0, len(d.Additions))
	for _, a := range d.Additions {
		additions = append(additions, a)
	}
	p["additions"] = additions
	if d.UserID != 0 {
		p["user_id"] = d.UserID
	}
	if e := strings.TrimSpace(d.Expired); e != "" {
		p["expired"] = e
	}
	if raw := strings.TrimSpace(d.Price); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			p["price"] = f
		} else {
			p["price"] = raw
		}
	}
	return p
}

// Request converts a validated draft into the API body.
func (d Draft) Request() api.CreateOfferRequest {
	price, _ := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	additions := slices.Clone(d.Additions)
	if additions == nil {
		additions = []string{}
	}
	return api.CreateOfferRequest{
		PlanType:  d.PlanType,
		Additions: additions,
		UserID:    d.UserID,
		Expired:   strings.TrimSpace(d.Expired),
		Price:     price,
	}
}
