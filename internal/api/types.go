package api

import (
	"encoding/json"
)

// User is an account as returned by the login and users endpoints. Fields the
// client does not model are kept in Extra so they survive a save and reload.
type User struct {
	ID    int                        `json:"id"    yaml:"id"`
	Name  string                     `json:"name"  yaml:"name"`
	Email string                     `json:"email" yaml:"email"`
	Extra map[string]json.RawMessage `json:"-"     yaml:"-"`
}

// UnmarshalJSON decodes the known fields and collects the rest into Extra.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, known := range []string{"id", "name", "email"} {
		delete(all, known)
	}
	if len(all) > 0 {
		p.Extra = all
	}
	*u = User(p)
	return nil
}

// MarshalJSON writes the known fields merged with Extra.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Extra)+3)
	for k, v := range u.Extra {
		out[k] = v
	}
	out["id"] = u.ID
	out["name"] = u.Name
	out["email"] = u.Email
	return json.Marshal(out)
}

// Label is how a user is shown in pickers.
func (u User) Label() string {
	switch {
	case u.Name != "" && u.Email != "":
		return u.Name + " <" + u.Email + ">"
	case u.Name != "":
		return u.Name
	default:
		return u.Email
	}
}

// LoginRequest is the POST /api/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the POST /api/login reply.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// CreateOfferRequest is the POST /api/offers body.
type CreateOfferRequest struct {
	PlanType  string   `json:"plan_type"`
	Additions []string `json:"additions"`
	UserID    int      `json:"user_id"`
	Expired   string   `json:"expired"`
	Price     float64  `json:"price"`
}

// CreateOfferResponse is the POST /api/offers reply.
type CreateOfferResponse struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// UserPage is the GET /api/users reply.
type UserPage struct {
	Data []User `json:"data"`
}
