package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")

// Client is a rental customer. Cedula is the national identity number and,
// together with email and the optional nautical license number, must be
// unique across clients.
type Client struct {
	ID            string        `json:"id"`
	Email         string        `json:"email"`
	Cedula        string        `json:"cedula"`
	Phone         string        `json:"phone,omitempty"`
	FirstNames    string        `json:"first_names"`
	LastNames     string        `json:"last_names"`
	LicenseNumber string        `json:"license_number,omitempty"`
	Status        AccountStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// FullName joins first and last names for display.
func (c *Client) FullName() string {
	return c.FirstNames + " " + c.LastNames
}
