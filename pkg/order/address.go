package order

import "strings"

// Address is a postal address attached to an order, either natively or via an
// annotation snapshot written by an upstream process. Email is only populated
// on billing addresses.
type Address struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Usable reports whether the address carries the minimum fields required to
// appear in customer-facing output: address line 1, city, postcode, country.
func (a Address) Usable() bool {
	return strings.TrimSpace(a.Address1) != "" &&
		strings.TrimSpace(a.City) != "" &&
		strings.TrimSpace(a.Postcode) != "" &&
		strings.TrimSpace(a.Country) != ""
}

// IsZero reports whether every field of the address is empty.
func (a Address) IsZero() bool {
	return a == Address{}
}

// FullName joins the first and last name, skipping empty parts.
func (a Address) FullName() string {
	parts := make([]string, 0, 2)
	if a.FirstName != "" {
		parts = append(parts, a.FirstName)
	}
	if a.LastName != "" {
		parts = append(parts, a.LastName)
	}
	return strings.Join(parts, " ")
}
