package models

import (
	"net/url"
	"strings"
)

// SearchCriteria is the identity filter sent to the directory.
// Any subset of the fields may be empty, including all of them.
type SearchCriteria struct {
	Name    string `json:"name,omitempty"`
	Surname string `json:"surname,omitempty"`
	Email   string `json:"email,omitempty"`
}

// NewSearchCriteria builds criteria from raw input, trimming every field.
func NewSearchCriteria(name, surname, email string) SearchCriteria {
	return SearchCriteria{
		Name:    strings.TrimSpace(name),
		Surname: strings.TrimSpace(surname),
		Email:   strings.TrimSpace(email),
	}
}

// Normalize returns a trimmed copy.
func (c SearchCriteria) Normalize() SearchCriteria {
	return NewSearchCriteria(c.Name, c.Surname, c.Email)
}

// IsEmpty reports whether no field is set.
func (c SearchCriteria) IsEmpty() bool {
	return c.Name == "" && c.Surname == "" && c.Email == ""
}

// HasIdentity reports whether all three fields needed to create a customer are present.
func (c SearchCriteria) HasIdentity() bool {
	return c.Name != "" && c.Surname != "" && c.Email != ""
}

// QueryValues encodes the non-empty fields as query parameters.
func (c SearchCriteria) QueryValues() url.Values {
	values := url.Values{}
	if c.Name != "" {
		values.Set("name", c.Name)
	}
	if c.Surname != "" {
		values.Set("surname", c.Surname)
	}
	if c.Email != "" {
		values.Set("email", c.Email)
	}
	return values
}
