package domain

import "strings"

// Customer is the single domain entity: one row in the customer table.
// The uuid attribute is the table's primary key; email and username are
// unique among enabled records and are resolved through secondary indexes.
type Customer struct {
	UUID     string `json:"uuid"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Enabled  bool   `json:"enabled"`
}

// CustomerSearch identifies a customer by one of its unique lookup
// attributes. Username takes precedence when both are set.
type CustomerSearch struct {
	Username string
	Email    string
}

// CustomerList is the shape returned by the list operation. Total always
// equals len(Items); disabled customers are included.
type CustomerList struct {
	Total int        `json:"total"`
	Items []Customer `json:"items"`
}

// Normalize lowercases the case-insensitive identity attributes so that
// lookups and uniqueness checks collide regardless of input casing.
func (c *Customer) Normalize() {
	c.Email = strings.ToLower(c.Email)
	c.Username = strings.ToLower(c.Username)
}

// IsDisabled reports whether the customer has been soft deleted.
func (c Customer) IsDisabled() bool {
	return !c.Enabled
}
