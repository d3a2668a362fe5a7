package domain

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type (
	User struct {
		ID          string
		Email       string
		Name        string
		PhoneNumber string
		Role        Role
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}

	UserRecord struct {
		ID          string
		Email       string
		Name        string
		PhoneNumber *string
		Role        Role
		CreatedAt   Timestamp
		UpdatedAt   Timestamp
	}
)

// A ContactChannel is the derived admin messaging link.
//
// When Available is false, Link and Number are empty and Notice
// carries the text shown to the visitor instead.
type ContactChannel struct {
	Available bool
	Number    string
	Link      string
	Notice    string
}
