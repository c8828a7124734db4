// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role tells whether an account belongs to a customer or to a vendor.
// It is fixed at registration and never changes afterwards.
type Role string

const (
	// RoleCustomer is a person handing clothes over to a vendor.
	RoleCustomer Role = "CUSTOMER"

	// RoleVendor is a laundry or dry-cleaning shop.
	RoleVendor Role = "VENDOR"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleVendor
}

// User is a registered PressPay account.
// Password always holds a bcrypt hash and is never serialized.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Role is either CUSTOMER or VENDOR.
	Role Role `json:"role"`

	// Name is the display name shown to the other party.
	Name string `json:"name"`

	// Email is unique across all users and serves as the login key.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-"`

	// Phone is an optional contact number.
	Phone *string `json:"phone,omitempty"`

	// Address is an optional postal address.
	Address *string `json:"address,omitempty"`

	// Rate is the vendor's price per item. Always nil for customers.
	Rate *float64 `json:"rate,omitempty"`

	// CreatedAt is set by the database on insert.
	CreatedAt time.Time `json:"createdAt"`
}

// Identity returns the part of the user that travels inside a session token.
func (u User) Identity() Identity {
	return Identity{
		ID:   u.ID,
		Role: u.Role,
		Name: u.Name,
	}
}

// Identity is the authenticated caller as seen by request handlers.
type Identity struct {
	ID   int64  `json:"id"`
	Role Role   `json:"role"`
	Name string `json:"name"`
}
