// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntryType is the direction in which clothes moved.
type EntryType string

const (
	// EntryGiven means the customer handed clothes to the vendor.
	EntryGiven EntryType = "GIVEN"

	// EntryReceived means the vendor returned clothes to the customer.
	EntryReceived EntryType = "RECEIVED"
)

// IsValid reports whether t is GIVEN or RECEIVED.
func (t EntryType) IsValid() bool {
	return t == EntryGiven || t == EntryReceived
}

// ClothesEntry records a number of items exchanged between one customer and
// one vendor. Both CustomerID and VendorID are always set.
type ClothesEntry struct {
	ID         int64     `json:"id"`
	Type       EntryType `json:"type"`
	Count      int64     `json:"count"`
	CustomerID int64     `json:"customerId"`
	VendorID   int64     `json:"vendorId"`

	// Date is assigned by the database when the entry is created.
	Date time.Time `json:"date"`
}

// EntryUpdate describes a partial update of a clothes entry.
// Nil fields are left untouched.
type EntryUpdate struct {
	ID    int64
	Type  *EntryType
	Count *int64
}

// IsEmpty reports whether the update changes nothing.
func (u EntryUpdate) IsEmpty() bool {
	return u.Type == nil && u.Count == nil
}

// EntryFilter selects the entries a user is allowed to see.
// Exactly one of the two fields is expected to be non-zero.
type EntryFilter struct {
	CustomerID int64
	VendorID   int64
}
