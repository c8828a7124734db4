// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/press-pay/models"
)

// side captures everything that differs between a customer and a vendor
// acting on clothes entries. It is chosen once per call from the caller's
// role, so the entry service itself has no role conditionals.
type side interface {
	// counterpartRole is the role the other party of an entry must have.
	counterpartRole() models.Role

	// counterpartID picks the other party's id out of a create request.
	counterpartID(request models.CreateEntryRequest) *models.FlexNumber

	// missingCounterpart and invalidCounterpart are the errors reported when
	// the other party's id is absent or does not name a suitable user.
	missingCounterpart() error
	invalidCounterpart() error

	// bind fills both party columns of entry.
	bind(entry *models.ClothesEntry, self, counterpart int64)

	// owns reports whether the caller is the party of entry on this side.
	owns(entry models.ClothesEntry, self int64) bool

	// filter selects the entries visible to the caller.
	filter(self int64) models.EntryFilter
}

func sideOf(role models.Role) (side, error) {
	switch role {
	case models.RoleCustomer:
		return customerSide{}, nil
	case models.RoleVendor:
		return vendorSide{}, nil
	default:
		return nil, ErrUnknownRole
	}
}

type customerSide struct{}

func (customerSide) counterpartRole() models.Role { return models.RoleVendor }

func (customerSide) counterpartID(request models.CreateEntryRequest) *models.FlexNumber {
	return request.VendorID
}

func (customerSide) missingCounterpart() error { return ErrVendorRequired }
func (customerSide) invalidCounterpart() error { return ErrInvalidVendor }

func (customerSide) bind(entry *models.ClothesEntry, self, counterpart int64) {
	entry.CustomerID = self
	entry.VendorID = counterpart
}

func (customerSide) owns(entry models.ClothesEntry, self int64) bool {
	return entry.CustomerID == self
}

func (customerSide) filter(self int64) models.EntryFilter {
	return models.EntryFilter{CustomerID: self}
}

type vendorSide struct{}

func (vendorSide) counterpartRole() models.Role { return models.RoleCustomer }

func (vendorSide) counterpartID(request models.CreateEntryRequest) *models.FlexNumber {
	return request.CustomerID
}

func (vendorSide) missingCounterpart() error { return ErrCustomerRequired }
func (vendorSide) invalidCounterpart() error { return ErrInvalidCustomer }

func (vendorSide) bind(entry *models.ClothesEntry, self, counterpart int64) {
	entry.VendorID = self
	entry.CustomerID = counterpart
}

func (vendorSide) owns(entry models.ClothesEntry, self int64) bool {
	return entry.VendorID == self
}

func (vendorSide) filter(self int64) models.EntryFilter {
	return models.EntryFilter{VendorID: self}
}
