package models

import (
	"bytes"
	"encoding/json"
)

// RegisterRequest is the body of POST /auth/register.
//
// Phone, Address and Rate are optional. Rate is only kept for vendors.
// ShopName is accepted for compatibility with existing clients and dropped.
type RegisterRequest struct {
	Role     string `json:"role" validate:"required,oneof=CUSTOMER VENDOR"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`

	Phone    string      `json:"phone,omitempty"`
	Address  string      `json:"address,omitempty"`
	Rate     *FlexNumber `json:"rate,omitempty"`
	ShopName string      `json:"shopName,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateEntryRequest is the body of POST /clothes.
//
// A customer names the vendor in VendorID, a vendor names the customer in
// CustomerID. The caller's own id is taken from the session token.
// A type sent as anything but a JSON string is kept as its raw text, so it
// fails type validation instead of decoding.
type CreateEntryRequest struct {
	Type       string      `json:"type"`
	Count      *FlexNumber `json:"count"`
	CustomerID *FlexNumber `json:"customerId,omitempty"`
	VendorID   *FlexNumber `json:"vendorId,omitempty"`
}

// UpdateEntryRequest is the body of PUT /clothes/{id}.
// Omitted fields keep their current value. Type is decoded the same way as
// in CreateEntryRequest.
type UpdateEntryRequest struct {
	Type  *string     `json:"type,omitempty"`
	Count *FlexNumber `json:"count,omitempty"`
}

func (r *CreateEntryRequest) UnmarshalJSON(b []byte) error {
	type plain CreateEntryRequest
	aux := struct {
		*plain
		Type json.RawMessage `json:"type"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	entryType, err := looseString(aux.Type)
	if err != nil {
		return err
	}
	r.Type = entryType
	return nil
}

func (r *UpdateEntryRequest) UnmarshalJSON(b []byte) error {
	type plain UpdateEntryRequest
	aux := struct {
		*plain
		Type json.RawMessage `json:"type"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	r.Type = nil
	if isNull(aux.Type) {
		return nil
	}
	entryType, err := looseString(aux.Type)
	if err != nil {
		return err
	}
	r.Type = &entryType
	return nil
}

// looseString returns the content of a JSON string, "" for an absent or
// null value and the raw text of any other value.
func looseString(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return "", nil
	}
	if raw[0] != '"' {
		return string(raw), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
