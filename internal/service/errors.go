package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrForbidden        = errors.New("caller is not a party of the entry")
	ErrInvalidID        = errors.New("invalid entry id")
	ErrVendorRequired   = errors.New("vendorId is required")
	ErrCustomerRequired = errors.New("customerId is required")
	ErrInvalidVendor    = errors.New("vendorId does not name a vendor")
	ErrInvalidCustomer  = errors.New("customerId does not name a customer")
	ErrUnknownRole      = errors.New("caller has an unknown role")

	ErrServiceNameIsNotSpecified = errors.New("service name is not specified")
)
