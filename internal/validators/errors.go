package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingFields = errors.New("required fields are missing")
	ErrInvalidRole   = errors.New("role must be CUSTOMER or VENDOR")
	ErrInvalidRate   = errors.New("rate must be a non-negative number")
	ErrInvalidType   = errors.New("type must be GIVEN or RECEIVED")
	ErrInvalidCount  = errors.New("count must be a positive integer")
)
