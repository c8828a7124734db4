package validators

import (
	"context"
	"math"

	"github.com/MKhiriev/press-pay/models"
)

// Field names accepted by EntryValidator.Validate.
const (
	// MaxCount is the largest count the clothes_entries.count INTEGER
	// column can hold.
	MaxCount = math.MaxInt32

	// FieldRequired checks that type and count are present.
	FieldRequired = "required"

	// FieldType checks that type is GIVEN or RECEIVED.
	FieldType = "type"

	// FieldCount checks that count is an integer within [1, MaxCount].
	FieldCount = "count"
)

// EntryValidator checks clothes entry bodies.
//
// For a create all of FieldRequired, FieldType and FieldCount are checked,
// in that order. For an update only the fields present in the body are
// checked: an empty type or a null count leaves the stored value alone.
type EntryValidator struct{}

// NewEntryValidator constructs an EntryValidator.
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

// Validate accepts models.CreateEntryRequest and models.UpdateEntryRequest
// by value or by pointer.
func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateEntryRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateEntryRequest:
		return v.validateCreate(*value, fields...)

	case models.UpdateEntryRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateEntryRequest:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateCreate(request models.CreateEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldType, FieldCount}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if request.Type == "" || !request.Count.Present() {
				return ErrMissingFields
			}
		case FieldType:
			if !models.EntryType(request.Type).IsValid() {
				return ErrInvalidType
			}
		case FieldCount:
			if !request.Count.Present() {
				return ErrInvalidCount
			}
			if err := validateCount(*request.Count); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validateUpdate(request models.UpdateEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldCount}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if request.Type != nil && *request.Type != "" && !models.EntryType(*request.Type).IsValid() {
				return ErrInvalidType
			}
		case FieldCount:
			if request.Count == nil {
				continue
			}
			// an explicit empty string is a value, not an omission
			if err := validateCount(*request.Count); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateCount(count models.FlexNumber) error {
	n, err := count.Int()
	if err != nil || n <= 0 || n > MaxCount {
		return ErrInvalidCount
	}
	return nil
}
