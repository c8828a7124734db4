package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/press-pay/models"
	"github.com/go-playground/validator/v10"
)

// AuthValidator checks register and login bodies. Presence and the role
// enum are declared as struct tags and evaluated by go-playground/validator.
type AuthValidator struct {
	validate *validator.Validate
}

// NewAuthValidator constructs an AuthValidator.
func NewAuthValidator() Validator {
	return &AuthValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate accepts models.RegisterRequest and models.LoginRequest by value
// or by pointer. Field scoping is not supported.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value)
	case *models.RegisterRequest:
		return v.validateRegister(*value)

	case models.LoginRequest:
		return v.validateStruct(value)
	case *models.LoginRequest:
		return v.validateStruct(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateRegister(request models.RegisterRequest) error {
	if err := v.validateStruct(request); err != nil {
		return err
	}

	if models.Role(request.Role) != models.RoleVendor || !request.Rate.Present() {
		return nil
	}

	rate, err := request.Rate.Float()
	if err != nil || rate < 0 {
		return ErrInvalidRate
	}

	return nil
}

// validateStruct runs the tag rules. A missing field wins over any other
// violation so that clients see missing_fields first.
func (v *AuthValidator) validateStruct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("struct validation failed: %w", err)
	}

	for _, e := range validationErrors {
		if e.Tag() == "required" {
			return ErrMissingFields
		}
	}

	for _, e := range validationErrors {
		if e.Field() == "Role" {
			return ErrInvalidRole
		}
	}

	return fmt.Errorf("field %s failed on the '%s' tag", validationErrors[0].Field(), validationErrors[0].Tag())
}
