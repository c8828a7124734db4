package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/press-pay/internal/service"
	"github.com/MKhiriev/press-pay/internal/store"
	"github.com/MKhiriev/press-pay/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestMapError_TableTest(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{validators.ErrMissingFields, http.StatusBadRequest, "missing_fields"},
		{validators.ErrInvalidRole, http.StatusBadRequest, "invalid_role"},
		{validators.ErrInvalidRate, http.StatusBadRequest, "invalid_rate"},
		{validators.ErrInvalidType, http.StatusBadRequest, "invalid_type"},
		{validators.ErrInvalidCount, http.StatusBadRequest, "invalid_count"},
		{service.ErrInvalidID, http.StatusBadRequest, "invalid_id"},
		{service.ErrVendorRequired, http.StatusBadRequest, "vendor_required"},
		{service.ErrCustomerRequired, http.StatusBadRequest, "customer_required"},
		{service.ErrInvalidVendor, http.StatusBadRequest, "invalid_vendor"},
		{service.ErrInvalidCustomer, http.StatusBadRequest, "invalid_customer"},
		{store.ErrInvalidReference, http.StatusBadRequest, "invalid_reference"},
		{store.ErrEmailAlreadyExists, http.StatusConflict, "email_exists"},
		{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "unauthorized"},
		{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "unauthorized"},
		{service.ErrForbidden, http.StatusForbidden, "forbidden"},
		{store.ErrEntryNotFound, http.StatusNotFound, "not_found"},
		{ErrInvalidJSON, http.StatusBadRequest, "invalid_json"},
		{ErrRequestTimeout, http.StatusGatewayTimeout, "timeout"},
		{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
		{service.ErrTokenCreationFailed, http.StatusInternalServerError, "server_error"},
		{store.ErrExecutingQuery, http.StatusInternalServerError, "server_error"},
		{errors.New("anything"), http.StatusInternalServerError, "server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, got.status)
			assert.Equal(t, tt.wantCode, got.code)

			wrapped := mapError(fmt.Errorf("layer: %w", tt.err))
			assert.Equal(t, got, wrapped, "wrapping must not change the mapping")
		})
	}
}
