package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/press-pay/internal/service"
	"github.com/MKhiriev/press-pay/internal/store"
	"github.com/MKhiriev/press-pay/internal/validators"
)

// apiError is the client-facing form of an error.
type apiError struct {
	status int
	code   string
}

var errServer = apiError{http.StatusInternalServerError, "server_error"}

// errorTable is checked in order; the first sentinel matched with errors.Is
// wins.
var errorTable = []struct {
	target error
	apiError
}{
	{ErrInvalidJSON, apiError{http.StatusBadRequest, "invalid_json"}},
	{validators.ErrMissingFields, apiError{http.StatusBadRequest, "missing_fields"}},
	{validators.ErrInvalidRole, apiError{http.StatusBadRequest, "invalid_role"}},
	{validators.ErrInvalidRate, apiError{http.StatusBadRequest, "invalid_rate"}},
	{validators.ErrInvalidType, apiError{http.StatusBadRequest, "invalid_type"}},
	{validators.ErrInvalidCount, apiError{http.StatusBadRequest, "invalid_count"}},
	{service.ErrInvalidID, apiError{http.StatusBadRequest, "invalid_id"}},
	{service.ErrVendorRequired, apiError{http.StatusBadRequest, "vendor_required"}},
	{service.ErrCustomerRequired, apiError{http.StatusBadRequest, "customer_required"}},
	{service.ErrInvalidVendor, apiError{http.StatusBadRequest, "invalid_vendor"}},
	{service.ErrInvalidCustomer, apiError{http.StatusBadRequest, "invalid_customer"}},
	{store.ErrInvalidReference, apiError{http.StatusBadRequest, "invalid_reference"}},

	{service.ErrInvalidCredentials, apiError{http.StatusUnauthorized, "invalid_credentials"}},
	{service.ErrTokenIsExpiredOrInvalid, apiError{http.StatusUnauthorized, "unauthorized"}},
	{ErrEmptyAuthorizationHeader, apiError{http.StatusUnauthorized, "unauthorized"}},
	{ErrInvalidAuthorizationHeader, apiError{http.StatusUnauthorized, "unauthorized"}},
	{ErrEmptyToken, apiError{http.StatusUnauthorized, "unauthorized"}},
	{ErrNoIdentity, apiError{http.StatusUnauthorized, "unauthorized"}},

	{service.ErrForbidden, apiError{http.StatusForbidden, "forbidden"}},

	{store.ErrEntryNotFound, apiError{http.StatusNotFound, "not_found"}},
	{ErrRouteNotFound, apiError{http.StatusNotFound, "not_found"}},

	{store.ErrEmailAlreadyExists, apiError{http.StatusConflict, "email_exists"}},

	{ErrRequestTimeout, apiError{http.StatusGatewayTimeout, "timeout"}},
	{context.DeadlineExceeded, apiError{http.StatusGatewayTimeout, "timeout"}},
}

// mapError converts err into a status and a stable code. Unknown errors,
// including every storage and driver failure, become a 500 server_error.
func mapError(err error) apiError {
	for _, e := range errorTable {
		if errors.Is(err, e.target) {
			return e.apiError
		}
	}
	return errServer
}
