package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/press-pay/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses and an *APIError otherwise.
// A body that is not an error envelope is reported as its trimmed text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	status, ok := statusErrors[resp.StatusCode()]
	if !ok {
		status = ErrUnexpectedStatus
	}

	var envelope models.ErrorResponse
	code := ""
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error != "" {
		code = envelope.Error
	} else {
		code = strings.TrimSpace(string(resp.Body()))
	}
	if code == "" {
		code = http.StatusText(resp.StatusCode())
	}

	return &APIError{StatusCode: resp.StatusCode(), Code: code, status: status}
}
