package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/beer-battle/internal/utils"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:   ErrBadRequest,
	http.StatusUnauthorized: ErrUnauthorized,
	http.StatusForbidden:    ErrForbidden,
	http.StatusNotFound:     ErrNotFound,
}

// mapHTTPError turns a non-2xx document store response into one of the
// package errors, carrying the server's error message.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := responseMessage(resp)

	if err, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", err, msg)
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrServerUnavailable, code, msg)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, code, msg)
}

// responseMessage prefers the "error" field of a JSON error body and falls
// back to the raw body, then to the status text.
func responseMessage(resp *resty.Response) string {
	var body utils.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
