package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/shopman/models"
)

// statusErrors maps the statuses of the Remote Authority contract to
// adapter errors. Other non-2xx statuses become [ErrUnexpectedStatus].
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())
	if target, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", target, message)
	}

	if message == "" {
		message = http.StatusText(status)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, message)
}

// errorMessage extracts the text of an {"error": "..."} body, falling back
// to the raw body.
func errorMessage(raw []byte) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}
