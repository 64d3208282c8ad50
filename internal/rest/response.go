package rest

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"sareeMarket/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// statusFromError maps the domain error taxonomy to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Amount accepts a JSON number or a numeric string, so a client
// sending `"price": "250"` stores the numeric 250. Anything that does
// not parse is left at zero, mirroring the original API's coercion.
type Amount struct {
	Value float64
	Set   bool
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return nil
	}

	a.Value = v
	a.Set = true

	return nil
}
