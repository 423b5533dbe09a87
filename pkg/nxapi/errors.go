package nxapi

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrorNotFound = errors.New("not found")
var ErrorUnauthorized = errors.New("unauthorized")
var ErrorForbidden = errors.New("forbidden")
var ErrorServerError = errors.New("server error")
var ErrorBadRequest = errors.New("bad request")
var ErrorMalformedResponse = errors.New("malformed response")

func errorFromStatusCode(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrorNotFound
	case http.StatusUnauthorized:
		return ErrorUnauthorized
	case http.StatusForbidden:
		return ErrorForbidden
	case http.StatusBadRequest:
		return ErrorBadRequest
	}

	if code/100 == 5 {
		return ErrorServerError
	}

	if code/100 == 2 {
		return nil
	}

	return fmt.Errorf("unexpected status code %d", code)
}
