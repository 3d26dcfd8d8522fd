package errors

import (
	"errors"
	"net/http"
)

var (
	NotFound            = ApiError{http.StatusNotFound, errors.New("not found")}
	Duplicate           = ApiError{http.StatusConflict, errors.New("duplicate")}
	ConstraintViolation = ApiError{http.StatusUnprocessableEntity, errors.New("constraint violation")}
	BadRequest          = ApiError{http.StatusBadRequest, errors.New("bad request")}
	Unauthorized        = ApiError{http.StatusUnauthorized, errors.New("unauthorized")}
	Forbidden           = ApiError{http.StatusForbidden, errors.New("forbidden")}
	InternalServerError = ApiError{http.StatusInternalServerError, errors.New("internal server error")}
)

// ApiError is a backend response status translated to a sentinel the rest of
// the client can match on with errors.Is.
type ApiError struct {
	Code int
	Err  error
}

func (a ApiError) Unwrap() error {
	return a.Err
}

func (a ApiError) Error() string {
	return a.Err.Error()
}

// FromStatusCode maps a non-2xx backend status to one of the sentinels above.
func FromStatusCode(code int) error {
	for _, candidate := range []ApiError{NotFound, Duplicate, ConstraintViolation, BadRequest, Unauthorized, Forbidden, InternalServerError} {
		if candidate.Code == code {
			return candidate
		}
	}
	text := http.StatusText(code)
	if text == "" {
		text = "unexpected status"
	}
	return ApiError{code, errors.New(text)}
}
