package httperr

import (
	"errors"
	"net/http"
)

// BusinessError carries a stable code for the client. Status is the HTTP
// status it maps to; zero means 400.
type BusinessError struct {
	Code   string
	Status int
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrNotFound is a business error answered with 404.
func ErrNotFound(code string) error {
	return BusinessError{Code: code, Status: http.StatusNotFound}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código, ou "" quando não é erro de negócio.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

func businessStatus(err error) int {
	var be BusinessError
	if errors.As(err, &be) && be.Status != 0 {
		return be.Status
	}
	return http.StatusBadRequest
}
