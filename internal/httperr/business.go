package httperr

import "errors"

// BusinessError is a rule violation the caller can fix; handlers map its
// Code to a 4xx response.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

func IsBusiness(err error, code string) bool {
	if be, ok := AsBusiness(err); ok {
		return be.Code == code
	}
	return false
}
