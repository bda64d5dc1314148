package errs

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer   = errors.New("Internal server error")
	ErrClient           = errors.New("Bad request")
	ErrProductNotFound  = errors.New("Product not found")
	ErrCartItemNotFound = errors.New("Cart item not found")
	ErrStoreFailure     = errors.New("Store failure")
)

var errorMap = map[error]int{
	ErrInternalServer:   ErrStatusInternalServer,
	ErrClient:           ErrStatusClient,
	ErrProductNotFound:  ErrStatusNotFound,
	ErrCartItemNotFound: ErrStatusNotFound,
	ErrStoreFailure:     ErrStatusInternalServer,
}

// GetErrorStatusCode maps err, or any sentinel it wraps, to an HTTP status.
// Unknown errors are internal errors.
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for sentinel, errStatusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}

// StoreFailure wraps a persistence error so it maps to ErrStoreFailure while
// keeping the driver message.
func StoreFailure(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreFailure, err)
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrCartItemNotFound)
}
