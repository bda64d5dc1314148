package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	testCases := []struct {
		Name     string
		Err      error
		Expected int
	}{
		{Name: "product not found", Err: ErrProductNotFound, Expected: http.StatusNotFound},
		{Name: "cart item not found", Err: ErrCartItemNotFound, Expected: http.StatusNotFound},
		{Name: "client error", Err: ErrClient, Expected: http.StatusBadRequest},
		{Name: "wrapped not found", Err: fmt.Errorf("lookup: %w", ErrProductNotFound), Expected: http.StatusNotFound},
		{Name: "store failure", Err: StoreFailure(errors.New("connection refused")), Expected: http.StatusInternalServerError},
		{Name: "unknown error", Err: errors.New("boom"), Expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, GetErrorStatusCode(tc.Err))
		})
	}
}

func TestStoreFailureKeepsDriverMessage(t *testing.T) {
	err := StoreFailure(errors.New("server selection timeout"))

	assert.ErrorIs(t, err, ErrStoreFailure)
	assert.Contains(t, err.Error(), "server selection timeout")
	assert.Nil(t, StoreFailure(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrCartItemNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("x: %w", ErrProductNotFound)))
	assert.False(t, IsNotFound(ErrStoreFailure))
}
