package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{BadRequest("bad", nil), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Status())
		})
	}
}

func TestAsThroughWrapping(t *testing.T) {
	cause := errors.New("driver exploded")
	err := fmt.Errorf("service: %w", NotFound("card not found").Wrap(cause))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestInternalHidesCause(t *testing.T) {
	err := Internal(errors.New("connection refused"))
	assert.Equal(t, "internal server error", err.Message)
	assert.Contains(t, err.Error(), "connection refused")
}
