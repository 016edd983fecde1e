package rest

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forumapi/forum-api/domain"
)

func TestGetStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{nil, http.StatusOK},
		{&domain.ValidationError{Entity: domain.EntityRegisterComment, Field: "content", Kind: domain.ErrMissingProperty}, http.StatusBadRequest},
		{fmt.Errorf("like on comment comment-1: %w", domain.ErrInvariant), http.StatusBadRequest},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{fmt.Errorf("comment comment-1: %w", domain.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("thread thread-1: %w", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrNotImplemented, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, getStatusCode(tc.err), "%v", tc.err)
	}
}
