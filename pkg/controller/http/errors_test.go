package http_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	controller "github.com/opsnexus/opsnexus/pkg/controller/http"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
)

func TestStatusOf(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid credentials", goerr.Wrap(model.ErrInvalidCredentials, "password mismatch"), http.StatusUnauthorized, model.ErrInvalidCredentials.Error()},
		{"revoked", goerr.Wrap(model.ErrTokenRevoked, "revoked"), http.StatusUnauthorized, model.ErrTokenRevoked.Error()},
		{"forbidden", goerr.Wrap(model.ErrForbidden, "viewer"), http.StatusForbidden, model.ErrForbidden.Error()},
		{"bad range", goerr.Wrap(model.ErrInvalidDateRange, "inverted"), http.StatusBadRequest, model.ErrInvalidDateRange.Error()},
		{"rate limited", goerr.Wrap(model.ErrRateLimited, "too fast"), http.StatusTooManyRequests, model.ErrRateLimited.Error()},
		{"digest disabled", goerr.Wrap(model.ErrDigestDisabled, "off"), http.StatusServiceUnavailable, model.ErrDigestDisabled.Error()},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := controller.StatusOf(tc.err)
			gt.Equal(t, tc.status, status)
			gt.Equal(t, tc.message, message)
		})
	}
}
