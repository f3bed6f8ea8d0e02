package rest

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/playmixer/unicredit/internal/adapters/otp"
	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/playmixer/unicredit/internal/core/ledger"
	"github.com/playmixer/unicredit/internal/core/marketplace"
	"github.com/stretchr/testify/assert"
)

func Test_statusOf(t *testing.T) {
	tests := []struct {
		err    error
		name   string
		msg    string
		status int
	}{
		{
			name:   "otp mismatch",
			err:    fmt.Errorf("login: %w", marketplace.ErrOTPMismatch),
			status: http.StatusUnauthorized,
			msg:    "invalid or expired code",
		},
		{
			name:   "insufficient funds",
			err:    fmt.Errorf("purchase: %w", ledger.ErrInsufficientFunds),
			status: http.StatusPaymentRequired,
			msg:    "insufficient credits",
		},
		{
			name:   "already owned",
			err:    fmt.Errorf("purchase: %w", marketplace.ErrAlreadyOwned),
			status: http.StatusConflict,
			msg:    marketplace.ErrAlreadyOwned.Error(),
		},
		{
			name:   "not found",
			err:    fmt.Errorf("get: %w", errstore.ErrNotFoundData),
			status: http.StatusNotFound,
			msg:    "not found",
		},
		{
			name:   "media down",
			err:    fmt.Errorf("%w: timeout", marketplace.ErrMediaUnavailable),
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "otp queue full",
			err:    fmt.Errorf("failed send otp: %w", otp.ErrQueueFull),
			status: http.StatusServiceUnavailable,
			msg:    "service temporarily unavailable",
		},
		{
			name:   "validation",
			err:    marketplace.ErrTaskNotValid,
			status: http.StatusBadRequest,
			msg:    marketplace.ErrTaskNotValid.Error(),
		},
		{
			name:   "unknown",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
			msg:    msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusOf(tt.err)
			assert.Equal(t, tt.status, status)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, msg)
			}
		})
	}
}
