package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmixer/unicredit/internal/adapters/otp"
	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/playmixer/unicredit/internal/core/ledger"
	"github.com/playmixer/unicredit/internal/core/marketplace"
	"go.uber.org/zap"
)

var (
	errUnauthorize = errors.New("unauthorized")
	errBadRequest  = errors.New("bad request")

	msgErrorCloseBody = "failed close body request"
	msgInternalError  = "internal server error"
)

var badRequestErrors = []error{
	errBadRequest,
	marketplace.ErrPhoneNotValid,
	marketplace.ErrOTPNotValid,
	marketplace.ErrProfileNotValid,
	marketplace.ErrClassNotValid,
	marketplace.ErrTaskNotValid,
	marketplace.ErrMediaNotValid,
	ledger.ErrInvalidAmount,
	ledger.ErrSameAccount,
}

// statusOf maps a service error to the http status and the message shown
// to the client. Unknown errors are hidden behind a generic message.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, errUnauthorize), errors.Is(err, marketplace.ErrOTPMismatch):
		return http.StatusUnauthorized, "invalid or expired code"
	case errors.Is(err, marketplace.ErrOTPRateLimited):
		return http.StatusTooManyRequests, "too many codes requested, try later"
	case errors.Is(err, marketplace.ErrForbidden):
		return http.StatusForbidden, "action is not allowed"
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient credits"
	case errors.Is(err, ledger.ErrAccountNotFound), errors.Is(err, errstore.ErrNotFoundData):
		return http.StatusNotFound, "not found"
	case errors.Is(err, marketplace.ErrInvalidState):
		return http.StatusConflict, stateMessage(err)
	case errors.Is(err, marketplace.ErrMediaUnavailable),
		errors.Is(err, marketplace.ErrOTPUnavailable),
		errors.Is(err, otp.ErrQueueFull):
		return http.StatusServiceUnavailable, "service temporarily unavailable"
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}
	return http.StatusInternalServerError, msgInternalError
}

func stateMessage(err error) string {
	for _, target := range []error{
		marketplace.ErrAlreadyOwned,
		marketplace.ErrSelfPurchase,
		marketplace.ErrTaskNotOpen,
		marketplace.ErrSelfApplication,
		marketplace.ErrTaskNotInProgress,
		marketplace.ErrNoAssignee,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return marketplace.ErrInvalidState.Error()
}

func (s *Server) abortWithError(c *gin.Context, err error) {
	status, msg := statusOf(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("request_id", c.GetString(headerRequestID)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	} else {
		s.log.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
