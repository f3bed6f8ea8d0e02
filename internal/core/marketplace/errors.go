package marketplace

import (
	"errors"
	"fmt"
)

var (
	ErrPhoneNotValid    = errors.New("phone number is not valid")
	ErrOTPNotValid      = errors.New("otp code is not valid")
	ErrOTPMismatch      = errors.New("invalid otp code")
	ErrOTPRateLimited   = errors.New("too many otp requests")
	ErrOTPUnavailable   = errors.New("otp store is not configured")
	ErrProfileNotValid  = errors.New("name, department and class name are required")
	ErrClassNotValid    = errors.New("class fields are not valid")
	ErrTaskNotValid     = errors.New("task fields are not valid")
	ErrMediaNotValid    = errors.New("video payload is required")
	ErrMediaUnavailable = errors.New("media store is unavailable")
	ErrForbidden        = errors.New("only the task creator can complete the task")

	// ErrInvalidState groups every rejected lifecycle transition.
	ErrInvalidState      = errors.New("invalid state")
	ErrAlreadyOwned      = fmt.Errorf("%w: you have already purchased this class", ErrInvalidState)
	ErrSelfPurchase      = fmt.Errorf("%w: you cannot purchase your own class", ErrInvalidState)
	ErrTaskNotOpen       = fmt.Errorf("%w: task is no longer open", ErrInvalidState)
	ErrSelfApplication   = fmt.Errorf("%w: you cannot apply for your own task", ErrInvalidState)
	ErrTaskNotInProgress = fmt.Errorf("%w: task is not in progress", ErrInvalidState)
	ErrNoAssignee        = fmt.Errorf("%w: task has no assignee", ErrInvalidState)
)
