package marketplace

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"go.uber.org/zap"
)

// SendOTP issues a one-time code for the phone. In demo mode the code is the
// configured fixed value and nothing is stored.
func (m *Marketplace) SendOTP(ctx context.Context, phone string) error {
	phone, err := normalizePhone(phone)
	if err != nil {
		return err
	}

	if m.cfg.DemoMode {
		m.log.Info("otp requested in demo mode", zap.String("phone", phone))
		return nil
	}
	if m.codes == nil || m.sender == nil {
		return ErrOTPUnavailable
	}

	allowed, err := m.codes.Allow(ctx, phone)
	if err != nil {
		return fmt.Errorf("failed check otp rate limit: %w", err)
	}
	if !allowed {
		return ErrOTPRateLimited
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	hash, err := hashCode(code)
	if err != nil {
		return fmt.Errorf("failed hash otp: %w", err)
	}
	if err := m.codes.Save(ctx, phone, hash, m.cfg.OTPTTL); err != nil {
		return fmt.Errorf("failed save otp: %w", err)
	}
	if err := m.sender.Send(ctx, phone, code); err != nil {
		return fmt.Errorf("failed send otp: %w", err)
	}

	return nil
}

// Login verifies the code and returns the user registered for the phone,
// creating it on first login.
func (m *Marketplace) Login(ctx context.Context, phone, code string) (model.User, error) {
	var user model.User
	phone, err := normalizePhone(phone)
	if err != nil {
		return user, err
	}
	if err := validateOTP(code); err != nil {
		return user, err
	}
	if err := m.verifyOTP(ctx, phone, code); err != nil {
		return user, err
	}

	user, err = m.store.GetUserByPhone(ctx, phone)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errstore.ErrNotFoundData) {
		return user, fmt.Errorf("failed getting user by phone: %w", err)
	}

	user, err = m.store.CreateUser(ctx, phone)
	if errors.Is(err, errstore.ErrPhoneNotUnique) {
		// a concurrent login created it first
		user, err = m.store.GetUserByPhone(ctx, phone)
	}
	if err != nil {
		return user, fmt.Errorf("failed register user: %w", err)
	}
	m.log.Info("user registered", zap.Uint("userID", user.ID))

	return user, nil
}

func (m *Marketplace) verifyOTP(ctx context.Context, phone, code string) error {
	if m.cfg.DemoMode {
		if subtle.ConstantTimeCompare([]byte(code), []byte(m.cfg.DemoOTP)) != 1 {
			return ErrOTPMismatch
		}
		return nil
	}
	if m.codes == nil {
		return ErrOTPUnavailable
	}

	hash, err := m.codes.Take(ctx, phone)
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return ErrOTPMismatch
		}
		return fmt.Errorf("failed load otp: %w", err)
	}
	if !checkCodeHash(code, hash) {
		return ErrOTPMismatch
	}
	return nil
}
