package marketplace

import (
	"context"
	"fmt"
	"strings"

	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"github.com/playmixer/unicredit/internal/core/ledger"
	"go.uber.org/zap"
)

const welcomeBonusDescription = "Welcome bonus for joining UniCredit!"

func (m *Marketplace) GetProfile(ctx context.Context, userID uint) (model.User, error) {
	user, err := m.store.GetUserByID(ctx, userID)
	if err != nil {
		return user, fmt.Errorf("failed getting user `%d`: %w", userID, err)
	}

	return user, nil
}

// Onboard saves the profile and grants the welcome bonus the first time the
// account is onboarded. The returned flag reports whether the bonus was granted.
func (m *Marketplace) Onboard(ctx context.Context, userID uint, profile model.Profile) (model.User, bool, error) {
	var user model.User
	profile = model.Profile{
		Name:       strings.TrimSpace(profile.Name),
		Department: strings.TrimSpace(profile.Department),
		ClassName:  strings.TrimSpace(profile.ClassName),
	}
	if profile.Name == "" || profile.Department == "" || profile.ClassName == "" {
		return user, false, ErrProfileNotValid
	}

	var granted bool
	unit := m.ledger.Begin()
	err := m.store.Atomic(ctx, func(tx Tx) error {
		if err := tx.UpdateProfile(ctx, userID, profile); err != nil {
			return fmt.Errorf("failed update profile: %w", err)
		}
		var err error
		granted, err = m.grantWelcomeBonus(ctx, tx, unit, userID)
		return err
	})
	unit.Settle(err)
	if err != nil {
		return user, false, fmt.Errorf("failed onboard user `%d`: %w", userID, err)
	}
	if granted {
		m.log.Info("welcome bonus granted", zap.Uint("userID", userID), zap.Int64("amount", m.cfg.WelcomeBonus))
	}

	user, err = m.store.GetUserByID(ctx, userID)
	if err != nil {
		return user, granted, fmt.Errorf("failed getting user `%d`: %w", userID, err)
	}

	return user, granted, nil
}

// grantWelcomeBonus flips the onboarded flag with a conditional update and
// credits the bonus only when this call was the one that flipped it.
func (m *Marketplace) grantWelcomeBonus(ctx context.Context, tx Tx, unit *ledger.Unit, userID uint) (bool, error) {
	first, err := tx.MarkOnboarded(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed mark onboarded: %w", err)
	}
	if !first || m.cfg.WelcomeBonus <= 0 {
		return first, nil
	}

	err = unit.Grant(ctx, tx, ledger.Grant{
		Account:     userID,
		Amount:      m.cfg.WelcomeBonus,
		Kind:        model.TransactionWelcomeBonus,
		Description: welcomeBonusDescription,
	})
	if err != nil {
		return false, fmt.Errorf("failed grant welcome bonus: %w", err)
	}
	message := fmt.Sprintf("You received %d welcome credits", m.cfg.WelcomeBonus)
	if err := m.notify(ctx, tx, userID, model.NotificationSuccess, message); err != nil {
		return false, err
	}

	return true, nil
}

func (m *Marketplace) ListTransactions(ctx context.Context, userID uint) ([]*model.Transaction, error) {
	txs, err := m.store.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting transactions by user: %w", err)
	}
	return txs, nil
}

func (m *Marketplace) ListNotifications(ctx context.Context, userID uint) ([]*model.Notification, error) {
	notifications, err := m.store.ListNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting notifications by user: %w", err)
	}
	return notifications, nil
}

func (m *Marketplace) MarkNotificationRead(ctx context.Context, userID, notificationID uint) error {
	if err := m.store.MarkNotificationRead(ctx, userID, notificationID); err != nil {
		return fmt.Errorf("failed mark notification `%d` read: %w", notificationID, err)
	}
	return nil
}
