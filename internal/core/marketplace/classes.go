package marketplace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"github.com/playmixer/unicredit/internal/core/ledger"
	"go.uber.org/zap"
)

type NewClass struct {
	Video       io.Reader
	Title       string
	Description string
	Department  string
	FileName    string
	ContentType string
	Price       int64
}

func (m *Marketplace) CreateClass(ctx context.Context, instructorID uint, in NewClass) (*model.Class, error) {
	if !validateTitle(in.Title, in.Description) || strings.TrimSpace(in.Department) == "" || in.Price < 0 {
		return nil, ErrClassNotValid
	}
	if in.Video == nil {
		return nil, ErrMediaNotValid
	}
	if m.media == nil {
		return nil, ErrMediaUnavailable
	}

	mediaURL, thumbnailURL, err := m.media.Upload(ctx, in.FileName, in.ContentType, in.Video)
	if err != nil {
		return nil, fmt.Errorf("%w: failed upload class video: %w", ErrMediaUnavailable, err)
	}

	class := &model.Class{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Department:   strings.TrimSpace(in.Department),
		Price:        in.Price,
		MediaURL:     mediaURL,
		ThumbnailURL: thumbnailURL,
		InstructorID: instructorID,
	}
	if err := m.store.CreateClass(ctx, class); err != nil {
		return nil, fmt.Errorf("failed create class: %w", err)
	}

	return class, nil
}

func (m *Marketplace) GetClass(ctx context.Context, classID uint) (model.Class, error) {
	class, err := m.store.GetClass(ctx, classID)
	if err != nil {
		return class, fmt.Errorf("failed getting class `%d`: %w", classID, err)
	}
	return class, nil
}

func (m *Marketplace) ListClasses(ctx context.Context, department string) ([]*model.Class, error) {
	classes, err := m.store.ListClasses(ctx, strings.TrimSpace(department))
	if err != nil {
		return nil, fmt.Errorf("failed getting classes: %w", err)
	}
	return classes, nil
}

// PurchaseClass moves the class price from buyer to instructor and grants
// access in a single unit of work.
func (m *Marketplace) PurchaseClass(ctx context.Context, buyerID, classID uint) error {
	unit := m.ledger.Begin()
	err := m.store.Atomic(ctx, func(tx Tx) error {
		class, err := tx.LockClass(ctx, classID)
		if err != nil {
			return fmt.Errorf("failed getting class `%d`: %w", classID, err)
		}
		if class.IsPurchasedBy(buyerID) {
			return ErrAlreadyOwned
		}
		if class.InstructorID == buyerID {
			return ErrSelfPurchase
		}

		if class.Price > 0 {
			err = unit.Transfer(ctx, tx, ledger.Transfer{
				Source:            buyerID,
				Dest:              class.InstructorID,
				Amount:            class.Price,
				DebitKind:         model.TransactionClassPurchase,
				CreditKind:        model.TransactionClassSale,
				DebitDescription:  "Purchased class: " + class.Title,
				CreditDescription: "Sold class: " + class.Title,
				RelatedID:         &class.ID,
			})
			if err != nil {
				return fmt.Errorf("failed pay for class: %w", err)
			}
		}

		if err := tx.AddClassPurchase(ctx, class.ID, buyerID); err != nil {
			if errors.Is(err, errstore.ErrAlreadyPurchased) {
				return ErrAlreadyOwned
			}
			return fmt.Errorf("failed grant class access: %w", err)
		}

		return m.notify(ctx, tx, class.InstructorID, model.NotificationSuccess,
			fmt.Sprintf("Your class %q was purchased for %d credits", class.Title, class.Price))
	})
	unit.Settle(err)
	if err != nil {
		return fmt.Errorf("failed purchase class `%d`: %w", classID, err)
	}

	m.log.Info("class purchased", zap.Uint("classID", classID), zap.Uint("buyerID", buyerID))
	return nil
}
