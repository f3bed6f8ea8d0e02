package database

import (
	"context"
	"fmt"

	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// unit is the transaction-bound view handed to Atomic callbacks.
type unit struct {
	db *gorm.DB
}

func (u *unit) forUpdate(ctx context.Context) *gorm.DB {
	return u.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
}

func (u *unit) LockAccount(ctx context.Context, id uint) (model.User, error) {
	user := model.User{}
	if err := u.forUpdate(ctx).First(&user, id).Error; err != nil {
		return user, notFound(err, "failed lock user")
	}
	return user, nil
}

// Debit is a compare-and-set on the balance: the row changes only while it
// still covers the amount.
func (u *unit) Debit(ctx context.Context, id uint, amount int64) (bool, error) {
	result := u.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND credits >= ?", id, amount).
		Update("credits", gorm.Expr("credits - ?", amount))
	if result.Error != nil {
		return false, fmt.Errorf("failed debit balance: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (u *unit) Credit(ctx context.Context, id uint, amount int64) error {
	result := u.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("credits", gorm.Expr("credits + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed credit balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (u *unit) AppendTransactions(ctx context.Context, txs ...*model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	if err := u.db.WithContext(ctx).Create(txs).Error; err != nil {
		return fmt.Errorf("failed save transactions: %w", err)
	}
	return nil
}

func (u *unit) LockClass(ctx context.Context, classID uint) (model.Class, error) {
	class := model.Class{}
	if err := u.forUpdate(ctx).First(&class, classID).Error; err != nil {
		return class, notFound(err, "failed lock class")
	}
	if err := u.db.WithContext(ctx).Where(&model.ClassPurchase{ClassID: classID}).
		Find(&class.Purchases).Error; err != nil {
		return class, fmt.Errorf("failed get class purchases: %w", err)
	}

	return class, nil
}

func (u *unit) AddClassPurchase(ctx context.Context, classID, userID uint) error {
	purchase := model.ClassPurchase{ClassID: classID, UserID: userID}
	if err := u.db.WithContext(ctx).Create(&purchase).Error; err != nil {
		if isUniqueViolation(err) {
			return errstore.ErrAlreadyPurchased
		}
		return fmt.Errorf("failed save class purchase: %w", err)
	}
	return nil
}

func (u *unit) LockTask(ctx context.Context, taskID uint) (model.Task, error) {
	task := model.Task{}
	if err := u.forUpdate(ctx).First(&task, taskID).Error; err != nil {
		return task, notFound(err, "failed lock task")
	}
	return task, nil
}

// TransitionTask writes the task's status and assignee only if the stored
// status still equals from.
func (u *unit) TransitionTask(ctx context.Context, task *model.Task, from model.TaskStatus) error {
	result := u.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND status = ?", task.ID, from).
		Updates(map[string]any{
			"status":      task.Status,
			"assignee_id": task.AssigneeID,
		})
	if result.Error != nil {
		return fmt.Errorf("failed update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrStateChanged
	}

	return nil
}

func (u *unit) UpdateProfile(ctx context.Context, userID uint, profile model.Profile) error {
	result := u.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"name":       profile.Name,
			"department": profile.Department,
			"class_name": profile.ClassName,
		})
	if result.Error != nil {
		return fmt.Errorf("failed update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

// MarkOnboarded sets the onboarded flag and reports whether this call set it.
func (u *unit) MarkOnboarded(ctx context.Context, userID uint) (bool, error) {
	result := u.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND is_onboarded = ?", userID, false).
		Update("is_onboarded", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed update onboarded flag: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (u *unit) AddNotification(ctx context.Context, notification *model.Notification) error {
	if err := u.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed save notification: %w", err)
	}
	return nil
}
