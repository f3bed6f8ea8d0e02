package marketplace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"github.com/playmixer/unicredit/internal/core/ledger"
	"go.uber.org/zap"
)

type NewTask struct {
	Title       string
	Description string
	Price       int64
}

// CreateTask posts a task. Payment happens on completion; at creation the
// creator only has to hold enough credits right now.
func (m *Marketplace) CreateTask(ctx context.Context, creatorID uint, in NewTask) (*model.Task, error) {
	if !validateTitle(in.Title, in.Description) || in.Price < 0 {
		return nil, ErrTaskNotValid
	}

	creator, err := m.store.GetUserByID(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed getting user `%d`: %w", creatorID, err)
	}
	if creator.Credits < in.Price {
		return nil, fmt.Errorf("%w: task reward %d exceeds balance", ledger.ErrInsufficientFunds, in.Price)
	}

	task := &model.Task{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		CreatorID:   creatorID,
		Status:      model.TaskStateOpen,
	}
	if err := m.store.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed create task: %w", err)
	}

	return task, nil
}

func (m *Marketplace) GetTask(ctx context.Context, taskID uint) (model.Task, error) {
	task, err := m.store.GetTask(ctx, taskID)
	if err != nil {
		return task, fmt.Errorf("failed getting task `%d`: %w", taskID, err)
	}
	return task, nil
}

func (m *Marketplace) ListTasks(ctx context.Context) ([]*model.Task, error) {
	tasks, err := m.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting tasks: %w", err)
	}
	return tasks, nil
}

// ApplyForTask assigns an open task to the applicant.
func (m *Marketplace) ApplyForTask(ctx context.Context, applicantID, taskID uint) error {
	err := m.store.Atomic(ctx, func(tx Tx) error {
		task, err := tx.LockTask(ctx, taskID)
		if err != nil {
			return fmt.Errorf("failed getting task `%d`: %w", taskID, err)
		}
		if !task.Status.CanTransition(model.TaskStateInProgress) {
			return ErrTaskNotOpen
		}
		if task.CreatorID == applicantID {
			return ErrSelfApplication
		}

		from := task.Status
		task.AssigneeID = &applicantID
		task.Status = model.TaskStateInProgress
		if err := m.transition(ctx, tx, &task, from, ErrTaskNotOpen); err != nil {
			return err
		}

		return m.notify(ctx, tx, task.CreatorID, model.NotificationInfo,
			fmt.Sprintf("Someone applied for your task %q", task.Title))
	})
	if err != nil {
		return fmt.Errorf("failed apply for task `%d`: %w", taskID, err)
	}

	m.log.Info("task assigned", zap.Uint("taskID", taskID), zap.Uint("assigneeID", applicantID))
	return nil
}

// CompleteTask pays the assignee from the creator's balance and closes the
// task. An insufficient balance leaves the task in progress.
func (m *Marketplace) CompleteTask(ctx context.Context, requesterID, taskID uint) error {
	unit := m.ledger.Begin()
	err := m.store.Atomic(ctx, func(tx Tx) error {
		task, err := tx.LockTask(ctx, taskID)
		if err != nil {
			return fmt.Errorf("failed getting task `%d`: %w", taskID, err)
		}
		if task.CreatorID != requesterID {
			return ErrForbidden
		}
		if !task.Status.CanTransition(model.TaskStateCompleted) {
			return ErrTaskNotInProgress
		}
		if task.AssigneeID == nil {
			return ErrNoAssignee
		}
		assigneeID := *task.AssigneeID

		if task.Price > 0 {
			err = unit.Transfer(ctx, tx, ledger.Transfer{
				Source:            task.CreatorID,
				Dest:              assigneeID,
				Amount:            task.Price,
				DebitKind:         model.TransactionTaskPayment,
				CreditKind:        model.TransactionTaskEarning,
				DebitDescription:  "Paid for task: " + task.Title,
				CreditDescription: "Earned from task: " + task.Title,
				RelatedID:         &task.ID,
			})
			if err != nil {
				return fmt.Errorf("failed pay for task: %w", err)
			}
		}

		from := task.Status
		task.Status = model.TaskStateCompleted
		if err := m.transition(ctx, tx, &task, from, ErrTaskNotInProgress); err != nil {
			return err
		}

		return m.notify(ctx, tx, assigneeID, model.NotificationSuccess,
			fmt.Sprintf("Task %q completed, you earned %d credits", task.Title, task.Price))
	})
	unit.Settle(err)
	if err != nil {
		return fmt.Errorf("failed complete task `%d`: %w", taskID, err)
	}

	m.log.Info("task completed", zap.Uint("taskID", taskID))
	return nil
}

func (m *Marketplace) transition(ctx context.Context, tx Tx, task *model.Task, from model.TaskStatus, stale error) error {
	err := tx.TransitionTask(ctx, task, from)
	if errors.Is(err, errstore.ErrStateChanged) {
		return stale
	}
	if err != nil {
		return fmt.Errorf("failed update task `%d`: %w", task.ID, err)
	}
	return nil
}
