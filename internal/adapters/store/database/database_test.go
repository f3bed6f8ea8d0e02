package database

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"github.com/playmixer/unicredit/internal/core/marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	s, err := New(context.Background(), &Config{MaxOpenConns: 1}, Dialector(sqlite.Open(dsn)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.CloseDB() })
	return s
}

func TestStore_CreateUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user, err := s.CreateUser(ctx, "+10000000001")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Zero(t, user.Credits)
	assert.False(t, user.IsOnboarded)

	_, err = s.CreateUser(ctx, "+10000000001")
	assert.ErrorIs(t, err, errstore.ErrPhoneNotUnique)

	got, err := s.GetUserByPhone(ctx, "+10000000001")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)
}

func TestUnit_DebitIsGuarded(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	user, err := s.CreateUser(ctx, "+10000000001")
	require.NoError(t, err)

	err = s.Atomic(ctx, func(tx marketplace.Tx) error {
		if err := tx.Credit(ctx, user.ID, 10); err != nil {
			return err
		}
		ok, err := tx.Debit(ctx, user.ID, 11)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = tx.Debit(ctx, user.ID, 10)
		require.NoError(t, err)
		assert.True(t, ok)
		return nil
	})
	require.NoError(t, err)

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Credits)
}

func TestUnit_CreditMissingAccount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Atomic(ctx, func(tx marketplace.Tx) error {
		return tx.Credit(ctx, 404, 10)
	})
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)

	err = s.Atomic(ctx, func(tx marketplace.Tx) error {
		_, err := tx.LockAccount(ctx, 404)
		return err
	})
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)
}

func TestStore_AtomicRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	user, err := s.CreateUser(ctx, "+10000000001")
	require.NoError(t, err)

	failure := errors.New("stop")
	err = s.Atomic(ctx, func(tx marketplace.Tx) error {
		if err := tx.Credit(ctx, user.ID, 25); err != nil {
			return err
		}
		if err := tx.AppendTransactions(ctx, &model.Transaction{UserID: user.ID, Amount: 25}); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Credits)

	txs, err := s.ListTransactions(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestUnit_AddClassPurchaseTwice(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	class := &model.Class{Title: "Go", Department: "CS", InstructorID: 1, Price: 10}
	require.NoError(t, s.CreateClass(ctx, class))

	err := s.Atomic(ctx, func(tx marketplace.Tx) error {
		return tx.AddClassPurchase(ctx, class.ID, 2)
	})
	require.NoError(t, err)

	err = s.Atomic(ctx, func(tx marketplace.Tx) error {
		return tx.AddClassPurchase(ctx, class.ID, 2)
	})
	assert.ErrorIs(t, err, errstore.ErrAlreadyPurchased)

	err = s.Atomic(ctx, func(tx marketplace.Tx) error {
		locked, err := tx.LockClass(ctx, class.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{2}, locked.PurchasedBy())
		return nil
	})
	require.NoError(t, err)
}

func TestUnit_TransitionTask(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	task := &model.Task{Title: "Notes", CreatorID: 1, Price: 5, Status: model.TaskStateOpen}
	require.NoError(t, s.CreateTask(ctx, task))

	assignee := uint(2)
	err := s.Atomic(ctx, func(tx marketplace.Tx) error {
		locked, err := tx.LockTask(ctx, task.ID)
		if err != nil {
			return err
		}
		locked.Status = model.TaskStateInProgress
		locked.AssigneeID = &assignee
		return tx.TransitionTask(ctx, &locked, model.TaskStateOpen)
	})
	require.NoError(t, err)

	err = s.Atomic(ctx, func(tx marketplace.Tx) error {
		stale := *task
		stale.Status = model.TaskStateInProgress
		return tx.TransitionTask(ctx, &stale, model.TaskStateOpen)
	})
	assert.ErrorIs(t, err, errstore.ErrStateChanged)

	got, err := s.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStateInProgress, got.Status)
	require.NotNil(t, got.AssigneeID)
	assert.Equal(t, assignee, *got.AssigneeID)
}

func TestUnit_MarkOnboarded(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	user, err := s.CreateUser(ctx, "+10000000001")
	require.NoError(t, err)

	for i, want := range []bool{true, false} {
		err = s.Atomic(ctx, func(tx marketplace.Tx) error {
			first, err := tx.MarkOnboarded(ctx, user.ID)
			assert.Equal(t, want, first, "call %d", i)
			return err
		})
		require.NoError(t, err)
	}
}

func TestStore_ListClassesByDepartment(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.CreateClass(ctx, &model.Class{Title: "Go", Department: "CS", InstructorID: 1}))
	require.NoError(t, s.CreateClass(ctx, &model.Class{Title: "Calculus", Department: "Math", InstructorID: 1}))
	require.NoError(t, s.CreateClass(ctx, &model.Class{Title: "Rust", Department: "CS", InstructorID: 1}))

	all, err := s.ListClasses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Rust", all[0].Title)

	cs, err := s.ListClasses(ctx, "CS")
	require.NoError(t, err)
	require.Len(t, cs, 2)
	for _, class := range cs {
		assert.Equal(t, "CS", class.Department)
	}
}

func TestStore_MarkNotificationRead(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	notification := &model.Notification{UserID: 1, Kind: model.NotificationInfo, Message: "hi"}
	require.NoError(t, s.Atomic(ctx, func(tx marketplace.Tx) error {
		return tx.AddNotification(ctx, notification)
	}))

	assert.ErrorIs(t, s.MarkNotificationRead(ctx, 2, notification.ID), errstore.ErrNotFoundData)
	require.NoError(t, s.MarkNotificationRead(ctx, 1, notification.ID))

	list, err := s.ListNotifications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)
}

func TestStore_PreloadsPeople(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	instructor, err := s.CreateUser(ctx, "+10000000001")
	require.NoError(t, err)
	student, err := s.CreateUser(ctx, "+10000000002")
	require.NoError(t, err)
	err = s.Atomic(ctx, func(tx marketplace.Tx) error {
		return tx.UpdateProfile(ctx, instructor.ID, model.Profile{Name: "Ann", Department: "Math", ClassName: "M-1"})
	})
	require.NoError(t, err)

	class := &model.Class{Title: "Calculus", Department: "Math", InstructorID: instructor.ID}
	require.NoError(t, s.CreateClass(ctx, class))
	got, err := s.GetClass(ctx, class.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Instructor)
	assert.Equal(t, "Ann", got.Instructor.Name)
	assert.Equal(t, "M-1", got.Instructor.ClassName)

	task := &model.Task{Title: "Notes", CreatorID: instructor.ID, AssigneeID: &student.ID, Status: model.TaskStateInProgress}
	require.NoError(t, s.CreateTask(ctx, task))
	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Creator)
	assert.Equal(t, "Ann", tasks[0].Creator.Name)
	require.NotNil(t, tasks[0].Assignee)
	assert.Equal(t, student.ID, tasks[0].Assignee.ID)
}
