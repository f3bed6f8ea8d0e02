package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"github.com/playmixer/unicredit/internal/core/ledger"
	"github.com/playmixer/unicredit/internal/mocks/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRecorder struct {
	transfers map[model.TransactionKind]int64
	failures  map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{
		transfers: map[model.TransactionKind]int64{},
		failures:  map[string]int{},
	}
}

func (r *fakeRecorder) ObserveTransfer(kind model.TransactionKind, amount int64) {
	r.transfers[kind] += amount
}

func (r *fakeRecorder) ObserveFailure(_ model.TransactionKind, reason string) {
	r.failures[reason]++
}

func classTransfer(source, dest uint, amount int64) ledger.Transfer {
	related := uint(42)
	return ledger.Transfer{
		Source:            source,
		Dest:              dest,
		Amount:            amount,
		DebitKind:         model.TransactionClassPurchase,
		CreditKind:        model.TransactionClassSale,
		DebitDescription:  "Purchased class: Go",
		CreditDescription: "Sold class: Go",
		RelatedID:         &related,
	}
}

func TestEngine_Transfer(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := store.NewMockTx(ctrl)
	recorder := newFakeRecorder()
	engine := ledger.New(ledger.Metrics(recorder))

	var written []*model.Transaction
	gomock.InOrder(
		tx.EXPECT().LockAccount(ctx, uint(2)).Return(model.User{ID: 2, Credits: 10}, nil),
		tx.EXPECT().LockAccount(ctx, uint(5)).Return(model.User{ID: 5, Credits: 100}, nil),
		tx.EXPECT().Debit(ctx, uint(5), int64(30)).Return(true, nil),
		tx.EXPECT().Credit(ctx, uint(2), int64(30)).Return(nil),
		tx.EXPECT().AppendTransactions(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, txs ...*model.Transaction) error {
				written = txs
				return nil
			}),
	)

	unit := engine.Begin()
	err := unit.Transfer(ctx, tx, classTransfer(5, 2, 30))
	require.NoError(t, err)
	assert.Empty(t, recorder.transfers)
	unit.Settle(nil)

	require.Len(t, written, 2)
	assert.Equal(t, uint(5), written[0].UserID)
	assert.Equal(t, int64(-30), written[0].Amount)
	assert.Equal(t, model.TransactionClassPurchase, written[0].Kind)
	assert.Equal(t, uint(2), written[1].UserID)
	assert.Equal(t, int64(30), written[1].Amount)
	assert.Equal(t, model.TransactionClassSale, written[1].Kind)
	assert.Equal(t, written[0].Amount, -written[1].Amount)
	assert.Equal(t, *written[0].RelatedID, *written[1].RelatedID)
	assert.Equal(t, int64(30), recorder.transfers[model.TransactionClassPurchase])
}

func TestEngine_TransferRejected(t *testing.T) {
	ctx := context.Background()
	storageErr := errors.New("connection reset")

	tests := []struct {
		name     string
		transfer ledger.Transfer
		prepare  func(tx *store.MockTx)
		want     error
		reason   string
	}{
		{
			name:     "zero amount",
			transfer: classTransfer(1, 2, 0),
			prepare:  func(tx *store.MockTx) {},
			want:     ledger.ErrInvalidAmount,
			reason:   "invalid",
		},
		{
			name:     "same account",
			transfer: classTransfer(3, 3, 10),
			prepare:  func(tx *store.MockTx) {},
			want:     ledger.ErrSameAccount,
			reason:   "invalid",
		},
		{
			name:     "missing destination",
			transfer: classTransfer(1, 9, 10),
			prepare: func(tx *store.MockTx) {
				tx.EXPECT().LockAccount(ctx, uint(1)).Return(model.User{ID: 1, Credits: 50}, nil)
				tx.EXPECT().LockAccount(ctx, uint(9)).Return(model.User{}, errstore.ErrNotFoundData)
			},
			want:   ledger.ErrAccountNotFound,
			reason: "account_not_found",
		},
		{
			name:     "insufficient funds",
			transfer: classTransfer(1, 2, 10),
			prepare: func(tx *store.MockTx) {
				tx.EXPECT().LockAccount(ctx, uint(1)).Return(model.User{ID: 1, Credits: 5}, nil)
				tx.EXPECT().LockAccount(ctx, uint(2)).Return(model.User{ID: 2}, nil)
				tx.EXPECT().Debit(ctx, uint(1), int64(10)).Return(false, nil)
			},
			want:   ledger.ErrInsufficientFunds,
			reason: "insufficient_funds",
		},
		{
			name:     "storage failure on credit",
			transfer: classTransfer(1, 2, 10),
			prepare: func(tx *store.MockTx) {
				tx.EXPECT().LockAccount(ctx, uint(1)).Return(model.User{ID: 1, Credits: 50}, nil)
				tx.EXPECT().LockAccount(ctx, uint(2)).Return(model.User{ID: 2}, nil)
				tx.EXPECT().Debit(ctx, uint(1), int64(10)).Return(true, nil)
				tx.EXPECT().Credit(ctx, uint(2), int64(10)).Return(storageErr)
			},
			want:   ledger.ErrTransferAborted,
			reason: "aborted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tx := store.NewMockTx(ctrl)
			tt.prepare(tx)
			recorder := newFakeRecorder()
			engine := ledger.New(ledger.Metrics(recorder))

			unit := engine.Begin()
			err := unit.Transfer(ctx, tx, tt.transfer)
			assert.ErrorIs(t, err, tt.want)
			unit.Settle(err)
			assert.Equal(t, 1, recorder.failures[tt.reason])
			assert.Empty(t, recorder.transfers)
		})
	}
}

func TestEngine_TransferWrapsStorageError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storageErr := errors.New("disk full")
	tx := store.NewMockTx(ctrl)
	tx.EXPECT().LockAccount(ctx, uint(1)).Return(model.User{ID: 1}, storageErr)

	err := ledger.New().Transfer(ctx, tx, classTransfer(1, 2, 10))
	assert.ErrorIs(t, err, ledger.ErrTransferAborted)
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestEngine_Grant(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := store.NewMockTx(ctrl)
	gomock.InOrder(
		tx.EXPECT().LockAccount(ctx, uint(7)).Return(model.User{ID: 7}, nil),
		tx.EXPECT().Credit(ctx, uint(7), int64(50)).Return(nil),
		tx.EXPECT().AppendTransactions(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, txs ...*model.Transaction) error {
				require.Len(t, txs, 1)
				assert.Equal(t, int64(50), txs[0].Amount)
				assert.Equal(t, model.TransactionWelcomeBonus, txs[0].Kind)
				assert.Nil(t, txs[0].RelatedID)
				return nil
			}),
	)

	err := ledger.New().Grant(ctx, tx, ledger.Grant{
		Account:     7,
		Amount:      50,
		Kind:        model.TransactionWelcomeBonus,
		Description: "welcome",
	})
	assert.NoError(t, err)
}

func TestEngine_GrantRejectsNonPositive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	err := ledger.New().Grant(context.Background(), store.NewMockTx(ctrl), ledger.Grant{Account: 1, Amount: -5})
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}

func TestUnit_SettleRolledBack(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := store.NewMockTx(ctrl)
	tx.EXPECT().LockAccount(ctx, gomock.Any()).Return(model.User{}, nil).Times(3)
	tx.EXPECT().Debit(ctx, uint(5), int64(30)).Return(true, nil)
	tx.EXPECT().Credit(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	tx.EXPECT().AppendTransactions(ctx, gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AppendTransactions(ctx, gomock.Any()).Return(nil)

	recorder := newFakeRecorder()
	unit := ledger.New(ledger.Metrics(recorder)).Begin()
	require.NoError(t, unit.Transfer(ctx, tx, classTransfer(5, 2, 30)))
	require.NoError(t, unit.Grant(ctx, tx, ledger.Grant{Account: 7, Amount: 50, Kind: model.TransactionWelcomeBonus}))

	unit.Settle(errors.New("failed add notification: disk full"))
	assert.Empty(t, recorder.transfers)
	assert.Equal(t, 2, recorder.failures["aborted"])

	unit.Settle(nil)
	assert.Equal(t, 2, recorder.failures["aborted"])
}
