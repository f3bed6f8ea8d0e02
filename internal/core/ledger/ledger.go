// Package ledger moves credits between accounts and records every movement
// as append-only transactions. It never opens a database transaction itself:
// callers hand it the account view of the unit of work they are running, so
// the transfer commits or rolls back together with the caller's other writes.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrSameAccount       = errors.New("source and destination accounts are the same")
	ErrInsufficientFunds = errors.New("insufficient credits")
	ErrAccountNotFound   = errors.New("account not found")
	ErrTransferAborted   = errors.New("transfer aborted")
)

// Accounts is the account view of an open unit of work.
type Accounts interface {
	// LockAccount loads the account and holds its row until the unit ends.
	LockAccount(ctx context.Context, id uint) (model.User, error)
	// Debit subtracts amount only if the balance covers it; false means it did not.
	Debit(ctx context.Context, id uint, amount int64) (bool, error)
	Credit(ctx context.Context, id uint, amount int64) error
	AppendTransactions(ctx context.Context, txs ...*model.Transaction) error
}

// Recorder receives the outcome of every ledger operation.
type Recorder interface {
	ObserveTransfer(kind model.TransactionKind, amount int64)
	ObserveFailure(kind model.TransactionKind, reason string)
}

type Transfer struct {
	DebitKind         model.TransactionKind
	CreditKind        model.TransactionKind
	DebitDescription  string
	CreditDescription string
	RelatedID         *uint
	Source            uint
	Dest              uint
	Amount            int64
}

type Grant struct {
	Kind        model.TransactionKind
	Description string
	RelatedID   *uint
	Account     uint
	Amount      int64
}

type Engine struct {
	log      *zap.Logger
	recorder Recorder
}

type option func(*Engine)

func Logger(log *zap.Logger) option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

func Metrics(r Recorder) option {
	return func(e *Engine) {
		e.recorder = r
	}
}

func New(options ...option) *Engine {
	e := &Engine{
		log: zap.NewNop(),
	}
	for _, opt := range options {
		opt(e)
	}

	return e
}

// Transfer debits Source and credits Dest by Amount, writing one transaction
// per side. Both account rows are locked in ascending id order before the
// balance check so that concurrent transfers over the same pair cannot
// deadlock or both pass the check on a stale balance.
func (e *Engine) Transfer(ctx context.Context, accounts Accounts, t Transfer) error {
	if t.Amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, t.Amount)
	}
	if t.Source == t.Dest {
		return fmt.Errorf("%w: %d", ErrSameAccount, t.Source)
	}

	first, second := t.Source, t.Dest
	if first > second {
		first, second = second, first
	}
	for _, id := range []uint{first, second} {
		if _, err := accounts.LockAccount(ctx, id); err != nil {
			return lockError(id, err)
		}
	}

	ok, err := accounts.Debit(ctx, t.Source, t.Amount)
	if err != nil {
		return aborted(fmt.Errorf("failed debit account `%d`: %w", t.Source, err))
	}
	if !ok {
		return fmt.Errorf("%w: account `%d` needs %d", ErrInsufficientFunds, t.Source, t.Amount)
	}

	if err := accounts.Credit(ctx, t.Dest, t.Amount); err != nil {
		return aborted(fmt.Errorf("failed credit account `%d`: %w", t.Dest, err))
	}

	err = accounts.AppendTransactions(ctx,
		&model.Transaction{
			UserID:      t.Source,
			Kind:        t.DebitKind,
			Amount:      -t.Amount,
			Description: t.DebitDescription,
			RelatedID:   t.RelatedID,
		},
		&model.Transaction{
			UserID:      t.Dest,
			Kind:        t.CreditKind,
			Amount:      t.Amount,
			Description: t.CreditDescription,
			RelatedID:   t.RelatedID,
		},
	)
	if err != nil {
		return aborted(fmt.Errorf("failed append transactions: %w", err))
	}

	e.log.Debug("credits transferred",
		zap.Uint("source", t.Source),
		zap.Uint("dest", t.Dest),
		zap.Int64("amount", t.Amount),
		zap.String("kind", string(t.DebitKind)),
	)

	return nil
}

// Grant credits a system-issued amount to a single account. There is no
// debit side, so exactly one transaction is written.
func (e *Engine) Grant(ctx context.Context, accounts Accounts, g Grant) error {
	if g.Amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, g.Amount)
	}
	if _, err := accounts.LockAccount(ctx, g.Account); err != nil {
		return lockError(g.Account, err)
	}
	if err := accounts.Credit(ctx, g.Account, g.Amount); err != nil {
		return aborted(fmt.Errorf("failed credit account `%d`: %w", g.Account, err))
	}
	err := accounts.AppendTransactions(ctx, &model.Transaction{
		UserID:      g.Account,
		Kind:        g.Kind,
		Amount:      g.Amount,
		Description: g.Description,
		RelatedID:   g.RelatedID,
	})
	if err != nil {
		return aborted(fmt.Errorf("failed append transaction: %w", err))
	}

	return nil
}

type outcome struct {
	err    error
	kind   model.TransactionKind
	amount int64
}

// Unit buffers the outcomes of the operations run inside one unit of work.
// The recorder sees them only when Settle reports how the unit ended.
type Unit struct {
	engine  *Engine
	pending []outcome
}

func (e *Engine) Begin() *Unit {
	return &Unit{engine: e}
}

func (u *Unit) Transfer(ctx context.Context, accounts Accounts, t Transfer) error {
	err := u.engine.Transfer(ctx, accounts, t)
	u.pending = append(u.pending, outcome{kind: t.DebitKind, amount: t.Amount, err: err})
	return err
}

func (u *Unit) Grant(ctx context.Context, accounts Accounts, g Grant) error {
	err := u.engine.Grant(ctx, accounts, g)
	u.pending = append(u.pending, outcome{kind: g.Kind, amount: g.Amount, err: err})
	return err
}

// Settle reports the buffered outcomes. A non-nil err means the unit rolled
// back, so operations that succeeded inside it are reported as failed too.
func (u *Unit) Settle(err error) {
	for _, o := range u.pending {
		if o.err == nil {
			o.err = err
		}
		u.engine.observe(o.kind, o.amount, o.err)
	}
	u.pending = nil
}

func (e *Engine) observe(kind model.TransactionKind, amount int64, err error) {
	if e.recorder == nil {
		return
	}
	if err == nil {
		e.recorder.ObserveTransfer(kind, amount)
		return
	}
	e.recorder.ObserveFailure(kind, Reason(err))
}

// Reason returns a short label for a ledger error.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrSameAccount):
		return "invalid"
	default:
		return "aborted"
	}
}

func lockError(id uint, err error) error {
	if errors.Is(err, errstore.ErrNotFoundData) {
		return fmt.Errorf("%w: `%d`", ErrAccountNotFound, id)
	}
	return aborted(fmt.Errorf("failed lock account `%d`: %w", id, err))
}

func aborted(err error) error {
	return fmt.Errorf("%w: %w", ErrTransferAborted, err)
}
