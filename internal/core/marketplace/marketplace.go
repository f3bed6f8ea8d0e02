package marketplace

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"github.com/playmixer/unicredit/internal/core/ledger"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=../../mocks/store/store.go -package=store . Store,Tx

type Store interface {
	GetUserByID(ctx context.Context, userID uint) (model.User, error)
	GetUserByPhone(ctx context.Context, phone string) (model.User, error)
	CreateUser(ctx context.Context, phone string) (model.User, error)
	CreateClass(ctx context.Context, class *model.Class) error
	GetClass(ctx context.Context, classID uint) (model.Class, error)
	ListClasses(ctx context.Context, department string) ([]*model.Class, error)
	CreateTask(ctx context.Context, task *model.Task) error
	GetTask(ctx context.Context, taskID uint) (model.Task, error)
	ListTasks(ctx context.Context) ([]*model.Task, error)
	ListTransactions(ctx context.Context, userID uint) ([]*model.Transaction, error)
	ListNotifications(ctx context.Context, userID uint) ([]*model.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID uint) error
	Atomic(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is a unit of work: every write made through it commits or rolls back
// together when the function passed to Store.Atomic returns.
type Tx interface {
	ledger.Accounts
	LockClass(ctx context.Context, classID uint) (model.Class, error)
	AddClassPurchase(ctx context.Context, classID, userID uint) error
	LockTask(ctx context.Context, taskID uint) (model.Task, error)
	TransitionTask(ctx context.Context, task *model.Task, from model.TaskStatus) error
	UpdateProfile(ctx context.Context, userID uint, profile model.Profile) error
	MarkOnboarded(ctx context.Context, userID uint) (bool, error)
	AddNotification(ctx context.Context, notification *model.Notification) error
}

// CodeStore keeps hashed one-time codes between SendOTP and Login.
type CodeStore interface {
	Allow(ctx context.Context, phone string) (bool, error)
	Save(ctx context.Context, phone, hash string, ttl time.Duration) error
	Take(ctx context.Context, phone string) (string, error)
}

// Sender delivers a one-time code to the phone. Delivery may complete after Send returns.
type Sender interface {
	Send(ctx context.Context, phone, code string) error
}

// Media uploads a video and returns its public url and a derived thumbnail url.
type Media interface {
	Upload(ctx context.Context, name, contentType string, payload io.Reader) (string, string, error)
}

type Config struct {
	DemoOTP      string        `env:"DEMO_OTP" envDefault:"123456"`
	WelcomeBonus int64         `env:"WELCOME_BONUS" envDefault:"50"`
	OTPTTL       time.Duration `env:"OTP_TTL" envDefault:"5m"`
	DemoMode     bool          `env:"DEMO_MODE" envDefault:"true"`
}

type Marketplace struct {
	log    *zap.Logger
	cfg    *Config
	store  Store
	ledger *ledger.Engine
	codes  CodeStore
	sender Sender
	media  Media
}

type option func(*Marketplace)

func Logger(log *zap.Logger) option {
	return func(m *Marketplace) {
		if log != nil {
			m.log = log
		}
	}
}

func Ledger(engine *ledger.Engine) option {
	return func(m *Marketplace) {
		if engine != nil {
			m.ledger = engine
		}
	}
}

func Codes(codes CodeStore) option {
	return func(m *Marketplace) {
		m.codes = codes
	}
}

func OTPSender(sender Sender) option {
	return func(m *Marketplace) {
		m.sender = sender
	}
}

func MediaStore(media Media) option {
	return func(m *Marketplace) {
		m.media = media
	}
}

func New(cfg *Config, store Store, options ...option) *Marketplace {
	m := &Marketplace{
		log:    zap.NewNop(),
		cfg:    cfg,
		store:  store,
		ledger: ledger.New(),
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

func (m *Marketplace) notify(ctx context.Context, tx Tx, userID uint, kind model.NotificationKind, message string) error {
	if err := tx.AddNotification(ctx, &model.Notification{
		UserID:  userID,
		Kind:    kind,
		Message: message,
	}); err != nil {
		return fmt.Errorf("failed add notification for user `%d`: %w", userID, err)
	}
	return nil
}
