package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/playmixer/unicredit/internal/adapters/store/errstore"
	"github.com/playmixer/unicredit/internal/adapters/store/model"
	"github.com/playmixer/unicredit/internal/core/marketplace"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	DSN          string `env:"DATABASE_URI"`
	MaxOpenConns int    `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"20"`
}

type Store struct {
	db        *gorm.DB
	log       *zap.Logger
	dialector gorm.Dialector
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Dialector replaces the postgres dialector built from the DSN.
func Dialector(d gorm.Dialector) option {
	return func(s *Store) {
		s.dialector = d
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	var err error
	s := &Store{
		log: zap.NewNop(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.dialector == nil {
		s.dialector = postgres.Open(cfg.DSN)
	}

	db, err := gorm.Open(s.dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed getting database connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	s.db = db.WithContext(ctx)

	err = s.db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.Class{},
		&model.ClassPurchase{},
		&model.Task{},
		&model.Notification{},
	)
	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

// Atomic runs fn inside one database transaction. Any error returned by fn,
// or a panic, rolls back every write made through the Tx.
func (s *Store) Atomic(ctx context.Context, fn func(tx marketplace.Tx) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&unit{db: tx})
	})
	if err != nil {
		s.log.Debug("transaction rolled back", zap.Error(err))
		return fmt.Errorf("failed complite transaction: %w", err)
	}

	return nil
}

func (s *Store) GetUserByID(ctx context.Context, userID uint) (model.User, error) {
	user := model.User{}
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return user, notFound(err, "failed get user")
	}

	return user, nil
}

func (s *Store) GetUserByPhone(ctx context.Context, phone string) (model.User, error) {
	user := model.User{}
	if err := s.db.WithContext(ctx).Where(&model.User{Phone: phone}).First(&user).Error; err != nil {
		return user, notFound(err, "error found user")
	}

	return user, nil
}

func (s *Store) CreateUser(ctx context.Context, phone string) (model.User, error) {
	user := model.User{Phone: phone}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return user, errstore.ErrPhoneNotUnique
		}
		return user, fmt.Errorf("failed save user: %w", err)
	}

	return user, nil
}

func (s *Store) CreateClass(ctx context.Context, class *model.Class) error {
	if err := s.db.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("failed save class: %w", err)
	}
	return nil
}

func (s *Store) GetClass(ctx context.Context, classID uint) (model.Class, error) {
	class := model.Class{}
	if err := s.db.WithContext(ctx).Preload("Instructor").Preload("Purchases").First(&class, classID).Error; err != nil {
		return class, notFound(err, "failed get class")
	}

	return class, nil
}

func (s *Store) ListClasses(ctx context.Context, department string) ([]*model.Class, error) {
	classes := []*model.Class{}
	db := s.db.WithContext(ctx).Preload("Instructor").Preload("Purchases").Order("created_at DESC").Order("id DESC")
	if department != "" {
		db = db.Where(&model.Class{Department: department})
	}
	if err := db.Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("failed get classes: %w", err)
	}

	return classes, nil
}

func (s *Store) CreateTask(ctx context.Context, task *model.Task) error {
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed save task: %w", err)
	}
	return nil
}

func (s *Store) GetTask(ctx context.Context, taskID uint) (model.Task, error) {
	task := model.Task{}
	if err := s.db.WithContext(ctx).Preload("Creator").Preload("Assignee").First(&task, taskID).Error; err != nil {
		return task, notFound(err, "failed get task")
	}

	return task, nil
}

func (s *Store) ListTasks(ctx context.Context) ([]*model.Task, error) {
	tasks := []*model.Task{}
	if err := s.db.WithContext(ctx).Preload("Creator").Preload("Assignee").
		Order("created_at DESC").Order("id DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed get tasks: %w", err)
	}

	return tasks, nil
}

func (s *Store) ListTransactions(ctx context.Context, userID uint) ([]*model.Transaction, error) {
	txs := []*model.Transaction{}
	if err := s.db.WithContext(ctx).Where(&model.Transaction{UserID: userID}).
		Order("created_at DESC").Order("id DESC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("failed get transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) ListNotifications(ctx context.Context, userID uint) ([]*model.Notification, error) {
	notifications := []*model.Notification{}
	if err := s.db.WithContext(ctx).Where(&model.Notification{UserID: userID}).
		Order("created_at DESC").Order("id DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed get notifications: %w", err)
	}

	return notifications, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, userID, notificationID uint) error {
	result := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed update notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Join(errstore.ErrNotFoundData, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqlError *pgconn.PgError
	return errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation
}
