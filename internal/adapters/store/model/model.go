package model

import "time"

type User struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Phone       string `gorm:"unique"`
	Name        string
	Department  string
	ClassName   string
	ID          uint  `gorm:"primarykey"`
	Credits     int64 `gorm:"not null;default:0"`
	IsAdmin     bool
	IsOnboarded bool `gorm:"not null;default:false"`
}

// Role is the session role derived from the user record.
func (u User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}

type Profile struct {
	Name       string
	Department string
	ClassName  string
}

type TransactionKind string

const (
	TransactionWelcomeBonus  TransactionKind = "welcome_bonus"
	TransactionClassPurchase TransactionKind = "class_purchase"
	TransactionClassSale     TransactionKind = "class_sale"
	TransactionTaskPayment   TransactionKind = "task_payment"
	TransactionTaskEarning   TransactionKind = "task_earning"
)

// Transaction is an append-only record of a single account delta.
type Transaction struct {
	CreatedAt   time.Time
	RelatedID   *uint           `gorm:"index"`
	Kind        TransactionKind `gorm:"index"`
	Description string
	ID          uint `gorm:"primarykey"`
	UserID      uint `gorm:"index"`
	Amount      int64
}

type Class struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Title        string
	Description  string
	MediaURL     string
	ThumbnailURL string
	Department   string `gorm:"index"`
	Instructor   *User  `gorm:"foreignKey:InstructorID"`
	Purchases    []ClassPurchase
	ID           uint `gorm:"primarykey"`
	InstructorID uint `gorm:"index"`
	Price        int64
}

func (c *Class) PurchasedBy() []uint {
	ids := make([]uint, 0, len(c.Purchases))
	for _, p := range c.Purchases {
		ids = append(ids, p.UserID)
	}
	return ids
}

func (c *Class) IsPurchasedBy(userID uint) bool {
	for _, p := range c.Purchases {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

type ClassPurchase struct {
	CreatedAt time.Time
	ID        uint `gorm:"primarykey"`
	ClassID   uint `gorm:"uniqueIndex:idx_class_purchase"`
	UserID    uint `gorm:"uniqueIndex:idx_class_purchase"`
}

type TaskStatus string

const (
	TaskStateOpen       TaskStatus = "open"
	TaskStateInProgress TaskStatus = "in_progress"
	TaskStateCompleted  TaskStatus = "completed"
)

// taskTransitions lists the only allowed move out of every non-terminal state.
var taskTransitions = map[TaskStatus]TaskStatus{
	TaskStateOpen:       TaskStateInProgress,
	TaskStateInProgress: TaskStateCompleted,
}

func (s TaskStatus) CanTransition(to TaskStatus) bool {
	next, ok := taskTransitions[s]
	return ok && next == to
}

func (s TaskStatus) IsTerminal() bool {
	_, ok := taskTransitions[s]
	return !ok
}

type Task struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	AssigneeID  *uint `gorm:"index"`
	Creator     *User `gorm:"foreignKey:CreatorID"`
	Assignee    *User `gorm:"foreignKey:AssigneeID"`
	Title       string
	Description string
	Status      TaskStatus `gorm:"default:open;index"`
	ID          uint       `gorm:"primarykey"`
	CreatorID   uint       `gorm:"index"`
	Price       int64
}

type NotificationKind string

const (
	NotificationInfo    NotificationKind = "info"
	NotificationSuccess NotificationKind = "success"
	NotificationWarning NotificationKind = "warning"
)

type Notification struct {
	CreatedAt time.Time
	Message   string
	Kind      NotificationKind `gorm:"default:info"`
	ID        uint             `gorm:"primarykey"`
	UserID    uint             `gorm:"index"`
	Read      bool
}
