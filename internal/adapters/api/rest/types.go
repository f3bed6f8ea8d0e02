package rest

import (
	"time"

	"github.com/playmixer/unicredit/internal/adapters/store/model"
)

type tSendOTP struct {
	Phone string `json:"phone" validate:"required,max=32"`
}

type tLogin struct {
	Phone string `json:"phone" validate:"required,max=32"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type tOnboard struct {
	Name       string `json:"name" validate:"required,max=100"`
	Department string `json:"department" validate:"required,max=100"`
	ClassName  string `json:"className" validate:"required,max=100"`
}

type tNewTask struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
}

type tNewClass struct {
	Title       string `form:"title" validate:"required,max=200"`
	Description string `form:"description" validate:"required"`
	Department  string `form:"department" validate:"required,max=100"`
	Price       int64  `form:"price" validate:"gte=0"`
}

type tUser struct {
	Phone       string `json:"phone"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	ClassName   string `json:"className"`
	Role        string `json:"role"`
	ID          uint   `json:"id"`
	Credits     int64  `json:"credits"`
	IsOnboarded bool   `json:"isOnboarded"`
}

func newUser(u model.User) tUser {
	return tUser{
		ID:          u.ID,
		Phone:       u.Phone,
		Name:        u.Name,
		Department:  u.Department,
		ClassName:   u.ClassName,
		Role:        u.Role(),
		Credits:     u.Credits,
		IsOnboarded: u.IsOnboarded,
	}
}

// tPerson is the public part of a profile shown next to classes and tasks.
type tPerson struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	ClassName  string `json:"className"`
	ID         uint   `json:"id"`
}

func newPerson(u *model.User) *tPerson {
	if u == nil {
		return nil
	}
	return &tPerson{
		ID:         u.ID,
		Name:       u.Name,
		Department: u.Department,
		ClassName:  u.ClassName,
	}
}

type tOnboardResult struct {
	User         tUser `json:"user"`
	BonusGranted bool  `json:"bonusGranted"`
}

type tTransaction struct {
	createdAt   time.Time
	RelatedID   *uint  `json:"relatedId,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	ID          uint   `json:"id"`
	Amount      int64  `json:"amount"`
}

func (t *tTransaction) Prepare() *tTransaction {
	t.CreatedAt = t.createdAt.Format(time.RFC3339)
	return t
}

type tClass struct {
	createdAt    time.Time
	Instructor   *tPerson `json:"instructor,omitempty"`
	PurchasedBy  []uint   `json:"purchasedBy"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	MediaURL     string   `json:"mediaUrl"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Department   string   `json:"department"`
	CreatedAt    string   `json:"createdAt"`
	ID           uint     `json:"id"`
	InstructorID uint     `json:"instructorId"`
	Price        int64    `json:"price"`
	Owned        bool     `json:"owned"`
}

func newClass(class *model.Class, viewerID uint) tClass {
	c := tClass{
		ID:           class.ID,
		Title:        class.Title,
		Description:  class.Description,
		MediaURL:     class.MediaURL,
		ThumbnailURL: class.ThumbnailURL,
		Department:   class.Department,
		InstructorID: class.InstructorID,
		Price:        class.Price,
		Instructor:   newPerson(class.Instructor),
		PurchasedBy:  class.PurchasedBy(),
		Owned:        class.InstructorID == viewerID || class.IsPurchasedBy(viewerID),
		createdAt:    class.CreatedAt,
	}
	return *c.Prepare()
}

func (c *tClass) Prepare() *tClass {
	c.CreatedAt = c.createdAt.Format(time.RFC3339)
	return c
}

type tTask struct {
	createdAt   time.Time
	AssigneeID  *uint            `json:"assigneeId,omitempty"`
	Creator     *tPerson         `json:"creator,omitempty"`
	Assignee    *tPerson         `json:"assignee,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      model.TaskStatus `json:"status"`
	CreatedAt   string           `json:"createdAt"`
	ID          uint             `json:"id"`
	CreatorID   uint             `json:"creatorId"`
	Price       int64            `json:"price"`
}

func newTask(task *model.Task) tTask {
	t := tTask{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatorID:   task.CreatorID,
		AssigneeID:  task.AssigneeID,
		Creator:     newPerson(task.Creator),
		Assignee:    newPerson(task.Assignee),
		Price:       task.Price,
		createdAt:   task.CreatedAt,
	}
	return *t.Prepare()
}

func (t *tTask) Prepare() *tTask {
	t.CreatedAt = t.createdAt.Format(time.RFC3339)
	return t
}

type tNotification struct {
	createdAt time.Time
	Message   string                 `json:"message"`
	Kind      model.NotificationKind `json:"type"`
	CreatedAt string                 `json:"createdAt"`
	ID        uint                   `json:"id"`
	Read      bool                   `json:"read"`
}

func (n *tNotification) Prepare() *tNotification {
	n.CreatedAt = n.createdAt.Format(time.RFC3339)
	return n
}
