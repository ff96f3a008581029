package models

import (
	"time"

	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"gorm.io/gorm"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	UserID    string         `gorm:"index;type:text" json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string       `json:"title"`
	Notes       string       `json:"notes"`
	Priority    TaskPriority `gorm:"type:text;default:'medium'" json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`
	IsQuest     bool         `gorm:"default:false" json:"isQuest"` // multi-step quests count toward the quest stat
	Completed   bool         `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time   `json:"completedAt"`
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = utils.GenerateID()
	}
	return
}

// BaseXP returns the base award for completing a task of this priority.
// The priority table is fixed: low=5, medium=10, high=25.
func (t *Task) BaseXP() int {
	switch t.Priority {
	case PriorityLow:
		return 5
	case PriorityHigh:
		return 25
	default:
		return 10
	}
}
