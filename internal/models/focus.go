package models

import (
	"time"

	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"gorm.io/gorm"
)

// LongFocusSessionMinutes is the cutoff above which a session counts
// toward the long-session lifetime stat.
const LongFocusSessionMinutes = 50

type FocusSession struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    string    `gorm:"index;type:text" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	Minutes    int        `json:"minutes"`
	TaskID     *string    `gorm:"type:text" json:"taskId"` // optional link to the task worked on
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt"`
}

func (FocusSession) TableName() string {
	return "focus_sessions"
}

func (fs *FocusSession) BeforeCreate(tx *gorm.DB) (err error) {
	if fs.ID == "" {
		fs.ID = utils.GenerateID()
	}
	return
}

// IsLong reports whether this session counts as a long focus session.
func (fs *FocusSession) IsLong() bool {
	return fs.Minutes >= LongFocusSessionMinutes
}
