package models

import (
	"time"

	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"gorm.io/gorm"
)

// ScheduleBlock is a calendar time block. Completing one awards XP like
// any other action.
type ScheduleBlock struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	UserID    string         `gorm:"index;type:text" json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string     `json:"title"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     time.Time  `json:"endTime"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (ScheduleBlock) TableName() string {
	return "schedule_blocks"
}

func (sb *ScheduleBlock) BeforeCreate(tx *gorm.DB) (err error) {
	if sb.ID == "" {
		sb.ID = utils.GenerateID()
	}
	return
}

// BrainDumpEntry is a quick unstructured capture. Saving one bumps the
// brain-dump lifetime stat but awards no base XP.
type BrainDumpEntry struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	UserID    string    `gorm:"index;type:text" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	Content string `gorm:"type:text" json:"content"`
}

func (BrainDumpEntry) TableName() string {
	return "brain_dump_entries"
}

func (bd *BrainDumpEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if bd.ID == "" {
		bd.ID = utils.GenerateID()
	}
	return
}
