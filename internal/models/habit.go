package models

import (
	"time"

	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"gorm.io/gorm"
)

type Habit struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	UserID    string         `gorm:"index;type:text" json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Archived bool   `gorm:"default:false" json:"archived"`
}

func (Habit) TableName() string {
	return "habits"
}

func (h *Habit) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == "" {
		h.ID = utils.GenerateID()
	}
	return
}

// HabitCompletion records one check-in of a habit on a date.
// The (habit, date) pair is unique so a habit can be completed at most
// once per day.
type HabitCompletion struct {
	ID      string    `gorm:"primaryKey;type:text" json:"id"`
	HabitID string    `gorm:"uniqueIndex:idx_habit_date;type:text" json:"habitId"`
	UserID  string    `gorm:"index;type:text" json:"userId"`
	Date    time.Time `gorm:"uniqueIndex:idx_habit_date" json:"date"`

	CreatedAt time.Time `json:"createdAt"`
}

func (HabitCompletion) TableName() string {
	return "habit_completions"
}

func (hc *HabitCompletion) BeforeCreate(tx *gorm.DB) (err error) {
	if hc.ID == "" {
		hc.ID = utils.GenerateID()
	}
	return
}
