package models

import "time"

// UserActivityLog is the per-user-per-day rollup written as a side effect
// of every XP award. Created lazily, updated additively, never overwritten
// wholesale. Read by the weekly review and analytics features.
type UserActivityLog struct {
	ID     string    `gorm:"primaryKey;type:text" json:"id"`
	UserID string    `gorm:"uniqueIndex:idx_activity_user_date;type:text" json:"userId"`
	Date   time.Time `gorm:"uniqueIndex:idx_activity_user_date" json:"date"`

	XPEarned         int  `gorm:"column:xp_earned;default:0" json:"xpEarned"`
	TasksCompleted   int  `gorm:"default:0" json:"tasksCompleted"`
	HabitsCompleted  int  `gorm:"default:0" json:"habitsCompleted"`
	FocusMinutes     int  `gorm:"default:0" json:"focusMinutes"`
	StreakMaintained bool `gorm:"default:false" json:"streakMaintained"`

	UpdatedAt time.Time `json:"updatedAt"`
}

func (UserActivityLog) TableName() string {
	return "user_activity_logs"
}
