package models

import "time"

// MaxStreakFreezes caps the number of banked freezes; grants past the cap
// are no-ops.
const MaxStreakFreezes = 3

// UserStreakFreezes banks credits that can excuse one missed day each.
// This core only grants freezes; consuming them happens elsewhere.
type UserStreakFreezes struct {
	UserID           string     `gorm:"primaryKey;type:text" json:"userId"`
	AvailableFreezes int        `gorm:"default:0" json:"availableFreezes"`
	LastFreezeEarned *time.Time `json:"lastFreezeEarned"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (UserStreakFreezes) TableName() string {
	return "user_streak_freezes"
}
