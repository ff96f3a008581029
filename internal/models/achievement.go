package models

import "time"

// Achievement is an immutable template: one lifetime stat, three ascending
// (threshold, xp) tiers. Seeded at startup, never edited at runtime.
type Achievement struct {
	ID          string  `gorm:"primaryKey;type:text" json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"` // Name of the Lucide icon
	StatKey     StatKey `gorm:"type:text;index" json:"statKey"`

	BronzeThreshold int `json:"bronzeThreshold"`
	BronzeXP        int `gorm:"column:bronze_xp" json:"bronzeXp"`
	SilverThreshold int `json:"silverThreshold"`
	SilverXP        int `gorm:"column:silver_xp" json:"silverXp"`
	GoldThreshold   int `json:"goldThreshold"`
	GoldXP          int `gorm:"column:gold_xp" json:"goldXp"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement tracks one user's progress against one achievement.
// Unlock timestamps are append-only: once set they are never cleared,
// even when the underlying action is un-completed.
type UserAchievement struct {
	UserID        string `gorm:"primaryKey;type:text" json:"userId"`
	AchievementID string `gorm:"primaryKey;type:text" json:"achievementId"`

	ProgressValue    int        `gorm:"default:0" json:"progressValue"`
	BronzeUnlockedAt *time.Time `json:"bronzeUnlockedAt"`
	SilverUnlockedAt *time.Time `json:"silverUnlockedAt"`
	GoldUnlockedAt   *time.Time `json:"goldUnlockedAt"`

	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}

// HasAnyTier reports whether at least one tier has been unlocked.
func (ua *UserAchievement) HasAnyTier() bool {
	return ua.BronzeUnlockedAt != nil || ua.SilverUnlockedAt != nil || ua.GoldUnlockedAt != nil
}
