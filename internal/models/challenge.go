package models

import "time"

type ChallengeDifficulty string

const (
	DifficultyEasy   ChallengeDifficulty = "easy"
	DifficultyMedium ChallengeDifficulty = "medium"
	DifficultyHard   ChallengeDifficulty = "hard"
)

// ChallengeType is matched against the action type of a completed item.
// ChallengeAllHabits is the reserved sentinel: its challenges are never
// advanced by increments, only completed by the all-habits condition check.
type ChallengeType string

const (
	ChallengeTasks             ChallengeType = "tasks"
	ChallengeHighPriorityTasks ChallengeType = "high_priority_tasks"
	ChallengeHabits            ChallengeType = "habits"
	ChallengeFocusMinutes      ChallengeType = "focus_minutes"
	ChallengeEarlyBirdTasks    ChallengeType = "early_bird_tasks"
	ChallengeScheduleBlocks    ChallengeType = "schedule_blocks"
	ChallengeAllHabits         ChallengeType = "all_habits"
)

// DailyChallengeTemplate is the pool challenges are drawn from.
// Exactly one template per difficulty is instanced per user per day.
type DailyChallengeTemplate struct {
	ID            string              `gorm:"primaryKey;type:text" json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Difficulty    ChallengeDifficulty `gorm:"type:text;index" json:"difficulty"`
	ChallengeType ChallengeType       `gorm:"type:text" json:"challengeType"`
	TargetValue   int                 `json:"targetValue"` // 0 for sentinel condition challenges
	XPReward      int                 `gorm:"column:xp_reward" json:"xpReward"`
}

func (DailyChallengeTemplate) TableName() string {
	return "daily_challenge_templates"
}

// UserDailyChallenge is one instanced challenge for a (user, date, difficulty).
// Membership for a date is fixed once generated; rows are never replaced.
type UserDailyChallenge struct {
	ID         string              `gorm:"primaryKey;type:text" json:"id"`
	UserID     string              `gorm:"index:idx_daily_user_date;type:text" json:"userId"`
	Date       time.Time           `gorm:"index:idx_daily_user_date" json:"date"`
	TemplateID string              `gorm:"type:text" json:"templateId"`
	Difficulty ChallengeDifficulty `gorm:"type:text" json:"difficulty"`

	Progress    int        `gorm:"default:0" json:"progress"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	XPAwarded   int        `gorm:"column:xp_awarded;default:0" json:"xpAwarded"`

	Template DailyChallengeTemplate `gorm:"foreignKey:TemplateID" json:"template"`
}

func (UserDailyChallenge) TableName() string {
	return "user_daily_challenges"
}

// WeeklyChallengeTemplate is a single unified pool: exactly one weekly
// challenge is instanced per user per ISO week (week start = Monday).
type WeeklyChallengeTemplate struct {
	ID            string        `gorm:"primaryKey;type:text" json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	ChallengeType ChallengeType `gorm:"type:text" json:"challengeType"`
	TargetValue   int           `json:"targetValue"`
	XPReward      int           `gorm:"column:xp_reward" json:"xpReward"`
}

func (WeeklyChallengeTemplate) TableName() string {
	return "weekly_challenge_templates"
}

type UserWeeklyChallenge struct {
	ID         string    `gorm:"primaryKey;type:text" json:"id"`
	UserID     string    `gorm:"index:idx_weekly_user_week;type:text" json:"userId"`
	WeekStart  time.Time `gorm:"index:idx_weekly_user_week" json:"weekStart"`
	TemplateID string    `gorm:"type:text" json:"templateId"`

	Progress    int        `gorm:"default:0" json:"progress"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	XPAwarded   int        `gorm:"column:xp_awarded;default:0" json:"xpAwarded"`

	Template WeeklyChallengeTemplate `gorm:"foreignKey:TemplateID" json:"template"`
}

func (UserWeeklyChallenge) TableName() string {
	return "user_weekly_challenges"
}
