package models

import (
	"time"
)

// StatKey identifies one of the lifetime counters on UserProfile.
// It is a closed enum: StatValue must cover every key, so adding a
// counter is a compile-time visible change in exactly two places.
type StatKey string

const (
	StatTasksCompleted        StatKey = "tasks_completed"
	StatHighPriorityCompleted StatKey = "high_priority_completed"
	StatHabitsCompleted       StatKey = "habits_completed"
	StatFocusMinutes          StatKey = "focus_minutes"
	StatLongFocusSessions     StatKey = "long_focus_sessions"
	StatEarlyBirdTasks        StatKey = "early_bird_tasks"
	StatNightOwlTasks         StatKey = "night_owl_tasks"
	StatStreakRecoveries      StatKey = "streak_recoveries"
	StatQuestsCompleted       StatKey = "quests_completed"
	StatPerfectWeeks          StatKey = "perfect_weeks"
	StatBrainDumps            StatKey = "brain_dumps"
)

// AllStatKeys lists every lifetime counter, in seed/display order.
var AllStatKeys = []StatKey{
	StatTasksCompleted,
	StatHighPriorityCompleted,
	StatHabitsCompleted,
	StatFocusMinutes,
	StatLongFocusSessions,
	StatEarlyBirdTasks,
	StatNightOwlTasks,
	StatStreakRecoveries,
	StatQuestsCompleted,
	StatPerfectWeeks,
	StatBrainDumps,
}

// UserProfile holds all progression state for one user.
// Level and Title are always derived from XPTotal; they are stored
// denormalized for cheap reads but never updated without a recompute.
type UserProfile struct {
	UserID    string    `gorm:"primaryKey;type:text" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	XPTotal int    `gorm:"column:xp_total;default:0" json:"xpTotal"`
	Level   int    `gorm:"default:1" json:"level"`
	Title   string `gorm:"default:'Novice'" json:"title"`

	CurrentStreak  int        `gorm:"default:0" json:"currentStreak"`
	LongestStreak  int        `gorm:"default:0" json:"longestStreak"`
	LastActiveDate *time.Time `json:"lastActiveDate"`

	// Lifetime counters. Monotonically increasing; never reversed.
	LifetimeTasksCompleted        int `gorm:"default:0" json:"lifetimeTasksCompleted"`
	LifetimeHighPriorityCompleted int `gorm:"default:0" json:"lifetimeHighPriorityCompleted"`
	LifetimeHabitsCompleted       int `gorm:"default:0" json:"lifetimeHabitsCompleted"`
	LifetimeFocusMinutes          int `gorm:"default:0" json:"lifetimeFocusMinutes"`
	LifetimeLongFocusSessions     int `gorm:"default:0" json:"lifetimeLongFocusSessions"`
	LifetimeEarlyBirdTasks        int `gorm:"default:0" json:"lifetimeEarlyBirdTasks"`
	LifetimeNightOwlTasks         int `gorm:"default:0" json:"lifetimeNightOwlTasks"`
	LifetimeStreakRecoveries      int `gorm:"default:0" json:"lifetimeStreakRecoveries"`
	LifetimeQuestsCompleted       int `gorm:"default:0" json:"lifetimeQuestsCompleted"`
	LifetimePerfectWeeks          int `gorm:"default:0" json:"lifetimePerfectWeeks"`
	LifetimeBrainDumps            int `gorm:"default:0" json:"lifetimeBrainDumps"`

	AchievementsUnlocked int `gorm:"default:0" json:"achievementsUnlocked"`
	PermanentXPBonus     int `gorm:"column:permanent_xp_bonus;default:0" json:"permanentXpBonus"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// StatValue returns the lifetime counter for a stat key. The switch is
// exhaustive over StatKey; an unknown key returns 0.
func (p *UserProfile) StatValue(key StatKey) int {
	switch key {
	case StatTasksCompleted:
		return p.LifetimeTasksCompleted
	case StatHighPriorityCompleted:
		return p.LifetimeHighPriorityCompleted
	case StatHabitsCompleted:
		return p.LifetimeHabitsCompleted
	case StatFocusMinutes:
		return p.LifetimeFocusMinutes
	case StatLongFocusSessions:
		return p.LifetimeLongFocusSessions
	case StatEarlyBirdTasks:
		return p.LifetimeEarlyBirdTasks
	case StatNightOwlTasks:
		return p.LifetimeNightOwlTasks
	case StatStreakRecoveries:
		return p.LifetimeStreakRecoveries
	case StatQuestsCompleted:
		return p.LifetimeQuestsCompleted
	case StatPerfectWeeks:
		return p.LifetimePerfectWeeks
	case StatBrainDumps:
		return p.LifetimeBrainDumps
	}
	return 0
}

// AddStat bumps the lifetime counter for a stat key by delta.
func (p *UserProfile) AddStat(key StatKey, delta int) {
	switch key {
	case StatTasksCompleted:
		p.LifetimeTasksCompleted += delta
	case StatHighPriorityCompleted:
		p.LifetimeHighPriorityCompleted += delta
	case StatHabitsCompleted:
		p.LifetimeHabitsCompleted += delta
	case StatFocusMinutes:
		p.LifetimeFocusMinutes += delta
	case StatLongFocusSessions:
		p.LifetimeLongFocusSessions += delta
	case StatEarlyBirdTasks:
		p.LifetimeEarlyBirdTasks += delta
	case StatNightOwlTasks:
		p.LifetimeNightOwlTasks += delta
	case StatStreakRecoveries:
		p.LifetimeStreakRecoveries += delta
	case StatQuestsCompleted:
		p.LifetimeQuestsCompleted += delta
	case StatPerfectWeeks:
		p.LifetimePerfectWeeks += delta
	case StatBrainDumps:
		p.LifetimeBrainDumps += delta
	}
}
