package services

import (
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"gorm.io/gorm"
)

// StreakFreezeStreakMin is the streak length required before freezes can
// be earned, and the minimum days between two earned freezes.
const StreakFreezeStreakMin = 7

// StreakResult is the outcome of advancing a streak for one action.
type StreakResult struct {
	Streak       int  `json:"streak"`
	IsNewDay     bool `json:"isNewDay"`
	StreakBroken bool `json:"streakBroken"`
}

// AdvanceStreak computes the streak after an action on `today`.
// today must be the canonical calendar date computed once per
// orchestration call; passing raw timestamps here causes drift.
func AdvanceStreak(lastActive *time.Time, currentStreak int, today time.Time) StreakResult {
	today = utils.DateOnly(today)

	if lastActive != nil && utils.SameDay(*lastActive, today) {
		// Already active today, nothing moves
		return StreakResult{Streak: currentStreak, IsNewDay: false}
	}

	if lastActive != nil && utils.SameDay(*lastActive, today.AddDate(0, 0, -1)) {
		return StreakResult{Streak: currentStreak + 1, IsNewDay: true}
	}

	// First ever action, or a gap of 2+ days
	return StreakResult{
		Streak:       1,
		IsNewDay:     true,
		StreakBroken: currentStreak > 0,
	}
}

// EarnedStreakFreeze reports whether an action that brought the streak to
// newStreak earns a freeze: streak at least 7, and either no freeze was
// ever earned or the last one is at least 7 days old.
func EarnedStreakFreeze(newStreak int, lastEarned *time.Time, today time.Time) bool {
	if newStreak < StreakFreezeStreakMin {
		return false
	}
	if lastEarned == nil {
		return true
	}
	return utils.DaysBetween(*lastEarned, today) >= StreakFreezeStreakMin
}

// GrantStreakFreeze banks one freeze for the user, capped at
// models.MaxStreakFreezes. Grants at the cap still refresh nothing and
// return without error.
func GrantStreakFreeze(db *gorm.DB, userID string, today time.Time) error {
	today = utils.DateOnly(today)

	var row models.UserStreakFreezes
	err := db.First(&row, "user_id = ?", userID).Error
	if err == gorm.ErrRecordNotFound {
		row = models.UserStreakFreezes{UserID: userID}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if row.AvailableFreezes >= models.MaxStreakFreezes {
		return nil
	}

	row.AvailableFreezes++
	row.LastFreezeEarned = &today
	return db.Save(&row).Error
}
