package services

import (
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/logger"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"gorm.io/gorm"
)

// ActionType is the kind of completed item being awarded.
type ActionType string

const (
	ActionTask          ActionType = "task"
	ActionHabit         ActionType = "habit"
	ActionFocus         ActionType = "focus"
	ActionScheduleBlock ActionType = "schedule_block"
)

// EarlyBirdHour and NightOwlHour bound the time-of-day lifetime counters.
const (
	EarlyBirdHour = 7
	NightOwlHour  = 22
)

// AwardFlags qualifies an action beyond its base XP.
type AwardFlags struct {
	IsHighPriority     bool
	IsQuest            bool
	FocusMinutes       int
	IsLongFocusSession bool
	CompletionHour     *int
}

// BonusXPSummary separates challenge XP from achievement XP so the UI can
// stage its celebration.
type BonusXPSummary struct {
	ChallengeXP   int `json:"challengeXp"`
	AchievementXP int `json:"achievementXp"`
	Total         int `json:"total"`
}

// AwardResult is the single consistent structure returned per award.
// StreakMultiplier and PermanentBonus are retained for response
// compatibility but are always neutral: the base award is never scaled.
type AwardResult struct {
	BaseXP           int     `json:"baseXp"`
	StreakMultiplier float64 `json:"streakMultiplier"` // always 1
	PermanentBonus   int     `json:"permanentBonus"`   // always 0
	ActionTotalXP    int     `json:"actionTotalXp"`

	NewXPTotal int  `json:"newXpTotal"`
	LeveledUp  bool `json:"leveledUp"`
	NewLevel   *int `json:"newLevel,omitempty"` // set only on level up
	NewStreak  int  `json:"newStreak"`

	UnlockedAchievements      []UnlockedAchievement `json:"unlockedAchievements"`
	CompletedDailyChallenges  []CompletedChallenge  `json:"completedDailyChallenges"`
	CompletedWeeklyChallenges []CompletedChallenge  `json:"completedWeeklyChallenges"`

	BonusXP BonusXPSummary `json:"bonusXp"`
}

// AwardActionXP runs the full progression update for one completed action.
//
// The primary sequence (lifetime counters, challenge progress, achievement
// upserts, the profile write, and the activity-log upsert) runs in a single
// transaction so a mid-sequence failure cannot strand partial state. Group
// propagation and the streak-freeze grant run after commit, best-effort.
//
// A missing profile yields a safe empty result and persists nothing: the
// caller's own state change must succeed independently of gamification.
func AwardActionXP(userID string, baseXP int, action ActionType, flags AwardFlags) (*AwardResult, error) {
	result := &AwardResult{
		BaseXP:           baseXP,
		StreakMultiplier: 1,
		ActionTotalXP:    baseXP,
	}

	// 1. Load profile; absent means the user opted out of progression
	var profile models.UserProfile
	if err := database.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return result, nil
		}
		return nil, err
	}

	// One canonical "today" for every date comparison in this call
	today := utils.Today()
	weekStart := utils.WeekStart(today)

	// 2. Streak advance against the pre-action snapshot
	streak := AdvanceStreak(profile.LastActiveDate, profile.CurrentStreak, today)
	result.NewStreak = streak.Streak

	priorLevel := profile.Level

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// 3. The base award is paid as-is. No streak multiplier, no
		// permanent bonus: one action, one transparent number.

		// 4. Lifetime counters for this action
		applyLifetimeCounters(&profile, action, flags, streak)

		// 5. Challenge progress, accumulative then boolean path
		challengeXP, err := updateChallenges(tx, &profile, userID, action, flags, today, weekStart, result)
		if err != nil {
			return err
		}
		result.BonusXP.ChallengeXP = challengeXP

		// 6. Achievements against the projected profile
		unlocked, achievementXP, err := CheckAllAchievements(tx, userID, &profile)
		if err != nil {
			return err
		}
		result.UnlockedAchievements = unlocked
		result.BonusXP.AchievementXP = achievementXP
		result.BonusXP.Total = challengeXP + achievementXP

		// 7. Final totals and the derived level/title
		profile.XPTotal += result.ActionTotalXP + challengeXP + achievementXP
		profile.Level = LevelFromXP(profile.XPTotal)
		profile.Title = TitleForLevel(profile.Level)

		profile.CurrentStreak = streak.Streak
		if streak.Streak > profile.LongestStreak {
			profile.LongestStreak = streak.Streak
		}
		profile.LastActiveDate = &today

		result.NewXPTotal = profile.XPTotal
		if profile.Level > priorLevel {
			result.LeveledUp = true
			level := profile.Level
			result.NewLevel = &level
		}

		// 8. One write for the whole profile update
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		// 9. Day rollup
		delta := ActivityDelta{
			XPEarned:         result.ActionTotalXP + result.BonusXP.Total,
			FocusMinutes:     flags.FocusMinutes,
			StreakMaintained: true,
		}
		if action == ActionTask || action == ActionScheduleBlock {
			delta.TasksCompleted = 1
		}
		if action == ActionHabit {
			delta.HabitsCompleted = 1
		}
		return UpsertActivityLog(tx, userID, today, delta)
	})
	if err != nil {
		return nil, err
	}

	// 10. Group propagation, never blocks the award
	PropagateActionToGroups(userID, result.ActionTotalXP, challengeTypeForAction(action, flags), today)

	// 11. Streak freeze evaluation, also best-effort
	grantFreezeIfEarned(userID, streak.Streak, today)

	// 12. Caller gets the full per-source breakdown
	return result, nil
}

// RevokeActionXP is the documented reversal path: un-completing an action
// subtracts exactly its base XP and recomputes the level. Lifetime
// counters, challenge completions, and achievement unlocks stay put —
// progression is a one-way ratchet.
func RevokeActionXP(userID string, baseXP int) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := database.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	profile.XPTotal -= baseXP
	if profile.XPTotal < 0 {
		profile.XPTotal = 0
	}
	profile.Level = LevelFromXP(profile.XPTotal)
	profile.Title = TitleForLevel(profile.Level)

	err := database.DB.Model(&models.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"xp_total": profile.XPTotal,
			"level":    profile.Level,
			"title":    profile.Title,
		}).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// RecordBrainDump bumps the brain-dump lifetime stat and re-runs the
// achievement check. No base XP; only achievement rewards can pay out.
func RecordBrainDump(userID string) (*AwardResult, error) {
	result := &AwardResult{StreakMultiplier: 1}

	var profile models.UserProfile
	if err := database.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return result, nil
		}
		return nil, err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		profile.AddStat(models.StatBrainDumps, 1)

		unlocked, achievementXP, err := CheckAllAchievements(tx, userID, &profile)
		if err != nil {
			return err
		}
		result.UnlockedAchievements = unlocked
		result.BonusXP.AchievementXP = achievementXP
		result.BonusXP.Total = achievementXP

		profile.XPTotal += achievementXP
		profile.Level = LevelFromXP(profile.XPTotal)
		profile.Title = TitleForLevel(profile.Level)
		result.NewXPTotal = profile.XPTotal

		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func applyLifetimeCounters(profile *models.UserProfile, action ActionType, flags AwardFlags, streak StreakResult) {
	switch action {
	case ActionTask:
		profile.AddStat(models.StatTasksCompleted, 1)
		if flags.IsHighPriority {
			profile.AddStat(models.StatHighPriorityCompleted, 1)
		}
		if flags.IsQuest {
			profile.AddStat(models.StatQuestsCompleted, 1)
		}
	case ActionHabit:
		profile.AddStat(models.StatHabitsCompleted, 1)
	case ActionFocus:
		profile.AddStat(models.StatFocusMinutes, flags.FocusMinutes)
		if flags.IsLongFocusSession {
			profile.AddStat(models.StatLongFocusSessions, 1)
		}
	case ActionScheduleBlock:
		// Schedule blocks have no dedicated lifetime counter
	}

	if flags.CompletionHour != nil {
		if *flags.CompletionHour < EarlyBirdHour {
			profile.AddStat(models.StatEarlyBirdTasks, 1)
		} else if *flags.CompletionHour >= NightOwlHour {
			profile.AddStat(models.StatNightOwlTasks, 1)
		}
	}

	if streak.StreakBroken {
		// Coming back after a broken streak counts as a recovery
		profile.AddStat(models.StatStreakRecoveries, 1)
	}
}

func updateChallenges(tx *gorm.DB, profile *models.UserProfile, userID string, action ActionType, flags AwardFlags, today, weekStart time.Time, result *AwardResult) (int, error) {
	totalXP := 0

	type dailyUpdate struct {
		challengeType models.ChallengeType
		increment     int
	}
	var updates []dailyUpdate

	switch action {
	case ActionTask:
		updates = append(updates, dailyUpdate{models.ChallengeTasks, 1})
		if flags.IsHighPriority {
			updates = append(updates, dailyUpdate{models.ChallengeHighPriorityTasks, 1})
		}
		if flags.CompletionHour != nil && *flags.CompletionHour < EarlyBirdHour {
			updates = append(updates, dailyUpdate{models.ChallengeEarlyBirdTasks, 1})
		}
	case ActionHabit:
		updates = append(updates, dailyUpdate{models.ChallengeHabits, 1})
	case ActionFocus:
		updates = append(updates, dailyUpdate{models.ChallengeFocusMinutes, flags.FocusMinutes})
	case ActionScheduleBlock:
		updates = append(updates, dailyUpdate{models.ChallengeScheduleBlocks, 1})
	}

	for _, u := range updates {
		completed, xp, err := UpdateDailyChallengeProgress(tx, userID, u.challengeType, u.increment, today)
		if err != nil {
			return 0, err
		}
		result.CompletedDailyChallenges = append(result.CompletedDailyChallenges, completed...)
		totalXP += xp
	}

	// The boolean path only makes sense after a habit check-in
	if action == ActionHabit {
		completed, xp, err := CheckAllHabitsChallenge(tx, userID, today)
		if err != nil {
			return 0, err
		}
		result.CompletedDailyChallenges = append(result.CompletedDailyChallenges, completed...)
		totalXP += xp
	}

	// Weekly bucket: one update per action, hp folds into tasks inside
	weeklyType := challengeTypeForAction(action, flags)
	weeklyIncrement := 1
	if action == ActionFocus {
		weeklyIncrement = flags.FocusMinutes
	}
	completed, xp, err := UpdateWeeklyChallengeProgress(tx, userID, weeklyType, weeklyIncrement, weekStart)
	if err != nil {
		return 0, err
	}
	result.CompletedWeeklyChallenges = append(result.CompletedWeeklyChallenges, completed...)
	totalXP += xp

	// A weekly challenge finishing on a fully active week is a perfect week.
	// Today's rollup row may not exist yet, so count it by hand.
	if len(completed) > 0 {
		activeDays, err := ActiveDaysInWeek(tx, userID, weekStart)
		if err != nil {
			return 0, err
		}
		var todayRow models.UserActivityLog
		if err := tx.First(&todayRow, "user_id = ? AND date = ?", userID, today).Error; err == gorm.ErrRecordNotFound {
			activeDays++
		}
		if activeDays >= 7 {
			profile.AddStat(models.StatPerfectWeeks, 1)
		}
	}

	return totalXP, nil
}

func challengeTypeForAction(action ActionType, flags AwardFlags) models.ChallengeType {
	switch action {
	case ActionTask:
		if flags.IsHighPriority {
			return models.ChallengeHighPriorityTasks
		}
		return models.ChallengeTasks
	case ActionHabit:
		return models.ChallengeHabits
	case ActionFocus:
		return models.ChallengeFocusMinutes
	case ActionScheduleBlock:
		return models.ChallengeScheduleBlocks
	}
	return models.ChallengeTasks
}

func grantFreezeIfEarned(userID string, newStreak int, today time.Time) {
	var row models.UserStreakFreezes
	err := database.DB.First(&row, "user_id = ?", userID).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		logger.Warn().Err(err).Str("userId", userID).Msg("Streak freeze lookup failed")
		return
	}

	var lastEarned *time.Time
	if err == nil {
		lastEarned = row.LastFreezeEarned
	}

	if !EarnedStreakFreeze(newStreak, lastEarned, today) {
		return
	}
	if err := GrantStreakFreeze(database.DB, userID, today); err != nil {
		logger.Warn().Err(err).Str("userId", userID).Msg("Streak freeze grant failed")
	}
}
