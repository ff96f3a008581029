package services

import (
	"testing"

	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestAwardActionXP_HighPriorityTaskEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	createTestProfile(t, db, "user1")

	db.Create(&models.DailyChallengeTemplate{ID: "d_easy", Name: "One Task", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeTasks, TargetValue: 1, XPReward: 10})
	db.Create(&models.WeeklyChallengeTemplate{ID: "w_tasks", Name: "Task Machine", ChallengeType: models.ChallengeTasks, TargetValue: 5, XPReward: 100})
	db.Create(&models.Achievement{
		ID: "ach_tasks", Name: "Task Slayer", StatKey: models.StatTasksCompleted,
		BronzeThreshold: 1, BronzeXP: 10,
		SilverThreshold: 5, SilverXP: 25,
		GoldThreshold: 25, GoldXP: 50,
	})

	result, err := AwardActionXP("user1", 25, ActionTask, AwardFlags{IsHighPriority: true})
	assert.NoError(t, err)

	assert.Equal(t, 25, result.BaseXP)
	assert.Equal(t, 25, result.ActionTotalXP, "base XP is never scaled")
	assert.Equal(t, float64(1), result.StreakMultiplier)
	assert.Equal(t, 0, result.PermanentBonus)
	assert.Equal(t, 1, result.NewStreak)

	// 25 base + 10 daily challenge + 10 bronze achievement
	assert.Equal(t, 10, result.BonusXP.ChallengeXP)
	assert.Equal(t, 10, result.BonusXP.AchievementXP)
	assert.Equal(t, 20, result.BonusXP.Total)
	assert.Equal(t, 45, result.NewXPTotal)
	assert.False(t, result.LeveledUp)
	assert.Len(t, result.CompletedDailyChallenges, 1)
	assert.Empty(t, result.CompletedWeeklyChallenges)
	assert.Len(t, result.UnlockedAchievements, 1)

	var profile models.UserProfile
	assert.NoError(t, db.First(&profile, "user_id = ?", "user1").Error)
	assert.Equal(t, 45, profile.XPTotal)
	assert.Equal(t, 1, profile.LifetimeTasksCompleted)
	assert.Equal(t, 1, profile.LifetimeHighPriorityCompleted)
	assert.Equal(t, 1, profile.CurrentStreak)
	assert.Equal(t, 1, profile.LongestStreak)
	assert.Equal(t, 1, profile.AchievementsUnlocked)
	if assert.NotNil(t, profile.LastActiveDate) {
		assert.True(t, utils.SameDay(*profile.LastActiveDate, utils.Today()))
	}

	// The weekly challenge advanced via the fold but did not complete
	var weekly models.UserWeeklyChallenge
	assert.NoError(t, db.First(&weekly, "user_id = ?", "user1").Error)
	assert.Equal(t, 1, weekly.Progress)
	assert.False(t, weekly.Completed)

	// The day rollup carries the full amount, bonuses included
	var log models.UserActivityLog
	assert.NoError(t, db.First(&log, "user_id = ? AND date = ?", "user1", utils.Today()).Error)
	assert.Equal(t, 45, log.XPEarned)
	assert.Equal(t, 1, log.TasksCompleted)
	assert.True(t, log.StreakMaintained)
}

func TestAwardActionXP_MissingProfileIsSafe(t *testing.T) {
	db := setupTestDB(t)

	result, err := AwardActionXP("ghost", 25, ActionTask, AwardFlags{})
	assert.NoError(t, err)
	assert.Equal(t, 25, result.ActionTotalXP)
	assert.Equal(t, 0, result.NewXPTotal)
	assert.Empty(t, result.UnlockedAchievements)

	// Nothing was persisted for the unknown user
	var profiles, logs int64
	db.Model(&models.UserProfile{}).Count(&profiles)
	db.Model(&models.UserActivityLog{}).Count(&logs)
	assert.Equal(t, int64(0), profiles)
	assert.Equal(t, int64(0), logs)
}

func TestAwardActionXP_SameDaySecondAction(t *testing.T) {
	db := setupTestDB(t)
	createTestProfile(t, db, "user1")

	first, err := AwardActionXP("user1", 10, ActionTask, AwardFlags{})
	assert.NoError(t, err)
	assert.Equal(t, 1, first.NewStreak)

	second, err := AwardActionXP("user1", 10, ActionTask, AwardFlags{})
	assert.NoError(t, err)
	assert.Equal(t, 1, second.NewStreak, "the streak advances once per calendar day")
	assert.Equal(t, 20, second.NewXPTotal)

	var profile models.UserProfile
	db.First(&profile, "user_id = ?", "user1")
	assert.Equal(t, 2, profile.LifetimeTasksCompleted)
	assert.Equal(t, 1, profile.CurrentStreak)
}

func TestAwardActionXP_LevelUp(t *testing.T) {
	db := setupTestDB(t)
	profile := createTestProfile(t, db, "user1")
	profile.XPTotal = 140 // one point short of level 2
	assert.NoError(t, db.Save(profile).Error)

	result, err := AwardActionXP("user1", 25, ActionTask, AwardFlags{})
	assert.NoError(t, err)

	assert.Equal(t, 165, result.NewXPTotal)
	assert.True(t, result.LeveledUp)
	if assert.NotNil(t, result.NewLevel) {
		assert.Equal(t, 2, *result.NewLevel)
	}
}

func TestAwardActionXP_FocusCounters(t *testing.T) {
	db := setupTestDB(t)
	createTestProfile(t, db, "user1")

	_, err := AwardActionXP("user1", 10, ActionFocus, AwardFlags{
		FocusMinutes:       55,
		IsLongFocusSession: true,
	})
	assert.NoError(t, err)

	var profile models.UserProfile
	db.First(&profile, "user_id = ?", "user1")
	assert.Equal(t, 55, profile.LifetimeFocusMinutes)
	assert.Equal(t, 1, profile.LifetimeLongFocusSessions)

	var log models.UserActivityLog
	db.First(&log, "user_id = ?", "user1")
	assert.Equal(t, 55, log.FocusMinutes)
	assert.Equal(t, 0, log.TasksCompleted)
}

func TestAwardActionXP_TimeOfDayCounters(t *testing.T) {
	db := setupTestDB(t)
	createTestProfile(t, db, "user1")

	early := 6
	_, err := AwardActionXP("user1", 10, ActionTask, AwardFlags{CompletionHour: &early})
	assert.NoError(t, err)

	late := 23
	_, err = AwardActionXP("user1", 10, ActionTask, AwardFlags{CompletionHour: &late})
	assert.NoError(t, err)

	boundary := EarlyBirdHour // exactly 7am is neither
	_, err = AwardActionXP("user1", 10, ActionTask, AwardFlags{CompletionHour: &boundary})
	assert.NoError(t, err)

	var profile models.UserProfile
	db.First(&profile, "user_id = ?", "user1")
	assert.Equal(t, 1, profile.LifetimeEarlyBirdTasks)
	assert.Equal(t, 1, profile.LifetimeNightOwlTasks)
}

func TestRevokeActionXP_SubtractsExactlyBase(t *testing.T) {
	db := setupTestDB(t)
	createTestProfile(t, db, "user1")

	db.Create(&models.DailyChallengeTemplate{ID: "d_easy", Name: "One Task", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeTasks, TargetValue: 1, XPReward: 10})

	result, err := AwardActionXP("user1", 25, ActionTask, AwardFlags{})
	assert.NoError(t, err)
	assert.Equal(t, 35, result.NewXPTotal)

	revoked, err := RevokeActionXP("user1", 25)
	assert.NoError(t, err)

	// Only the base comes back out; the challenge reward is keep-able
	assert.Equal(t, 10, revoked.XPTotal)

	var profile models.UserProfile
	db.First(&profile, "user_id = ?", "user1")
	assert.Equal(t, 10, profile.XPTotal)
	assert.Equal(t, 1, profile.LifetimeTasksCompleted, "lifetime counters never reverse")

	var challenge models.UserDailyChallenge
	db.First(&challenge, "user_id = ? AND template_id = ?", "user1", "d_easy")
	assert.True(t, challenge.Completed, "challenge completions never reverse")
}

func TestRevokeActionXP_FloorsAtZero(t *testing.T) {
	db := setupTestDB(t)
	profile := createTestProfile(t, db, "user1")
	profile.XPTotal = 10
	assert.NoError(t, db.Save(profile).Error)

	revoked, err := RevokeActionXP("user1", 25)
	assert.NoError(t, err)
	assert.Equal(t, 0, revoked.XPTotal)
	assert.Equal(t, 1, revoked.Level)
}

func TestRevokeActionXP_MissingProfile(t *testing.T) {
	setupTestDB(t)

	revoked, err := RevokeActionXP("ghost", 25)
	assert.NoError(t, err)
	assert.Nil(t, revoked)
}

func TestRecordBrainDump(t *testing.T) {
	db := setupTestDB(t)
	createTestProfile(t, db, "user1")

	db.Create(&models.Achievement{
		ID: "ach_dumps", Name: "Mind Clearer", StatKey: models.StatBrainDumps,
		BronzeThreshold: 1, BronzeXP: 15,
		SilverThreshold: 10, SilverXP: 30,
		GoldThreshold: 50, GoldXP: 60,
	})

	result, err := RecordBrainDump("user1")
	assert.NoError(t, err)
	assert.Len(t, result.UnlockedAchievements, 1)
	assert.Equal(t, 15, result.NewXPTotal, "brain dumps pay no base XP, only achievement rewards")

	var profile models.UserProfile
	db.First(&profile, "user_id = ?", "user1")
	assert.Equal(t, 1, profile.LifetimeBrainDumps)
	assert.Equal(t, 15, profile.XPTotal)
}
