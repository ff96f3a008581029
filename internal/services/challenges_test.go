package services

import (
	"testing"

	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedDailyTemplates(t *testing.T, db *gorm.DB) {
	t.Helper()
	templates := []models.DailyChallengeTemplate{
		{ID: "d_easy_tasks", Name: "Quick Wins", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeTasks, TargetValue: 1, XPReward: 10},
		{ID: "d_easy_habits", Name: "Habit Starter", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeHabits, TargetValue: 1, XPReward: 10},
		{ID: "d_med_tasks", Name: "Task Trio", Difficulty: models.DifficultyMedium, ChallengeType: models.ChallengeTasks, TargetValue: 3, XPReward: 25},
		{ID: "d_med_focus", Name: "Deep Half Hour", Difficulty: models.DifficultyMedium, ChallengeType: models.ChallengeFocusMinutes, TargetValue: 30, XPReward: 25},
		{ID: "d_hard_hp", Name: "Big Rocks", Difficulty: models.DifficultyHard, ChallengeType: models.ChallengeHighPriorityTasks, TargetValue: 2, XPReward: 50},
		{ID: "d_hard_allhabits", Name: "Clean Sweep", Difficulty: models.DifficultyHard, ChallengeType: models.ChallengeAllHabits, TargetValue: 0, XPReward: 50},
	}
	for _, tpl := range templates {
		assert.NoError(t, db.Create(&tpl).Error)
	}
}

func seedWeeklyTemplates(t *testing.T, db *gorm.DB) {
	t.Helper()
	templates := []models.WeeklyChallengeTemplate{
		{ID: "w_tasks", Name: "Task Machine", ChallengeType: models.ChallengeTasks, TargetValue: 15, XPReward: 100},
		{ID: "w_habits", Name: "Habit Week", ChallengeType: models.ChallengeHabits, TargetValue: 10, XPReward: 100},
	}
	for _, tpl := range templates {
		assert.NoError(t, db.Create(&tpl).Error)
	}
}

func TestShuffledIndexes_Deterministic(t *testing.T) {
	a := shuffledIndexes(20, 42)
	b := shuffledIndexes(20, 42)
	assert.Equal(t, a, b, "same seed must give the same permutation")

	c := shuffledIndexes(20, 43)
	assert.NotEqual(t, a, c, "adjacent seeds should decorrelate")
}

func TestChallengeSeed_VariesByUserAndPeriod(t *testing.T) {
	s1 := challengeSeed("2026-08-31", "alice")
	s2 := challengeSeed("2026-08-31", "bob")
	s3 := challengeSeed("2026-09-01", "alice")

	assert.Equal(t, s1, challengeSeed("2026-08-31", "alice"))
	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, s1, s3)
}

func TestEnsureDailyChallenges_GeneratesThree(t *testing.T) {
	db := setupTestDB(t)
	seedDailyTemplates(t, db)
	today := utils.Today()

	challenges, err := EnsureDailyChallenges(db, "user1", today)
	assert.NoError(t, err)
	assert.Len(t, challenges, 3)

	seen := make(map[models.ChallengeDifficulty]bool)
	for _, c := range challenges {
		seen[c.Difficulty] = true
	}
	assert.Len(t, seen, 3, "one challenge per difficulty")
}

func TestEnsureDailyChallenges_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	seedDailyTemplates(t, db)
	today := utils.Today()

	first, err := EnsureDailyChallenges(db, "user1", today)
	assert.NoError(t, err)

	second, err := EnsureDailyChallenges(db, "user1", today)
	assert.NoError(t, err)
	assert.Len(t, second, 3)

	firstIDs := make(map[string]bool)
	for _, c := range first {
		firstIDs[c.ID] = true
	}
	for _, c := range second {
		assert.True(t, firstIDs[c.ID], "second call must return the same rows, not new ones")
	}
}

func TestEnsureDailyChallenges_DeterministicSelection(t *testing.T) {
	db := setupTestDB(t)
	seedDailyTemplates(t, db)
	today := utils.Today()

	first, err := EnsureDailyChallenges(db, "user1", today)
	assert.NoError(t, err)

	templatesByDifficulty := func(cs []models.UserDailyChallenge) map[models.ChallengeDifficulty]string {
		m := make(map[models.ChallengeDifficulty]string)
		for _, c := range cs {
			m[c.Difficulty] = c.TemplateID
		}
		return m
	}
	want := templatesByDifficulty(first)

	// Wipe the instanced rows and regenerate: the same templates come back
	assert.NoError(t, db.Where("user_id = ?", "user1").Delete(&models.UserDailyChallenge{}).Error)

	regen, err := EnsureDailyChallenges(db, "user1", today)
	assert.NoError(t, err)
	assert.Equal(t, want, templatesByDifficulty(regen))
}

func TestEnsureDailyChallenges_FillsPartialSet(t *testing.T) {
	db := setupTestDB(t)
	seedDailyTemplates(t, db)
	today := utils.Today()

	first, err := EnsureDailyChallenges(db, "user1", today)
	assert.NoError(t, err)

	// Simulate a partial prior failure: drop the medium slot
	var keptIDs []string
	for _, c := range first {
		if c.Difficulty == models.DifficultyMedium {
			assert.NoError(t, db.Delete(&models.UserDailyChallenge{}, "id = ?", c.ID).Error)
		} else {
			keptIDs = append(keptIDs, c.ID)
		}
	}

	refilled, err := EnsureDailyChallenges(db, "user1", today)
	assert.NoError(t, err)
	assert.Len(t, refilled, 3)

	// The surviving rows are untouched
	kept := 0
	for _, c := range refilled {
		for _, id := range keptIDs {
			if c.ID == id {
				kept++
			}
		}
	}
	assert.Equal(t, 2, kept)
}

func TestEnsureWeeklyChallenge_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	seedWeeklyTemplates(t, db)
	weekStart := utils.WeekStart(utils.Today())

	first, err := EnsureWeeklyChallenge(db, "user1", weekStart)
	assert.NoError(t, err)
	assert.NotNil(t, first)

	second, err := EnsureWeeklyChallenge(db, "user1", weekStart)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.UserWeeklyChallenge{}).Where("user_id = ?", "user1").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateDailyChallengeProgress_CompletesOnce(t *testing.T) {
	db := setupTestDB(t)
	today := utils.Today()

	// Single-template pools keep the selection predictable
	db.Create(&models.DailyChallengeTemplate{ID: "d_easy", Name: "One Task", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeTasks, TargetValue: 2, XPReward: 20})
	db.Create(&models.DailyChallengeTemplate{ID: "d_med", Name: "Habits", Difficulty: models.DifficultyMedium, ChallengeType: models.ChallengeHabits, TargetValue: 3, XPReward: 25})
	db.Create(&models.DailyChallengeTemplate{ID: "d_hard", Name: "Focus", Difficulty: models.DifficultyHard, ChallengeType: models.ChallengeFocusMinutes, TargetValue: 60, XPReward: 50})

	completed, xp, err := UpdateDailyChallengeProgress(db, "user1", models.ChallengeTasks, 1, today)
	assert.NoError(t, err)
	assert.Empty(t, completed)
	assert.Equal(t, 0, xp)

	completed, xp, err = UpdateDailyChallengeProgress(db, "user1", models.ChallengeTasks, 1, today)
	assert.NoError(t, err)
	assert.Len(t, completed, 1)
	assert.Equal(t, 20, xp)

	// Further increments never re-trigger the reward
	completed, xp, err = UpdateDailyChallengeProgress(db, "user1", models.ChallengeTasks, 1, today)
	assert.NoError(t, err)
	assert.Empty(t, completed)
	assert.Equal(t, 0, xp)

	var row models.UserDailyChallenge
	db.First(&row, "user_id = ? AND template_id = ?", "user1", "d_easy")
	assert.True(t, row.Completed)
	assert.NotNil(t, row.CompletedAt)
	assert.Equal(t, 20, row.XPAwarded)
	assert.Equal(t, 2, row.Progress, "progress stops accumulating once completed")
}

func TestUpdateDailyChallengeProgress_SentinelNeverCompletesByIncrement(t *testing.T) {
	db := setupTestDB(t)
	today := utils.Today()

	db.Create(&models.DailyChallengeTemplate{ID: "d_easy", Name: "Sweep", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeAllHabits, TargetValue: 0, XPReward: 40})

	for i := 0; i < 5; i++ {
		completed, xp, err := UpdateDailyChallengeProgress(db, "user1", models.ChallengeAllHabits, 1, today)
		assert.NoError(t, err)
		assert.Empty(t, completed)
		assert.Equal(t, 0, xp)
	}

	var row models.UserDailyChallenge
	db.First(&row, "user_id = ? AND template_id = ?", "user1", "d_easy")
	assert.False(t, row.Completed, "sentinel challenges only complete via the condition check")
}

func TestCheckAllHabitsChallenge(t *testing.T) {
	db := setupTestDB(t)
	today := utils.Today()

	db.Create(&models.DailyChallengeTemplate{ID: "d_easy", Name: "Sweep", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeAllHabits, TargetValue: 0, XPReward: 40})

	db.Create(&models.Habit{ID: "h1", UserID: "user1", Name: "Read"})
	db.Create(&models.Habit{ID: "h2", UserID: "user1", Name: "Run"})

	// One of two habits done: condition not met
	db.Create(&models.HabitCompletion{ID: "hc1", HabitID: "h1", UserID: "user1", Date: today})
	completed, xp, err := CheckAllHabitsChallenge(db, "user1", today)
	assert.NoError(t, err)
	assert.Empty(t, completed)
	assert.Equal(t, 0, xp)

	// Both done: the sentinel completes despite target/progress being zero
	db.Create(&models.HabitCompletion{ID: "hc2", HabitID: "h2", UserID: "user1", Date: today})
	completed, xp, err = CheckAllHabitsChallenge(db, "user1", today)
	assert.NoError(t, err)
	assert.Len(t, completed, 1)
	assert.Equal(t, 40, xp)

	// Re-checking never pays twice
	completed, xp, err = CheckAllHabitsChallenge(db, "user1", today)
	assert.NoError(t, err)
	assert.Empty(t, completed)
	assert.Equal(t, 0, xp)
}

func TestCheckAllHabitsChallenge_NoHabits(t *testing.T) {
	db := setupTestDB(t)

	completed, xp, err := CheckAllHabitsChallenge(db, "user1", utils.Today())
	assert.NoError(t, err)
	assert.Empty(t, completed)
	assert.Equal(t, 0, xp, "zero habits can never satisfy the all-habits condition")
}

func TestUpdateWeeklyChallengeProgress_HighPriorityFoldsIntoTasks(t *testing.T) {
	db := setupTestDB(t)
	weekStart := utils.WeekStart(utils.Today())

	db.Create(&models.WeeklyChallengeTemplate{ID: "w_tasks", Name: "Task Machine", ChallengeType: models.ChallengeTasks, TargetValue: 2, XPReward: 100})

	_, xp, err := UpdateWeeklyChallengeProgress(db, "user1", models.ChallengeHighPriorityTasks, 1, weekStart)
	assert.NoError(t, err)
	assert.Equal(t, 0, xp)

	completed, xp, err := UpdateWeeklyChallengeProgress(db, "user1", models.ChallengeTasks, 1, weekStart)
	assert.NoError(t, err)
	assert.Len(t, completed, 1)
	assert.Equal(t, 100, xp)
}

func TestUpdateDailyChallengeProgress_NoTemplatesDegradesGracefully(t *testing.T) {
	db := setupTestDB(t)

	completed, xp, err := UpdateDailyChallengeProgress(db, "user1", models.ChallengeTasks, 1, utils.Today())
	assert.NoError(t, err)
	assert.Empty(t, completed)
	assert.Equal(t, 0, xp)
}
