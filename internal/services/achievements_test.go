package services

import (
	"testing"
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/stretchr/testify/assert"
)

func taskAchievementTemplate() models.Achievement {
	return models.Achievement{
		ID:              "ach_tasks",
		Name:            "Task Slayer",
		StatKey:         models.StatTasksCompleted,
		BronzeThreshold: 1, BronzeXP: 10,
		SilverThreshold: 5, SilverXP: 25,
		GoldThreshold: 25, GoldXP: 50,
	}
}

func TestUnlockedTiers_MultiTierJump(t *testing.T) {
	a := taskAchievementTemplate()

	assert.Empty(t, UnlockedTiers(&a, 0))
	assert.Equal(t, []Tier{TierBronze}, UnlockedTiers(&a, 1))
	assert.Equal(t, []Tier{TierBronze, TierSilver}, UnlockedTiers(&a, 5))
	// One big jump from zero past gold crosses all three at once
	assert.Equal(t, []Tier{TierBronze, TierSilver, TierGold}, UnlockedTiers(&a, 30))
}

func TestCheckAchievementProgress_SkipsUnlockedTiers(t *testing.T) {
	a := taskAchievementTemplate()
	now := time.Now()
	prior := &models.UserAchievement{
		UserID:           "user1",
		AchievementID:    a.ID,
		ProgressValue:    3,
		BronzeUnlockedAt: &now,
	}

	check := CheckAchievementProgress(&a, 30, prior)
	assert.Equal(t, []Tier{TierSilver, TierGold}, check.NewTiers)
	assert.Equal(t, 75, check.XPAwarded)
}

func TestCheckAllAchievements_AwardsAndPersists(t *testing.T) {
	db := setupTestDB(t)
	createTestProfile(t, db, "user1")

	a := taskAchievementTemplate()
	db.Create(&a)

	snapshot := models.UserProfile{UserID: "user1", LifetimeTasksCompleted: 6}
	unlocked, xp, err := CheckAllAchievements(db, "user1", &snapshot)

	assert.NoError(t, err)
	assert.Len(t, unlocked, 2) // bronze + silver
	assert.Equal(t, 35, xp)

	var row models.UserAchievement
	assert.NoError(t, db.First(&row, "user_id = ? AND achievement_id = ?", "user1", a.ID).Error)
	assert.Equal(t, 6, row.ProgressValue)
	assert.NotNil(t, row.BronzeUnlockedAt)
	assert.NotNil(t, row.SilverUnlockedAt)
	assert.Nil(t, row.GoldUnlockedAt)

	// achievements_unlocked is recounted, not incremented
	assert.Equal(t, 1, snapshot.AchievementsUnlocked)
}

func TestCheckAllAchievements_NeverReAwards(t *testing.T) {
	db := setupTestDB(t)
	createTestProfile(t, db, "user1")

	a := taskAchievementTemplate()
	db.Create(&a)

	snapshot := models.UserProfile{UserID: "user1", LifetimeTasksCompleted: 6}
	_, xp, err := CheckAllAchievements(db, "user1", &snapshot)
	assert.NoError(t, err)
	assert.Equal(t, 35, xp)

	// Same snapshot again: nothing new, no XP
	unlocked, xp, err := CheckAllAchievements(db, "user1", &snapshot)
	assert.NoError(t, err)
	assert.Empty(t, unlocked)
	assert.Equal(t, 0, xp)

	// Progress moves forward but stays below gold: still nothing
	snapshot.LifetimeTasksCompleted = 10
	unlocked, xp, err = CheckAllAchievements(db, "user1", &snapshot)
	assert.NoError(t, err)
	assert.Empty(t, unlocked)
	assert.Equal(t, 0, xp)

	var row models.UserAchievement
	db.First(&row, "user_id = ? AND achievement_id = ?", "user1", a.ID)
	assert.Equal(t, 10, row.ProgressValue, "progress value refreshes even without new tiers")
}

func TestCheckAllAchievements_NoTemplates(t *testing.T) {
	db := setupTestDB(t)
	createTestProfile(t, db, "user1")

	snapshot := models.UserProfile{UserID: "user1", LifetimeTasksCompleted: 100}
	unlocked, xp, err := CheckAllAchievements(db, "user1", &snapshot)

	assert.NoError(t, err)
	assert.Empty(t, unlocked)
	assert.Equal(t, 0, xp)
}
