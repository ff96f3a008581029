package services

import (
	"fmt"
	"testing"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB initializes a fresh in-memory SQLite DB for one test and
// points the global database handle at it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Init("test")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.DailyChallengeTemplate{},
		&models.UserDailyChallenge{},
		&models.WeeklyChallengeTemplate{},
		&models.UserWeeklyChallenge{},
		&models.UserStreakFreezes{},
		&models.UserActivityLog{},
		&models.Habit{},
		&models.HabitCompletion{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupChallenge{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	database.DB = db
	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, userID string) *models.UserProfile {
	t.Helper()
	profile := &models.UserProfile{
		UserID: userID,
		Level:  1,
		Title:  "Novice",
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}
