package main

import (
	"log"

	"github.com/Alienware2000/intentionality-sub000/internal/config"
	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	database.DB.AutoMigrate(
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
		&models.Task{},
		&models.Habit{},
		&models.HabitCompletion{},
		&models.FocusSession{},
		&models.ScheduleBlock{},
		&models.BrainDumpEntry{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupChallenge{},
	)

	seeds.SeedAchievements()
	seeds.SeedChallengeTemplates()

	if _, err := seeds.GetOrCreateDemoUser(); err != nil {
		log.Fatalf("❌ Failed to create demo user: %v", err)
	}

	log.Println("✅ Seeding Complete!")
}
