package seeds

import (
	"log"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/google/uuid"
)

// SeedChallengeTemplates fills the daily and weekly pools. Each daily
// difficulty needs at least one template or generation quietly skips
// that slot.
func SeedChallengeTemplates() {
	log.Println("🎯 Seeding Challenge Templates...")

	daily := []models.DailyChallengeTemplate{
		// Easy
		{Name: "Quick Win", Description: "Complete 1 task today.", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeTasks, TargetValue: 1, XPReward: 10},
		{Name: "Habit Starter", Description: "Check in 1 habit today.", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeHabits, TargetValue: 1, XPReward: 10},
		{Name: "Warm Up", Description: "Focus for 15 minutes.", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeFocusMinutes, TargetValue: 15, XPReward: 10},
		{Name: "On the Books", Description: "Complete 1 schedule block.", Difficulty: models.DifficultyEasy, ChallengeType: models.ChallengeScheduleBlocks, TargetValue: 1, XPReward: 10},

		// Medium
		{Name: "Task Trio", Description: "Complete 3 tasks today.", Difficulty: models.DifficultyMedium, ChallengeType: models.ChallengeTasks, TargetValue: 3, XPReward: 25},
		{Name: "Priorities First", Description: "Complete 1 high-priority task.", Difficulty: models.DifficultyMedium, ChallengeType: models.ChallengeHighPriorityTasks, TargetValue: 1, XPReward: 25},
		{Name: "Deep Half Hour", Description: "Focus for 30 minutes.", Difficulty: models.DifficultyMedium, ChallengeType: models.ChallengeFocusMinutes, TargetValue: 30, XPReward: 25},
		{Name: "Dawn Patrol", Description: "Complete a task before 7am.", Difficulty: models.DifficultyMedium, ChallengeType: models.ChallengeEarlyBirdTasks, TargetValue: 1, XPReward: 25},

		// Hard
		{Name: "Power Five", Description: "Complete 5 tasks today.", Difficulty: models.DifficultyHard, ChallengeType: models.ChallengeTasks, TargetValue: 5, XPReward: 50},
		{Name: "Big Rocks", Description: "Complete 2 high-priority tasks.", Difficulty: models.DifficultyHard, ChallengeType: models.ChallengeHighPriorityTasks, TargetValue: 2, XPReward: 50},
		{Name: "Deep Work Hour", Description: "Focus for 60 minutes.", Difficulty: models.DifficultyHard, ChallengeType: models.ChallengeFocusMinutes, TargetValue: 60, XPReward: 50},
		// Sentinel: completes only when every active habit is done today
		{Name: "Clean Sweep", Description: "Complete every one of your habits today.", Difficulty: models.DifficultyHard, ChallengeType: models.ChallengeAllHabits, TargetValue: 0, XPReward: 50},
	}

	weekly := []models.WeeklyChallengeTemplate{
		{Name: "Task Machine", Description: "Complete 15 tasks this week.", ChallengeType: models.ChallengeTasks, TargetValue: 15, XPReward: 100},
		{Name: "Habit Week", Description: "Check in 10 habits this week.", ChallengeType: models.ChallengeHabits, TargetValue: 10, XPReward: 100},
		{Name: "Focus Forge", Description: "Focus for 180 minutes this week.", ChallengeType: models.ChallengeFocusMinutes, TargetValue: 180, XPReward: 100},
		{Name: "Planner's Week", Description: "Complete 7 schedule blocks this week.", ChallengeType: models.ChallengeScheduleBlocks, TargetValue: 7, XPReward: 100},
	}

	for _, t := range daily {
		var existing models.DailyChallengeTemplate
		if err := database.DB.Where("name = ?", t.Name).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Daily template already exists: %s", t.Name)
			continue
		}

		t.ID = uuid.New().String()
		if err := database.DB.Create(&t).Error; err != nil {
			log.Printf("   ❌ Failed to create daily template %s: %v", t.Name, err)
		} else {
			log.Printf("   🎯 Daily Template Defined: %s (%s)", t.Name, t.Difficulty)
		}
	}

	for _, t := range weekly {
		var existing models.WeeklyChallengeTemplate
		if err := database.DB.Where("name = ?", t.Name).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Weekly template already exists: %s", t.Name)
			continue
		}

		t.ID = uuid.New().String()
		if err := database.DB.Create(&t).Error; err != nil {
			log.Printf("   ❌ Failed to create weekly template %s: %v", t.Name, err)
		} else {
			log.Printf("   🗓️ Weekly Template Defined: %s", t.Name)
		}
	}
}
