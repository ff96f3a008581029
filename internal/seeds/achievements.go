package seeds

import (
	"log"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/google/uuid"
)

// SeedAchievements defines one tiered achievement per lifetime stat.
func SeedAchievements() {
	log.Println("🏅 Seeding Achievements...")

	achievements := []models.Achievement{
		{
			Name:        "Task Slayer",
			Description: "Complete tasks, any priority.",
			Icon:        "check-circle",
			StatKey:     models.StatTasksCompleted,
			BronzeThreshold: 10, BronzeXP: 25,
			SilverThreshold: 100, SilverXP: 100,
			GoldThreshold: 500, GoldXP: 250,
		},
		{
			Name:        "Heavy Lifter",
			Description: "Complete high-priority tasks.",
			Icon:        "flame",
			StatKey:     models.StatHighPriorityCompleted,
			BronzeThreshold: 5, BronzeXP: 25,
			SilverThreshold: 50, SilverXP: 100,
			GoldThreshold: 250, GoldXP: 250,
		},
		{
			Name:        "Creature of Habit",
			Description: "Check in habits day after day.",
			Icon:        "repeat",
			StatKey:     models.StatHabitsCompleted,
			BronzeThreshold: 10, BronzeXP: 25,
			SilverThreshold: 100, SilverXP: 100,
			GoldThreshold: 500, GoldXP: 250,
		},
		{
			Name:        "Deep Worker",
			Description: "Accumulate focused minutes.",
			Icon:        "brain",
			StatKey:     models.StatFocusMinutes,
			BronzeThreshold: 300, BronzeXP: 25,
			SilverThreshold: 3000, SilverXP: 100,
			GoldThreshold: 15000, GoldXP: 250,
		},
		{
			Name:        "Marathon Mind",
			Description: "Finish long focus sessions of 50 minutes or more.",
			Icon:        "timer",
			StatKey:     models.StatLongFocusSessions,
			BronzeThreshold: 5, BronzeXP: 25,
			SilverThreshold: 50, SilverXP: 100,
			GoldThreshold: 200, GoldXP: 250,
		},
		{
			Name:        "Early Bird",
			Description: "Complete actions before 7am.",
			Icon:        "sunrise",
			StatKey:     models.StatEarlyBirdTasks,
			BronzeThreshold: 5, BronzeXP: 25,
			SilverThreshold: 25, SilverXP: 100,
			GoldThreshold: 100, GoldXP: 250,
		},
		{
			Name:        "Night Owl",
			Description: "Complete actions after 10pm.",
			Icon:        "moon",
			StatKey:     models.StatNightOwlTasks,
			BronzeThreshold: 5, BronzeXP: 25,
			SilverThreshold: 25, SilverXP: 100,
			GoldThreshold: 100, GoldXP: 250,
		},
		{
			Name:        "Phoenix",
			Description: "Come back after a broken streak.",
			Icon:        "refresh-cw",
			StatKey:     models.StatStreakRecoveries,
			BronzeThreshold: 1, BronzeXP: 25,
			SilverThreshold: 5, SilverXP: 100,
			GoldThreshold: 20, GoldXP: 250,
		},
		{
			Name:        "Quest Hero",
			Description: "Complete multi-step quests.",
			Icon:        "map",
			StatKey:     models.StatQuestsCompleted,
			BronzeThreshold: 1, BronzeXP: 25,
			SilverThreshold: 10, SilverXP: 100,
			GoldThreshold: 50, GoldXP: 250,
		},
		{
			Name:        "Perfectionist",
			Description: "Finish weekly challenges in fully active weeks.",
			Icon:        "calendar-check",
			StatKey:     models.StatPerfectWeeks,
			BronzeThreshold: 1, BronzeXP: 50,
			SilverThreshold: 5, SilverXP: 150,
			GoldThreshold: 20, GoldXP: 400,
		},
		{
			Name:        "Mind Clearer",
			Description: "Capture thoughts in the brain dump.",
			Icon:        "notebook-pen",
			StatKey:     models.StatBrainDumps,
			BronzeThreshold: 10, BronzeXP: 25,
			SilverThreshold: 50, SilverXP: 100,
			GoldThreshold: 250, GoldXP: 250,
		},
	}

	for _, a := range achievements {
		var existing models.Achievement
		if err := database.DB.Where("name = ?", a.Name).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Achievement already exists: %s", a.Name)
			continue
		}

		a.ID = uuid.New().String()
		if err := database.DB.Create(&a).Error; err != nil {
			log.Printf("   ❌ Failed to create achievement %s: %v", a.Name, err)
		} else {
			log.Printf("   🏅 Achievement Defined: %s", a.Name)
		}
	}
}
