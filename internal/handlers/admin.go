package handlers

import (
	"net/http"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/internal/seeds"
	"github.com/gin-gonic/gin"
)

// ReseedTemplates re-runs the idempotent achievement and challenge
// template seeds. Useful after deploying new template definitions
// without restarting the server.
func ReseedTemplates(c *gin.Context) {
	seeds.SeedAchievements()
	seeds.SeedChallengeTemplates()

	var achievements, daily, weekly int64
	database.DB.Model(&models.Achievement{}).Count(&achievements)
	database.DB.Model(&models.DailyChallengeTemplate{}).Count(&daily)
	database.DB.Model(&models.WeeklyChallengeTemplate{}).Count(&weekly)

	c.JSON(http.StatusOK, gin.H{
		"message": "Templates seeded",
		"counts": gin.H{
			"achievements":     achievements,
			"daily_templates":  daily,
			"weekly_templates": weekly,
		},
	})
}

// AdminStats returns coarse platform counts for the admin dashboard.
func AdminStats(c *gin.Context) {
	var users, tasks, habits, groups int64
	database.DB.Model(&models.User{}).Count(&users)
	database.DB.Model(&models.Task{}).Count(&tasks)
	database.DB.Model(&models.Habit{}).Count(&habits)
	database.DB.Model(&models.Group{}).Count(&groups)

	c.JSON(http.StatusOK, gin.H{
		"users":  users,
		"tasks":  tasks,
		"habits": habits,
		"groups": groups,
	})
}
