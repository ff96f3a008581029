package handlers

import (
	"net/http"
	"strconv"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/internal/services"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProfile handles GET /progression/profile
func GetProfile(c *gin.Context) {
	userID, _ := c.Get("userId")

	var profile models.UserProfile
	if err := database.DB.First(&profile, "user_id = ?", userID.(string)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":       profile,
		"levelProgress": services.LevelProgress(profile.XPTotal),
	})
}

// GetAchievements handles GET /progression/achievements. Every template
// is returned; user progress rows are joined in where they exist.
func GetAchievements(c *gin.Context) {
	userID, _ := c.Get("userId")

	var achievements []models.Achievement
	if err := database.DB.Order("id asc").Find(&achievements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	var progress []models.UserAchievement
	database.DB.Where("user_id = ?", userID.(string)).Find(&progress)

	byID := make(map[string]models.UserAchievement, len(progress))
	for _, ua := range progress {
		byID[ua.AchievementID] = ua
	}

	type achievementWithProgress struct {
		models.Achievement
		ProgressValue int                     `json:"progressValue"`
		Unlocks       *models.UserAchievement `json:"unlocks,omitempty"`
	}
	out := make([]achievementWithProgress, 0, len(achievements))
	for _, a := range achievements {
		entry := achievementWithProgress{Achievement: a}
		if ua, ok := byID[a.ID]; ok {
			entry.ProgressValue = ua.ProgressValue
			if ua.HasAnyTier() {
				u := ua
				entry.Unlocks = &u
			}
		}
		out = append(out, entry)
	}

	c.JSON(http.StatusOK, gin.H{"achievements": out})
}

// GetTodayChallenges handles GET /progression/challenges. Generates the
// day's set on first read, so a fresh morning request is what creates it.
func GetTodayChallenges(c *gin.Context) {
	userID, _ := c.Get("userId")
	today := utils.Today()

	daily, err := services.EnsureDailyChallenges(database.DB, userID.(string), today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load daily challenges"})
		return
	}

	weekly, err := services.EnsureWeeklyChallenge(database.DB, userID.(string), utils.WeekStart(today))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load weekly challenge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily":  daily,
		"weekly": weekly,
	})
}

// GetActivityHistory handles GET /progression/activity?days=30
func GetActivityHistory(c *gin.Context) {
	userID, _ := c.Get("userId")

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	rows, err := services.GetActivityHistory(database.DB, userID.(string), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": rows})
}

// GetStreakFreezes handles GET /progression/streak-freezes
func GetStreakFreezes(c *gin.Context) {
	userID, _ := c.Get("userId")

	var row models.UserStreakFreezes
	err := database.DB.First(&row, "user_id = ?", userID.(string)).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	// No row yet just means zero freezes banked
	row.UserID = userID.(string)

	c.JSON(http.StatusOK, gin.H{"streakFreezes": row})
}
