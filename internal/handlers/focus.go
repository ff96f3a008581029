package handlers

import (
	"net/http"
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

// Finishing any focus session pays this flat base; the minutes themselves
// feed challenge progress and lifetime counters, not the base award.
const focusBaseXP = 10

type FinishFocusInput struct {
	Minutes   int        `json:"minutes" binding:"required,min=1"`
	TaskID    *string    `json:"taskId"`
	StartedAt *time.Time `json:"startedAt"`
}

// FinishFocusSession handles POST /focus/finish. The client runs the
// timer; the server records the result and awards progression.
func FinishFocusSession(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input FinishFocusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Sessions longer than a day are a client bug, not a marathon
	if input.Minutes > 24*60 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session length is out of range"})
		return
	}

	now := time.Now()
	startedAt := now.Add(-time.Duration(input.Minutes) * time.Minute)
	if input.StartedAt != nil {
		startedAt = *input.StartedAt
	}

	session := models.FocusSession{
		UserID:     userID.(string),
		Minutes:    input.Minutes,
		TaskID:     input.TaskID,
		StartedAt:  startedAt,
		FinishedAt: &now,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save focus session"})
		return
	}

	award, err := services.AwardActionXP(userID.(string), focusBaseXP, services.ActionFocus, services.AwardFlags{
		FocusMinutes:       session.Minutes,
		IsLongFocusSession: session.IsLong(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award XP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"award":   award,
	})
}

// ListFocusSessions handles GET /focus
func ListFocusSessions(c *gin.Context) {
	userID, _ := c.Get("userId")

	var sessions []models.FocusSession
	if result := database.DB.
		Where("user_id = ?", userID.(string)).
		Order("created_at desc").
		Limit(100).
		Find(&sessions); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch focus sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
