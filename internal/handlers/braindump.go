package handlers

import (
	"net/http"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

type CreateBrainDumpInput struct {
	Content string `json:"content" binding:"required"`
}

// CreateBrainDump handles POST /brain-dump. No base XP; only the lifetime
// stat moves, which can still unlock achievements.
func CreateBrainDump(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input CreateBrainDumpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.BrainDumpEntry{
		UserID:  userID.(string),
		Content: input.Content,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save entry"})
		return
	}

	award, err := services.RecordBrainDump(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record brain dump"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"entry": entry,
		"award": award,
	})
}

// ListBrainDumps handles GET /brain-dump
func ListBrainDumps(c *gin.Context) {
	userID, _ := c.Get("userId")

	var entries []models.BrainDumpEntry
	if result := database.DB.
		Where("user_id = ?", userID.(string)).
		Order("created_at desc").
		Limit(100).
		Find(&entries); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
