package handlers

import (
	"net/http"
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

const scheduleBlockBaseXP = 10

type CreateScheduleBlockInput struct {
	Title     string    `json:"title" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// ListScheduleBlocks handles GET /schedule
func ListScheduleBlocks(c *gin.Context) {
	userID, _ := c.Get("userId")

	query := database.DB.Where("user_id = ?", userID.(string))

	if from := c.Query("from"); from != "" {
		query = query.Where("start_time >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("start_time < ?", to)
	}

	var blocks []models.ScheduleBlock
	if result := query.Order("start_time asc").Find(&blocks); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedule blocks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// CreateScheduleBlock handles POST /schedule
func CreateScheduleBlock(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input CreateScheduleBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !input.EndTime.After(input.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End time must be after start time"})
		return
	}

	block := models.ScheduleBlock{
		UserID:    userID.(string),
		Title:     input.Title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}
	if result := database.DB.Create(&block); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule block"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"block": block})
}

// DeleteScheduleBlock handles DELETE /schedule/:id
func DeleteScheduleBlock(c *gin.Context) {
	userID, _ := c.Get("userId")

	var block models.ScheduleBlock
	if result := database.DB.First(&block, "id = ? AND user_id = ?", c.Param("id"), userID.(string)); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule block not found"})
		return
	}

	database.DB.Delete(&block)

	c.JSON(http.StatusOK, gin.H{"message": "Schedule block deleted"})
}

// CompleteScheduleBlock handles POST /schedule/:id/complete
func CompleteScheduleBlock(c *gin.Context) {
	userID, _ := c.Get("userId")

	var block models.ScheduleBlock
	if result := database.DB.First(&block, "id = ? AND user_id = ?", c.Param("id"), userID.(string)); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule block not found"})
		return
	}

	if block.Completed {
		c.JSON(http.StatusConflict, gin.H{"error": "Schedule block is already completed"})
		return
	}

	now := time.Now()
	block.Completed = true
	block.CompletedAt = &now
	if err := database.DB.Save(&block).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete schedule block"})
		return
	}

	hour := now.Hour()
	award, err := services.AwardActionXP(userID.(string), scheduleBlockBaseXP, services.ActionScheduleBlock, services.AwardFlags{
		CompletionHour: &hour,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award XP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"block": block,
		"award": award,
	})
}
