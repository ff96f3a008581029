package handlers

import (
	"net/http"
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTaskInput struct {
	Title    string              `json:"title" binding:"required"`
	Notes    string              `json:"notes"`
	Priority models.TaskPriority `json:"priority"`
	DueDate  *time.Time          `json:"dueDate"`
	IsQuest  bool                `json:"isQuest"`
}

type UpdateTaskInput struct {
	Title    string              `json:"title"`
	Notes    string              `json:"notes"`
	Priority models.TaskPriority `json:"priority"`
	DueDate  *time.Time          `json:"dueDate"`
}

// ListTasks handles GET /tasks
func ListTasks(c *gin.Context) {
	userID, _ := c.Get("userId")

	query := database.DB.Where("user_id = ?", userID.(string))

	if completed := c.Query("completed"); completed != "" {
		query = query.Where("completed = ?", completed == "true")
	}

	var tasks []models.Task
	if result := query.Order("created_at desc").Find(&tasks); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// CreateTask handles POST /tasks
func CreateTask(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := models.Task{
		UserID:   userID.(string),
		Title:    input.Title,
		Notes:    input.Notes,
		Priority: input.Priority,
		DueDate:  input.DueDate,
		IsQuest:  input.IsQuest,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	if result := database.DB.Create(&task); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// GetTask handles GET /tasks/:id
func GetTask(c *gin.Context) {
	userID, _ := c.Get("userId")

	var task models.Task
	if result := database.DB.First(&task, "id = ? AND user_id = ?", c.Param("id"), userID.(string)); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// UpdateTask handles PUT /tasks/:id
func UpdateTask(c *gin.Context) {
	userID, _ := c.Get("userId")

	var task models.Task
	if result := database.DB.First(&task, "id = ? AND user_id = ?", c.Param("id"), userID.(string)); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var input UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != "" {
		task.Title = input.Title
	}
	task.Notes = input.Notes
	if input.Priority != "" {
		task.Priority = input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	database.DB.Save(&task)

	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask handles DELETE /tasks/:id
func DeleteTask(c *gin.Context) {
	userID, _ := c.Get("userId")

	var task models.Task
	if result := database.DB.First(&task, "id = ? AND user_id = ?", c.Param("id"), userID.(string)); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	database.DB.Delete(&task)

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// CompleteTask handles POST /tasks/:id/complete. The task flips first;
// the progression award rides on top of the successful state change.
func CompleteTask(c *gin.Context) {
	userID, _ := c.Get("userId")

	var task models.Task
	if result := database.DB.First(&task, "id = ? AND user_id = ?", c.Param("id"), userID.(string)); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if task.Completed {
		c.JSON(http.StatusConflict, gin.H{"error": "Task is already completed"})
		return
	}

	now := time.Now()
	task.Completed = true
	task.CompletedAt = &now
	if err := database.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
		return
	}

	hour := now.Hour()
	award, err := services.AwardActionXP(userID.(string), task.BaseXP(), services.ActionTask, services.AwardFlags{
		IsHighPriority: task.Priority == models.PriorityHigh,
		IsQuest:        task.IsQuest,
		CompletionHour: &hour,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award XP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":  task,
		"award": award,
	})
}

// UncompleteTask handles POST /tasks/:id/uncomplete. Only the base XP
// comes back out; bonuses and counters stay.
func UncompleteTask(c *gin.Context) {
	userID, _ := c.Get("userId")

	var task models.Task
	if result := database.DB.First(&task, "id = ? AND user_id = ?", c.Param("id"), userID.(string)); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if !task.Completed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task is not completed"})
		return
	}

	task.Completed = false
	task.CompletedAt = nil
	if err := database.DB.Model(&task).Updates(map[string]interface{}{
		"completed":    false,
		"completed_at": nil,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	profile, err := services.RevokeActionXP(userID.(string), task.BaseXP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke XP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":    task,
		"profile": profile,
	})
}
