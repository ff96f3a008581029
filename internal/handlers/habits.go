package handlers

import (
	"net/http"
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/internal/services"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Every habit check-in pays the same flat base.
const habitBaseXP = 10

type CreateHabitInput struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

type UpdateHabitInput struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Archived *bool  `json:"archived"`
}

// ListHabits handles GET /habits. Today's completion state is joined in
// so the client can render check-in toggles in one request.
func ListHabits(c *gin.Context) {
	userID, _ := c.Get("userId")

	var habits []models.Habit
	if result := database.DB.
		Where("user_id = ? AND archived = ?", userID.(string), false).
		Order("created_at asc").
		Find(&habits); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch habits"})
		return
	}

	var completions []models.HabitCompletion
	database.DB.Where("user_id = ? AND date = ?", userID.(string), utils.Today()).Find(&completions)

	doneToday := make(map[string]bool, len(completions))
	for _, hc := range completions {
		doneToday[hc.HabitID] = true
	}

	type habitWithState struct {
		models.Habit
		CompletedToday bool `json:"completedToday"`
	}
	out := make([]habitWithState, 0, len(habits))
	for _, h := range habits {
		out = append(out, habitWithState{Habit: h, CompletedToday: doneToday[h.ID]})
	}

	c.JSON(http.StatusOK, gin.H{"habits": out})
}

// CreateHabit handles POST /habits
func CreateHabit(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input CreateHabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit := models.Habit{
		UserID: userID.(string),
		Name:   input.Name,
		Icon:   input.Icon,
	}
	if result := database.DB.Create(&habit); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create habit"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

// UpdateHabit handles PUT /habits/:id
func UpdateHabit(c *gin.Context) {
	userID, _ := c.Get("userId")

	var habit models.Habit
	if result := database.DB.First(&habit, "id = ? AND user_id = ?", c.Param("id"), userID.(string)); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return
	}

	var input UpdateHabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		habit.Name = input.Name
	}
	if input.Icon != "" {
		habit.Icon = input.Icon
	}
	if input.Archived != nil {
		habit.Archived = *input.Archived
	}

	database.DB.Save(&habit)

	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

// DeleteHabit handles DELETE /habits/:id
func DeleteHabit(c *gin.Context) {
	userID, _ := c.Get("userId")

	var habit models.Habit
	if result := database.DB.First(&habit, "id = ? AND user_id = ?", c.Param("id"), userID.(string)); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return
	}

	database.DB.Delete(&habit)

	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted"})
}

// CheckInHabit handles POST /habits/:id/check-in. One check-in per habit
// per day; the unique index backs up the in-handler check.
func CheckInHabit(c *gin.Context) {
	userID, _ := c.Get("userId")

	var habit models.Habit
	if result := database.DB.First(&habit, "id = ? AND user_id = ?", c.Param("id"), userID.(string)); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return
	}
	if habit.Archived {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot check in an archived habit"})
		return
	}

	today := utils.Today()

	var existing models.HabitCompletion
	if err := database.DB.First(&existing, "habit_id = ? AND date = ?", habit.ID, today).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Habit already completed today"})
		return
	}

	completion := models.HabitCompletion{
		HabitID: habit.ID,
		UserID:  userID.(string),
		Date:    today,
	}
	if err := database.DB.Create(&completion).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Habit already completed today"})
		return
	}

	hour := time.Now().Hour()
	award, err := services.AwardActionXP(userID.(string), habitBaseXP, services.ActionHabit, services.AwardFlags{
		CompletionHour: &hour,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to award XP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"completion": completion,
		"award":      award,
	})
}
