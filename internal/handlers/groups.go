package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/internal/services"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateGroupInput struct {
	Name string `json:"name" binding:"required"`
}

type JoinGroupInput struct {
	InviteCode string `json:"inviteCode" binding:"required"`
}

// CreateGroup handles POST /groups. The creator joins automatically.
func CreateGroup(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input CreateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := models.Group{
		Name:       input.Name,
		InviteCode: strings.ToUpper(utils.GenerateID()[:8]),
		CreatedBy:  userID.(string),
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		member := models.GroupMember{
			GroupID:   group.ID,
			UserID:    userID.(string),
			JoinedAt:  time.Now(),
			WeekStart: utils.WeekStart(utils.Today()),
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": group})
}

// JoinGroup handles POST /groups/join
func JoinGroup(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input JoinGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var group models.Group
	if err := database.DB.First(&group, "invite_code = ?", strings.ToUpper(input.InviteCode)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid invite code"})
		return
	}

	var existing models.GroupMember
	if err := database.DB.First(&existing, "group_id = ? AND user_id = ?", group.ID, userID.(string)).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already a member of this group"})
		return
	}

	member := models.GroupMember{
		GroupID:   group.ID,
		UserID:    userID.(string),
		JoinedAt:  time.Now(),
		WeekStart: utils.WeekStart(utils.Today()),
	}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group"})
		return
	}

	services.InvalidateLeaderboardCache(group.ID)

	c.JSON(http.StatusOK, gin.H{"group": group})
}

// ListMyGroups handles GET /groups
func ListMyGroups(c *gin.Context) {
	userID, _ := c.Get("userId")

	var memberships []models.GroupMember
	if err := database.DB.Where("user_id = ?", userID.(string)).Find(&memberships).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch groups"})
		return
	}

	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.GroupID)
	}

	var groups []models.Group
	if len(ids) > 0 {
		if err := database.DB.Where("id IN ?", ids).Find(&groups).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch groups"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetGroupLeaderboard handles GET /groups/:id/leaderboard. Members only.
func GetGroupLeaderboard(c *gin.Context) {
	userID, _ := c.Get("userId")
	groupID := c.Param("id")

	var membership models.GroupMember
	if err := database.DB.First(&membership, "group_id = ? AND user_id = ?", groupID, userID.(string)).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this group"})
		return
	}

	entries, err := services.GetGroupLeaderboard(groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
