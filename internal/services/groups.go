package services

import (
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/logger"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
)

// PropagateActionToGroups pushes an awarded action into every group the
// user belongs to: weekly XP totals and matching group challenges.
// Strictly best-effort — all failures are logged and swallowed so the
// primary award is never blocked or altered.
func PropagateActionToGroups(userID string, xp int, actionType models.ChallengeType, today time.Time) {
	weekStart := utils.WeekStart(today)

	var memberships []models.GroupMember
	if err := database.DB.Where("user_id = ?", userID).Find(&memberships).Error; err != nil {
		logger.Warn().Err(err).Str("userId", userID).Msg("Group propagation: membership lookup failed")
		return
	}

	for i := range memberships {
		m := &memberships[i]

		// Reset the weekly counter when a new week begins
		if !utils.SameDay(m.WeekStart, weekStart) {
			m.WeeklyXP = 0
			m.WeekStart = weekStart
		}
		m.WeeklyXP += xp

		if err := database.DB.Save(m).Error; err != nil {
			logger.Warn().Err(err).Str("groupId", m.GroupID).Msg("Group propagation: weekly XP update failed")
			continue
		}
		InvalidateLeaderboardCache(m.GroupID)

		if err := advanceGroupChallenges(m.GroupID, actionType, weekStart); err != nil {
			logger.Warn().Err(err).Str("groupId", m.GroupID).Msg("Group propagation: challenge update failed")
		}
	}
}

func advanceGroupChallenges(groupID string, actionType models.ChallengeType, weekStart time.Time) error {
	if actionType == models.ChallengeHighPriorityTasks {
		actionType = models.ChallengeTasks
	}

	var challenges []models.GroupChallenge
	if err := database.DB.
		Where("group_id = ? AND week_start = ? AND completed = ? AND challenge_type = ?",
			groupID, weekStart, false, actionType).
		Find(&challenges).Error; err != nil {
		return err
	}

	now := time.Now()
	for i := range challenges {
		gc := &challenges[i]
		gc.Progress++
		if gc.TargetValue > 0 && gc.Progress >= gc.TargetValue {
			gc.Completed = true
			gc.CompletedAt = &now
		}
		if err := database.DB.Save(gc).Error; err != nil {
			return err
		}
	}
	return nil
}
