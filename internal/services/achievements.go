package services

import (
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/logger"
	"gorm.io/gorm"
)

// Tier is one unlock level within an achievement.
type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// UnlockedTiers returns every tier whose threshold is <= value, not only
// the highest: one large stat jump can cross several tiers in one action.
func UnlockedTiers(a *models.Achievement, value int) []Tier {
	var tiers []Tier
	if value >= a.BronzeThreshold {
		tiers = append(tiers, TierBronze)
	}
	if value >= a.SilverThreshold {
		tiers = append(tiers, TierSilver)
	}
	if value >= a.GoldThreshold {
		tiers = append(tiers, TierGold)
	}
	return tiers
}

// TierXP returns the XP reward attached to a tier of an achievement.
func TierXP(a *models.Achievement, tier Tier) int {
	switch tier {
	case TierBronze:
		return a.BronzeXP
	case TierSilver:
		return a.SilverXP
	case TierGold:
		return a.GoldXP
	}
	return 0
}

// ProgressCheck is the delta between the tiers a stat value unlocks and
// the tiers already recorded as unlocked.
type ProgressCheck struct {
	NewTiers  []Tier
	XPAwarded int
}

// CheckAchievementProgress compares the unlocked-tier set against the
// unlock timestamps already on prior. Tiers with a timestamp are never
// re-reported or re-awarded.
func CheckAchievementProgress(a *models.Achievement, value int, prior *models.UserAchievement) ProgressCheck {
	var check ProgressCheck
	for _, tier := range UnlockedTiers(a, value) {
		if prior != nil && tierAlreadyUnlocked(prior, tier) {
			continue
		}
		check.NewTiers = append(check.NewTiers, tier)
		check.XPAwarded += TierXP(a, tier)
	}
	return check
}

func tierAlreadyUnlocked(ua *models.UserAchievement, tier Tier) bool {
	switch tier {
	case TierBronze:
		return ua.BronzeUnlockedAt != nil
	case TierSilver:
		return ua.SilverUnlockedAt != nil
	case TierGold:
		return ua.GoldUnlockedAt != nil
	}
	return false
}

// UnlockedAchievement is one newly crossed tier, surfaced to the caller
// for UI celebration.
type UnlockedAchievement struct {
	Achievement models.Achievement `json:"achievement"`
	Tier        Tier               `json:"tier"`
	XPAwarded   int                `json:"xpAwarded"`
}

// CheckAllAchievements evaluates every achievement template against the
// stat snapshot, persists per-user progress, and returns the newly
// unlocked tiers plus total XP awarded across all of them.
//
// A template lookup failure degrades to an empty result rather than
// failing the award.
func CheckAllAchievements(db *gorm.DB, userID string, snapshot *models.UserProfile) ([]UnlockedAchievement, int, error) {
	var templates []models.Achievement
	if err := db.Find(&templates).Error; err != nil {
		logger.Warn().Err(err).Msg("Achievement templates unavailable, skipping check")
		return nil, 0, nil
	}

	now := time.Now()
	var unlocked []UnlockedAchievement
	totalXP := 0

	for i := range templates {
		a := &templates[i]
		value := snapshot.StatValue(a.StatKey)

		var row models.UserAchievement
		isNew := false
		err := db.First(&row, "user_id = ? AND achievement_id = ?", userID, a.ID).Error
		if err == gorm.ErrRecordNotFound {
			isNew = true
			row = models.UserAchievement{UserID: userID, AchievementID: a.ID}
		} else if err != nil {
			return nil, 0, err
		}

		check := CheckAchievementProgress(a, value, &row)

		// Always refresh progress; stamp whichever tiers just crossed
		row.ProgressValue = value
		for _, tier := range check.NewTiers {
			ts := now
			switch tier {
			case TierBronze:
				row.BronzeUnlockedAt = &ts
			case TierSilver:
				row.SilverUnlockedAt = &ts
			case TierGold:
				row.GoldUnlockedAt = &ts
			}
			unlocked = append(unlocked, UnlockedAchievement{
				Achievement: *a,
				Tier:        tier,
				XPAwarded:   TierXP(a, tier),
			})
		}
		totalXP += check.XPAwarded

		if isNew {
			if err := db.Create(&row).Error; err != nil {
				return nil, 0, err
			}
		} else if err := db.Model(&models.UserAchievement{}).
			Where("user_id = ? AND achievement_id = ?", userID, a.ID).
			Updates(map[string]interface{}{
				"progress_value":     row.ProgressValue,
				"bronze_unlocked_at": row.BronzeUnlockedAt,
				"silver_unlocked_at": row.SilverUnlockedAt,
				"gold_unlocked_at":   row.GoldUnlockedAt,
			}).Error; err != nil {
			return nil, 0, err
		}
	}

	if totalXP > 0 {
		// Recount achievements with any unlocked tier rather than
		// incrementing, so a drifted counter heals itself here.
		count, err := countUnlockedAchievements(db, userID)
		if err != nil {
			return nil, 0, err
		}
		if err := db.Model(&models.UserProfile{}).
			Where("user_id = ?", userID).
			Update("achievements_unlocked", count).Error; err != nil {
			return nil, 0, err
		}
		snapshot.AchievementsUnlocked = count
	}

	return unlocked, totalXP, nil
}

func countUnlockedAchievements(db *gorm.DB, userID string) (int, error) {
	var count int64
	err := db.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Where("bronze_unlocked_at IS NOT NULL OR silver_unlocked_at IS NOT NULL OR gold_unlocked_at IS NOT NULL").
		Count(&count).Error
	return int(count), err
}
