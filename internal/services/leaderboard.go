package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
)

// LeaderboardEntry ranks one group member by weekly XP.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	Name          string `json:"name"`
	WeeklyXP      int    `json:"weeklyXp"`
	Level         int    `json:"level"`
	Title         string `json:"title"`
	CurrentStreak int    `json:"currentStreak"`
}

// In-memory fallback cache: GroupID -> {Entries, Expiry}
type cachedLeaderboard struct {
	Entries   []LeaderboardEntry
	ExpiresAt time.Time
}

var (
	leaderboardCache = make(map[string]cachedLeaderboard)
	lbMutex          sync.RWMutex
	lbTTL            = 30 * time.Second
)

// InvalidateLeaderboardCache clears a group's cached standings.
func InvalidateLeaderboardCache(groupID string) {
	lbMutex.Lock()
	defer lbMutex.Unlock()
	delete(leaderboardCache, groupID)

	if database.Redis != nil {
		database.CacheInvalidate(fmt.Sprintf("leaderboard:%s", groupID))
	}
}

// GetGroupLeaderboard returns this week's standings for a group, cached in
// Redis when available and in-process otherwise.
func GetGroupLeaderboard(groupID string) ([]LeaderboardEntry, error) {
	cacheKey := fmt.Sprintf("leaderboard:%s", groupID)

	// 1. Check caches
	if database.Redis != nil {
		var cached []LeaderboardEntry
		if err := database.CacheGet(cacheKey, &cached); err == nil {
			return cached, nil
		}
	}
	lbMutex.RLock()
	if cached, ok := leaderboardCache[groupID]; ok && time.Now().Before(cached.ExpiresAt) {
		lbMutex.RUnlock()
		return cached.Entries, nil
	}
	lbMutex.RUnlock()

	// 2. Build from group members + profiles
	weekStart := utils.WeekStart(utils.Today())

	var members []models.GroupMember
	if err := database.DB.Preload("User").
		Where("group_id = ?", groupID).
		Find(&members).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for _, m := range members {
		entry := LeaderboardEntry{
			UserID:   m.UserID,
			Username: m.User.Username,
			Name:     m.User.Name,
		}
		// Weekly XP only counts if it belongs to the current week
		if utils.SameDay(m.WeekStart, weekStart) {
			entry.WeeklyXP = m.WeeklyXP
		}

		var profile models.UserProfile
		if err := database.DB.First(&profile, "user_id = ?", m.UserID).Error; err == nil {
			entry.Level = profile.Level
			entry.Title = profile.Title
			entry.CurrentStreak = profile.CurrentStreak
		}
		entries = append(entries, entry)
	}

	// 3. Sort: weekly XP desc, then streak desc, then name for stability
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].WeeklyXP != entries[j].WeeklyXP {
			return entries[i].WeeklyXP > entries[j].WeeklyXP
		}
		if entries[i].CurrentStreak != entries[j].CurrentStreak {
			return entries[i].CurrentStreak > entries[j].CurrentStreak
		}
		return entries[i].Username < entries[j].Username
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	// 4. Cache
	if database.Redis != nil {
		database.CacheSet(cacheKey, entries, lbTTL)
	}
	lbMutex.Lock()
	leaderboardCache[groupID] = cachedLeaderboard{Entries: entries, ExpiresAt: time.Now().Add(lbTTL)}
	lbMutex.Unlock()

	return entries, nil
}
