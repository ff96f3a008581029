package services

import (
	"hash/fnv"
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/logger"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"gorm.io/gorm"
)

// Challenge selection is deterministic: the same (period, user) always
// draws the same templates, so retries and duplicate requests converge on
// one fixed set. The seed hashes "period|userId"; the three daily
// difficulty pools use seed, seed+1, seed+2 to decorrelate the picks.

func challengeSeed(period string, userID string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(period))
	h.Write([]byte("|"))
	h.Write([]byte(userID))
	return h.Sum64()
}

// splitmix64 is the PRNG behind the seeded shuffle. Fixed algorithm, so
// the selection contract survives Go version and platform changes.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// shuffledIndexes returns 0..n-1 permuted by a seeded Fisher-Yates.
func shuffledIndexes(n int, seed uint64) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	state := seed
	for i := n - 1; i > 0; i-- {
		j := int(splitmix64(&state) % uint64(i+1))
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}

// EnsureDailyChallenges makes sure the user has exactly 3 challenge rows
// for the date, one per difficulty. Existing rows are returned unchanged;
// after a partial prior failure only the missing difficulty slots are
// filled in.
func EnsureDailyChallenges(db *gorm.DB, userID string, date time.Time) ([]models.UserDailyChallenge, error) {
	date = utils.DateOnly(date)

	var existing []models.UserDailyChallenge
	if err := db.Preload("Template").
		Where("user_id = ? AND date = ?", userID, date).
		Find(&existing).Error; err != nil {
		return nil, err
	}

	have := make(map[models.ChallengeDifficulty]bool)
	for _, c := range existing {
		have[c.Difficulty] = true
	}

	difficulties := []models.ChallengeDifficulty{
		models.DifficultyEasy,
		models.DifficultyMedium,
		models.DifficultyHard,
	}
	if len(existing) >= len(difficulties) {
		return existing, nil
	}

	seed := challengeSeed(date.Format("2006-01-02"), userID)
	for offset, difficulty := range difficulties {
		if have[difficulty] {
			continue
		}

		var pool []models.DailyChallengeTemplate
		if err := db.Where("difficulty = ?", difficulty).Find(&pool).Error; err != nil {
			logger.Warn().Err(err).Str("difficulty", string(difficulty)).Msg("Daily challenge pool unavailable")
			continue
		}
		if len(pool) == 0 {
			continue
		}

		pick := pool[shuffledIndexes(len(pool), seed+uint64(offset))[0]]
		row := models.UserDailyChallenge{
			ID:         utils.GenerateID(),
			UserID:     userID,
			Date:       date,
			TemplateID: pick.ID,
			Difficulty: difficulty,
		}
		if err := db.Create(&row).Error; err != nil {
			return nil, err
		}
		row.Template = pick
		existing = append(existing, row)
	}

	return existing, nil
}

// EnsureWeeklyChallenge makes sure the user has exactly 1 challenge row
// for the ISO week starting at weekStart (a Monday). Idempotent.
func EnsureWeeklyChallenge(db *gorm.DB, userID string, weekStart time.Time) (*models.UserWeeklyChallenge, error) {
	weekStart = utils.DateOnly(weekStart)

	var existing models.UserWeeklyChallenge
	err := db.Preload("Template").
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var pool []models.WeeklyChallengeTemplate
	if err := db.Find(&pool).Error; err != nil {
		logger.Warn().Err(err).Msg("Weekly challenge pool unavailable")
		return nil, nil
	}
	if len(pool) == 0 {
		return nil, nil
	}

	seed := challengeSeed(weekStart.Format("2006-01-02"), userID)
	pick := pool[shuffledIndexes(len(pool), seed)[0]]

	row := models.UserWeeklyChallenge{
		ID:         utils.GenerateID(),
		UserID:     userID,
		WeekStart:  weekStart,
		TemplateID: pick.ID,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}
	row.Template = pick
	return &row, nil
}

// CompletedChallenge is a challenge that just completed during an update,
// with the XP it pays out.
type CompletedChallenge struct {
	Name       string                     `json:"name"`
	Type       models.ChallengeType       `json:"type"`
	Difficulty models.ChallengeDifficulty `json:"difficulty,omitempty"`
	XPAwarded  int                        `json:"xpAwarded"`
}

// UpdateDailyChallengeProgress is the accumulative progress path: every
// not-yet-completed challenge for the date whose type matches actionType
// gains `increment`. Crossing the target completes the challenge and pays
// its reward exactly once. Sentinel challenges (target 0) never complete
// through this path.
func UpdateDailyChallengeProgress(db *gorm.DB, userID string, actionType models.ChallengeType, increment int, date time.Time) ([]CompletedChallenge, int, error) {
	challenges, err := EnsureDailyChallenges(db, userID, date)
	if err != nil {
		return nil, 0, err
	}

	var completed []CompletedChallenge
	totalXP := 0
	now := time.Now()

	for i := range challenges {
		c := &challenges[i]
		if c.Completed || c.Template.ChallengeType != actionType {
			continue
		}

		c.Progress += increment
		if c.Template.TargetValue > 0 && c.Progress >= c.Template.TargetValue {
			c.Completed = true
			c.CompletedAt = &now
			c.XPAwarded = c.Template.XPReward
			totalXP += c.XPAwarded
			completed = append(completed, CompletedChallenge{
				Name:       c.Template.Name,
				Type:       c.Template.ChallengeType,
				Difficulty: c.Difficulty,
				XPAwarded:  c.XPAwarded,
			})
		}
		if err := saveDailyChallengeProgress(db, c); err != nil {
			return nil, 0, err
		}
	}

	return completed, totalXP, nil
}

// UpdateWeeklyChallengeProgress is the weekly analogue of the daily
// accumulative path. High-priority task increments fold into the generic
// tasks type, so a weekly "tasks" challenge advances either way.
func UpdateWeeklyChallengeProgress(db *gorm.DB, userID string, actionType models.ChallengeType, increment int, weekStart time.Time) ([]CompletedChallenge, int, error) {
	if actionType == models.ChallengeHighPriorityTasks {
		actionType = models.ChallengeTasks
	}

	challenge, err := EnsureWeeklyChallenge(db, userID, weekStart)
	if err != nil || challenge == nil {
		return nil, 0, err
	}
	if challenge.Completed || challenge.Template.ChallengeType != actionType {
		return nil, 0, nil
	}

	challenge.Progress += increment
	var completed []CompletedChallenge
	totalXP := 0

	if challenge.Template.TargetValue > 0 && challenge.Progress >= challenge.Template.TargetValue {
		now := time.Now()
		challenge.Completed = true
		challenge.CompletedAt = &now
		challenge.XPAwarded = challenge.Template.XPReward
		totalXP = challenge.XPAwarded
		completed = append(completed, CompletedChallenge{
			Name:      challenge.Template.Name,
			Type:      challenge.Template.ChallengeType,
			XPAwarded: challenge.XPAwarded,
		})
	}

	if err := db.Model(&models.UserWeeklyChallenge{}).
		Where("id = ?", challenge.ID).
		Updates(map[string]interface{}{
			"progress":     challenge.Progress,
			"completed":    challenge.Completed,
			"completed_at": challenge.CompletedAt,
			"xp_awarded":   challenge.XPAwarded,
		}).Error; err != nil {
		return nil, 0, err
	}
	return completed, totalXP, nil
}

func saveDailyChallengeProgress(db *gorm.DB, c *models.UserDailyChallenge) error {
	return db.Model(&models.UserDailyChallenge{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"progress":     c.Progress,
			"completed":    c.Completed,
			"completed_at": c.CompletedAt,
			"xp_awarded":   c.XPAwarded,
		}).Error
}

// CheckAllHabitsChallenge is the boolean-condition path. It is not driven
// by increments: it compares the user's total habit count against today's
// completion count, and when they match it completes the outstanding
// sentinel (all_habits) challenge regardless of its progress or target
// fields. Distinct from the accumulative path on purpose; the two have
// different firing conditions.
func CheckAllHabitsChallenge(db *gorm.DB, userID string, date time.Time) ([]CompletedChallenge, int, error) {
	date = utils.DateOnly(date)

	var habitCount int64
	if err := db.Model(&models.Habit{}).
		Where("user_id = ? AND archived = ?", userID, false).
		Count(&habitCount).Error; err != nil {
		return nil, 0, err
	}
	if habitCount == 0 {
		return nil, 0, nil
	}

	var doneCount int64
	if err := db.Model(&models.HabitCompletion{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&doneCount).Error; err != nil {
		return nil, 0, err
	}
	if doneCount < habitCount {
		return nil, 0, nil
	}

	challenges, err := EnsureDailyChallenges(db, userID, date)
	if err != nil {
		return nil, 0, err
	}

	var completed []CompletedChallenge
	totalXP := 0
	now := time.Now()

	for i := range challenges {
		c := &challenges[i]
		if c.Completed || c.Template.ChallengeType != models.ChallengeAllHabits {
			continue
		}

		c.Completed = true
		c.CompletedAt = &now
		c.XPAwarded = c.Template.XPReward
		totalXP += c.XPAwarded
		completed = append(completed, CompletedChallenge{
			Name:       c.Template.Name,
			Type:       c.Template.ChallengeType,
			Difficulty: c.Difficulty,
			XPAwarded:  c.XPAwarded,
		})
		if err := saveDailyChallengeProgress(db, c); err != nil {
			return nil, 0, err
		}
	}

	return completed, totalXP, nil
}
