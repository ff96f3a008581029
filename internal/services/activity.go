package services

import (
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"gorm.io/gorm"
)

// ActivityDelta is one action's contribution to the day's rollup.
type ActivityDelta struct {
	XPEarned         int
	TasksCompleted   int
	HabitsCompleted  int
	FocusMinutes     int
	StreakMaintained bool
}

// UpsertActivityLog adds the delta to the user's row for the date,
// creating it lazily. Counters only ever accumulate; the row is never
// overwritten wholesale.
func UpsertActivityLog(db *gorm.DB, userID string, date time.Time, delta ActivityDelta) error {
	date = utils.DateOnly(date)

	var row models.UserActivityLog
	isNew := false
	err := db.First(&row, "user_id = ? AND date = ?", userID, date).Error
	if err == gorm.ErrRecordNotFound {
		isNew = true
		row = models.UserActivityLog{
			ID:     utils.GenerateID(),
			UserID: userID,
			Date:   date,
		}
	} else if err != nil {
		return err
	}

	row.XPEarned += delta.XPEarned
	row.TasksCompleted += delta.TasksCompleted
	row.HabitsCompleted += delta.HabitsCompleted
	row.FocusMinutes += delta.FocusMinutes
	if delta.StreakMaintained {
		row.StreakMaintained = true
	}

	if isNew {
		return db.Create(&row).Error
	}
	return db.Save(&row).Error
}

// ActiveDaysInWeek counts distinct activity-log days within the week
// starting at weekStart. Seven means a perfect week.
func ActiveDaysInWeek(db *gorm.DB, userID string, weekStart time.Time) (int, error) {
	weekStart = utils.DateOnly(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 7)

	var count int64
	err := db.Model(&models.UserActivityLog{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, weekStart, weekEnd).
		Count(&count).Error
	return int(count), err
}

// GetActivityHistory returns the most recent activity rows, newest first.
func GetActivityHistory(db *gorm.DB, userID string, days int) ([]models.UserActivityLog, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	since := utils.Today().AddDate(0, 0, -days)

	var rows []models.UserActivityLog
	err := db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date desc").
		Find(&rows).Error
	return rows, err
}
