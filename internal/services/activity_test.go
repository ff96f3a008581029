package services

import (
	"testing"

	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestUpsertActivityLog_Accumulates(t *testing.T) {
	db := setupTestDB(t)
	today := utils.Today()

	err := UpsertActivityLog(db, "user1", today, ActivityDelta{
		XPEarned:       10,
		TasksCompleted: 1,
	})
	assert.NoError(t, err)

	err = UpsertActivityLog(db, "user1", today, ActivityDelta{
		XPEarned:         15,
		HabitsCompleted:  1,
		FocusMinutes:     25,
		StreakMaintained: true,
	})
	assert.NoError(t, err)

	var rows []models.UserActivityLog
	assert.NoError(t, db.Where("user_id = ?", "user1").Find(&rows).Error)
	if assert.Len(t, rows, 1, "one row per user per day") {
		assert.Equal(t, 25, rows[0].XPEarned)
		assert.Equal(t, 1, rows[0].TasksCompleted)
		assert.Equal(t, 1, rows[0].HabitsCompleted)
		assert.Equal(t, 25, rows[0].FocusMinutes)
		assert.True(t, rows[0].StreakMaintained)
	}
}

func TestUpsertActivityLog_StreakFlagIsSticky(t *testing.T) {
	db := setupTestDB(t)
	today := utils.Today()

	assert.NoError(t, UpsertActivityLog(db, "user1", today, ActivityDelta{StreakMaintained: true}))
	assert.NoError(t, UpsertActivityLog(db, "user1", today, ActivityDelta{XPEarned: 5}))

	var row models.UserActivityLog
	db.First(&row, "user_id = ?", "user1")
	assert.True(t, row.StreakMaintained, "a later delta without the flag must not clear it")
}

func TestUpsertActivityLog_SeparateDays(t *testing.T) {
	db := setupTestDB(t)
	today := utils.Today()
	yesterday := today.AddDate(0, 0, -1)

	assert.NoError(t, UpsertActivityLog(db, "user1", yesterday, ActivityDelta{XPEarned: 5}))
	assert.NoError(t, UpsertActivityLog(db, "user1", today, ActivityDelta{XPEarned: 7}))

	var count int64
	db.Model(&models.UserActivityLog{}).Where("user_id = ?", "user1").Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestActiveDaysInWeek(t *testing.T) {
	db := setupTestDB(t)
	weekStart := utils.WeekStart(utils.Today())

	for _, offset := range []int{0, 1, 3} {
		day := weekStart.AddDate(0, 0, offset)
		assert.NoError(t, UpsertActivityLog(db, "user1", day, ActivityDelta{XPEarned: 1}))
	}
	// A row from the prior week must not count
	assert.NoError(t, UpsertActivityLog(db, "user1", weekStart.AddDate(0, 0, -2), ActivityDelta{XPEarned: 1}))

	count, err := ActiveDaysInWeek(db, "user1", weekStart)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestGetActivityHistory_OrderAndWindow(t *testing.T) {
	db := setupTestDB(t)
	today := utils.Today()

	for _, offset := range []int{-40, -5, -1, 0} {
		day := today.AddDate(0, 0, offset)
		assert.NoError(t, UpsertActivityLog(db, "user1", day, ActivityDelta{XPEarned: 1}))
	}

	rows, err := GetActivityHistory(db, "user1", 30)
	assert.NoError(t, err)
	if assert.Len(t, rows, 3, "rows older than the window are excluded") {
		assert.True(t, utils.SameDay(rows[0].Date, today), "newest first")
	}
}
