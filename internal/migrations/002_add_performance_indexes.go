package migrations

import (
	"gorm.io/gorm"
)

// Migration002AddPerformanceIndexes covers the hot-path queries that run
// on every XP award:
// 1. Daily challenge lookup (user_id, date)
// 2. Weekly challenge lookup (user_id, week_start)
// 3. Habit completion counting for the all-habits condition (user_id, date)
// 4. Open task lists (user_id, completed)
//
// All indexes are idempotent (IF NOT EXISTS) for safe re-runs.
func Migration002AddPerformanceIndexes() Migration {
	return Migration{
		ID:   "002_add_performance_indexes",
		Name: "Add performance indexes for hot-path queries",
		Up: func(db *gorm.DB) error {
			idx1 := `
				CREATE INDEX IF NOT EXISTS idx_daily_challenges_user_date
				ON user_daily_challenges (user_id, date)
			`
			if err := db.Exec(idx1).Error; err != nil {
				return err
			}

			idx2 := `
				CREATE INDEX IF NOT EXISTS idx_weekly_challenges_user_week
				ON user_weekly_challenges (user_id, week_start)
			`
			if err := db.Exec(idx2).Error; err != nil {
				return err
			}

			idx3 := `
				CREATE INDEX IF NOT EXISTS idx_habit_completions_user_date
				ON habit_completions (user_id, date)
			`
			if err := db.Exec(idx3).Error; err != nil {
				return err
			}

			idx4 := `
				CREATE INDEX IF NOT EXISTS idx_tasks_user_completed
				ON tasks (user_id, completed)
			`
			if err := db.Exec(idx4).Error; err != nil {
				return err
			}

			return nil
		},
		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP INDEX IF EXISTS idx_tasks_user_completed`).Error; err != nil {
				return err
			}
			if err := db.Exec(`DROP INDEX IF EXISTS idx_habit_completions_user_date`).Error; err != nil {
				return err
			}
			if err := db.Exec(`DROP INDEX IF EXISTS idx_weekly_challenges_user_week`).Error; err != nil {
				return err
			}
			if err := db.Exec(`DROP INDEX IF EXISTS idx_daily_challenges_user_date`).Error; err != nil {
				return err
			}
			return nil
		},
	}
}
