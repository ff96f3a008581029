package migrations

import (
	"gorm.io/gorm"
)

// Migration001EnsureUUIDExtension makes sure pgcrypto is available for
// gen_random_uuid(). IDs are generated application-side, but ad-hoc SQL
// and future defaults rely on the extension being present.
func Migration001EnsureUUIDExtension() Migration {
	return Migration{
		ID:   "001_ensure_uuid_extension",
		Name: "Ensure pgcrypto extension for UUID generation",
		Up: func(db *gorm.DB) error {
			return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
		},
		Down: func(db *gorm.DB) error {
			// Extensions are shared; never drop on rollback
			return nil
		},
	}
}
