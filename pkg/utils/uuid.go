package utils

import "github.com/google/uuid"

// GenerateID returns a new random UUID string for primary keys.
func GenerateID() string {
	return uuid.New().String()
}
