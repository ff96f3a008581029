package seeds

import (
	"log"
	"time"

	"github.com/Alienware2000/intentionality-sub000/internal/database"
	"github.com/Alienware2000/intentionality-sub000/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GetOrCreateDemoUser provides a ready-to-use account for local
// development, progression state included.
func GetOrCreateDemoUser() (models.User, error) {
	log.Println("👤 Checking Demo User...")

	username := "demo"
	email := "demo@intentionality.app"

	var user models.User
	err := database.DB.Where("username = ?", username).First(&user).Error
	if err == nil {
		log.Printf("   ✅ Demo User found: %s", user.Username)
		return user, nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("DemoPassword1"), bcrypt.DefaultCost)

	user = models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleUser,
		Name:      "Demo User",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	profile := models.UserProfile{UserID: user.ID, Level: 1, Title: "Novice"}
	database.DB.Create(&profile)
	database.DB.Create(&models.UserStreakFreezes{UserID: user.ID})

	log.Printf("   ✅ Demo User Created: %s", user.Username)
	return user, nil
}
