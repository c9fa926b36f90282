package database

import (
	"fmt"

	"social-service/internal/models"

	"gorm.io/gorm"
)

// Migrate runs database migrations for all models
func Migrate(db *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.User{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupChatMessage{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Reaction{},
		&models.Friendship{},
		&models.FriendRequest{},
		&models.Follower{},
	}

	for _, model := range modelsToMigrate {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model: %w", err)
		}
	}

	return nil
}
