package main

import (
	"context"
	"log"
	"log/slog"

	"social-service/configs"
	"social-service/internal/database"
	"social-service/internal/models"
	"social-service/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := configs.Load()

	slog.Info("Starting database seeding...")

	db, err := database.NewMySQLDB(cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	slog.Info("Database connection established")

	store := storage.NewGormStorage(db)
	ctx := context.Background()

	// Seed initial users
	slog.Info("Creating initial users...")

	adminPassword, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	admin := &models.User{
		Username:    "admin",
		Password:    string(adminPassword),
		DisplayName: "Admin",
		IsAdmin:     true,
	}
	if err := store.CreateUser(ctx, admin); err != nil {
		slog.Warn("Admin user might already exist", "error", err)
	} else {
		slog.Info("Created admin user", "id", admin.ID)
	}

	testUsers := []struct {
		username    string
		displayName string
	}{
		{"alice", "Alice"},
		{"bob", "Bob"},
		{"charlie", "Charlie"},
	}

	for _, userData := range testUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
		user := &models.User{
			Username:    userData.username,
			Password:    string(hashedPassword),
			DisplayName: userData.displayName,
		}

		if err := store.CreateUser(ctx, user); err != nil {
			slog.Warn("User might already exist", "username", userData.username, "error", err)
		} else {
			slog.Info("Created user", "username", userData.username, "id", user.ID)
		}
	}

	// Seed default groups
	slog.Info("Creating default groups...")

	groups := []models.Group{
		{Name: "Tech", Description: "Technology discussions and career advice", Category: "technology"},
		{Name: "Health & Wellness", Description: "Physical and mental health support", Category: "health"},
		{Name: "Career Support", Description: "Job hunting, interviews and workplace advice", Category: "career"},
		{Name: "Life Balance", Description: "Managing work, family and everything in between", Category: "lifestyle"},
	}

	for i := range groups {
		if err := store.CreateGroup(ctx, &groups[i]); err != nil {
			slog.Warn("Group might already exist", "name", groups[i].Name, "error", err)
			continue
		}
		slog.Info("Created group", "name", groups[i].Name, "id", groups[i].ID)

		if admin.ID != 0 {
			if err := store.AddGroupMember(ctx, admin.ID, groups[i].ID, "admin"); err != nil {
				slog.Warn("Failed to enroll admin in group", "name", groups[i].Name, "error", err)
			}
		}
	}

	// Seed a welcome post in the first group
	if admin.ID != 0 && groups[0].ID != 0 {
		slog.Info("Creating welcome post...")
		post := &models.Post{
			Content:  "Welcome to the Tech group! Introduce yourself below.",
			UserID:   admin.ID,
			GroupID:  groups[0].ID,
			PostType: models.PostTypeText,
		}
		if err := store.CreatePost(ctx, post); err != nil {
			slog.Warn("Failed to create welcome post", "error", err)
		}
	}

	slog.Info("Database seeding completed successfully!")
}
