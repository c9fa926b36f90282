package storage

import (
	"context"

	"social-service/internal/models"
)

func (s *gormStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *gormStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *gormStorage) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormStorage) UpdateUser(ctx context.Context, id uint, req *models.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}

	applyProfileUpdate(&user, req)

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// applyProfileUpdate copies the fields the caller actually sent. Shared
// with the in-memory backend so both interpret partial updates the same way.
func applyProfileUpdate(user *models.User, req *models.UpdateProfileRequest) {
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Password != nil {
		user.Password = *req.Password
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.CoverURL != nil {
		user.CoverURL = *req.CoverURL
	}
	if req.Theme != nil {
		user.Theme = *req.Theme
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Interests != nil {
		user.Interests = *req.Interests
	}
	if req.Occupation != nil {
		user.Occupation = *req.Occupation
	}
	if req.RelationshipStatus != nil {
		user.RelationshipStatus = *req.RelationshipStatus
	}
	if req.FavoriteQuote != nil {
		user.FavoriteQuote = *req.FavoriteQuote
	}
	if req.SocialLinks != nil {
		user.SocialLinks = *req.SocialLinks
	}
	if req.CustomCSS != nil {
		user.CustomCSS = *req.CustomCSS
	}
	if req.ProfileLayout != nil {
		user.ProfileLayout = *req.ProfileLayout
	}
	if req.BackgroundColor != nil {
		user.BackgroundColor = *req.BackgroundColor
	}
	if req.TextColor != nil {
		user.TextColor = *req.TextColor
	}
	if req.AccentColor != nil {
		user.AccentColor = *req.AccentColor
	}
	if req.FontFamily != nil {
		user.FontFamily = *req.FontFamily
	}
}
