package models

import (
	"time"

	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// User represents the user entity
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `gorm:"not null" json:"displayName"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatarUrl"`
	CoverURL    string `json:"coverUrl"`
	IsAdmin     bool   `gorm:"default:false" json:"isAdmin"`

	// Profile customization
	Theme              string `gorm:"default:light" json:"theme"`
	Location           string `json:"location"`
	Interests          string `json:"interests"`
	Occupation         string `json:"occupation"`
	RelationshipStatus string `json:"relationshipStatus"`
	FavoriteQuote      string `json:"favoriteQuote"`
	SocialLinks        string `json:"socialLinks"` // JSON-encoded name -> URL map
	CustomCSS          string `json:"customCss"`
	ProfileLayout      string `gorm:"default:classic" json:"profileLayout"`
	BackgroundColor    string `json:"backgroundColor"`
	TextColor          string `json:"textColor"`
	AccentColor        string `json:"accentColor"`
	FontFamily         string `json:"fontFamily"`
}

/** -------------------- DTOs -------------------- */
// Request
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"displayName" binding:"required"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatarUrl"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries an arbitrary subset of mutable profile
// columns. Pointer fields distinguish "not sent" from "set to empty".
type UpdateProfileRequest struct {
	DisplayName        *string `json:"displayName"`
	Password           *string `json:"password"`
	Bio                *string `json:"bio"`
	AvatarURL          *string `json:"avatarUrl"`
	CoverURL           *string `json:"coverUrl"`
	Theme              *string `json:"theme"`
	Location           *string `json:"location"`
	Interests          *string `json:"interests"`
	Occupation         *string `json:"occupation"`
	RelationshipStatus *string `json:"relationshipStatus"`
	FavoriteQuote      *string `json:"favoriteQuote"`
	SocialLinks        *string `json:"socialLinks"`
	CustomCSS          *string `json:"customCss"`
	ProfileLayout      *string `json:"profileLayout"`
	BackgroundColor    *string `json:"backgroundColor"`
	TextColor          *string `json:"textColor"`
	AccentColor        *string `json:"accentColor"`
	FontFamily         *string `json:"fontFamily"`
}

// Response
type UserResponse struct {
	ID                 uint      `json:"id"`
	Username           string    `json:"username"`
	DisplayName        string    `json:"displayName"`
	Bio                string    `json:"bio"`
	AvatarURL          string    `json:"avatarUrl"`
	CoverURL           string    `json:"coverUrl"`
	IsAdmin            bool      `json:"isAdmin"`
	Theme              string    `json:"theme"`
	Location           string    `json:"location"`
	Interests          string    `json:"interests"`
	Occupation         string    `json:"occupation"`
	RelationshipStatus string    `json:"relationshipStatus"`
	FavoriteQuote      string    `json:"favoriteQuote"`
	SocialLinks        string    `json:"socialLinks"`
	CustomCSS          string    `json:"customCss"`
	ProfileLayout      string    `json:"profileLayout"`
	BackgroundColor    string    `json:"backgroundColor"`
	TextColor          string    `json:"textColor"`
	AccentColor        string    `json:"accentColor"`
	FontFamily         string    `json:"fontFamily"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewUserResponse strips the password and internal columns from a User.
func NewUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		DisplayName:        u.DisplayName,
		Bio:                u.Bio,
		AvatarURL:          u.AvatarURL,
		CoverURL:           u.CoverURL,
		IsAdmin:            u.IsAdmin,
		Theme:              u.Theme,
		Location:           u.Location,
		Interests:          u.Interests,
		Occupation:         u.Occupation,
		RelationshipStatus: u.RelationshipStatus,
		FavoriteQuote:      u.FavoriteQuote,
		SocialLinks:        u.SocialLinks,
		CustomCSS:          u.CustomCSS,
		ProfileLayout:      u.ProfileLayout,
		BackgroundColor:    u.BackgroundColor,
		TextColor:          u.TextColor,
		AccentColor:        u.AccentColor,
		FontFamily:         u.FontFamily,
		CreatedAt:          u.CreatedAt,
	}
}
