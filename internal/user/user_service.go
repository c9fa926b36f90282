package user

import (
	"context"
	"errors"
	"time"

	"social-service/internal/models"
	"social-service/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Custom errors
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*models.UserResponse, error)
	UpdateProfile(ctx context.Context, id uint, req *models.UpdateProfileRequest) (*models.UserResponse, error)
}

type userService struct {
	store     storage.UserStore
	jwtSecret string
}

func NewUserService(store storage.UserStore, jwtSecret string) UserService {
	return &userService{
		store:     store,
		jwtSecret: jwtSecret,
	}
}

// generateJWT creates a new JWT token for the user
func (s *userService) generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	// Check if the username is taken
	existing, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:    req.Username,
		Password:    string(hashedPassword),
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return models.NewUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.UserResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, err
	}
	return token, models.NewUserResponse(user), nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.NewUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uint, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hashedPassword)
		req.Password = &hashed
	}

	user, err := s.store.UpdateUser(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return models.NewUserResponse(user), nil
}
