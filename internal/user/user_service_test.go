package user

import (
	"context"
	"testing"

	"social-service/internal/models"
	"social-service/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (UserService, storage.Storage) {
	t.Helper()
	store := storage.NewMemoryStorage()
	return NewUserService(store, testSecret), store
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		resp, err := svc.Register(ctx, &models.RegisterRequest{
			Username:    "alice",
			Password:    "123456",
			DisplayName: "Alice",
		})
		require.NoError(t, err)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "Alice", resp.DisplayName)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := svc.Register(ctx, &models.RegisterRequest{
			Username:    "alice",
			Password:    "123456",
			DisplayName: "Other Alice",
		})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("PasswordIsHashed", func(t *testing.T) {
		_, store := newTestService(t)
		svc := NewUserService(store, testSecret)
		_, err := svc.Register(ctx, &models.RegisterRequest{
			Username:    "bob",
			Password:    "123456",
			DisplayName: "Bob",
		})
		require.NoError(t, err)

		stored, err := store.GetUserByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.NotEqual(t, "123456", stored.Password)
	})
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{
		Username:    "alice",
		Password:    "123456",
		DisplayName: "Alice",
	})
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		token, resp, err := svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "123456"})
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)

		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, float64(resp.ID), claims["user_id"])
		assert.Equal(t, "alice", claims["username"])
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "654321"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, _, err := svc.Login(ctx, &models.LoginRequest{Username: "nobody", Password: "123456"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, &models.RegisterRequest{
		Username:    "alice",
		Password:    "123456",
		DisplayName: "Alice",
	})
	require.NoError(t, err)

	t.Run("PartialUpdate", func(t *testing.T) {
		bio := "gopher"
		resp, err := svc.UpdateProfile(ctx, created.ID, &models.UpdateProfileRequest{Bio: &bio})
		require.NoError(t, err)
		assert.Equal(t, "gopher", resp.Bio)
		assert.Equal(t, "Alice", resp.DisplayName)
	})

	t.Run("PasswordChange", func(t *testing.T) {
		password := "newpass"
		_, err := svc.UpdateProfile(ctx, created.ID, &models.UpdateProfileRequest{Password: &password})
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "newpass"})
		require.NoError(t, err)
		_, _, err = svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "123456"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("MissingUser", func(t *testing.T) {
		bio := "x"
		_, err := svc.UpdateProfile(ctx, 9999, &models.UpdateProfileRequest{Bio: &bio})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
