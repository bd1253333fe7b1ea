package services

import (
	"testing"
	"time"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthServiceLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		ID:           uuid.New(),
		Name:         "Anita Desai",
		Email:        "anita@test.local",
		PasswordHash: hash,
		Role:         models.RoleClassTeacher,
	}).Error)

	result, err := svc.Login("anita@test.local", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Anita Desai", result.Name)
	assert.Equal(t, models.RoleClassTeacher, result.Role)
	assert.NotEmpty(t, result.Token)

	// Токен из логина проходит валидацию и возвращает того же пользователя
	user, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.ID, user.ID)
}

func TestAuthServiceLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		ID:           uuid.New(),
		Name:         "Anita Desai",
		Email:        "anita@test.local",
		PasswordHash: hash,
		Role:         models.RoleClassTeacher,
	}).Error)

	_, err = svc.Login("anita@test.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@test.local", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceValidateTokenRejectsForeignSignature(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
	other := NewAuthService(repository.NewUserRepository(db), "other-secret", time.Hour)

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		ID:           uuid.New(),
		Name:         "Anita Desai",
		Email:        "anita@test.local",
		PasswordHash: hash,
		Role:         models.RoleClassTeacher,
	}).Error)

	result, err := other.Login("anita@test.local", "s3cret")
	require.NoError(t, err)

	_, err = svc.ValidateToken(result.Token)
	assert.Error(t, err)
}
