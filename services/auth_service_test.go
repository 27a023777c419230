package services

import (
	"testing"

	"nutriassist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_And_Login(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	user, err := svc.Register(RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Maintain", user.Goal)
	assert.NotEqual(t, "pw123456", user.Password, "password must be stored hashed")

	token, logged, err := svc.Login("alice", "pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegister_DuplicateLeavesNoRecord(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)

	// Same username, different email
	_, err = svc.Register(RegisterInput{Username: "alice", Email: "other@x.com", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrConflict)

	// Same email, different username
	_, err = svc.Register(RegisterInput{Username: "bob", Email: "a@x.com", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count, "rejected registrations must not create rows")
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(RegisterInput{Username: "alice", Email: "not-an-email", Password: "pw123456"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw123456", Goal: "Bulk"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)

	_, _, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Invalid username or password")

	_, _, err = svc.Login("nobody", "pw123456")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Invalid username or password")
}

func TestUpdateProfile(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	user, err := svc.Register(RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)

	weight := 62.5
	updated, err := svc.UpdateProfile(user.ID, ProfileInput{Weight: &weight, Goal: "Lose"})
	require.NoError(t, err)
	assert.Equal(t, "Lose", updated.Goal)
	require.NotNil(t, updated.Weight)
	assert.Equal(t, 62.5, *updated.Weight)

	_, err = svc.UpdateProfile(user.ID, ProfileInput{Goal: "Shred"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateProfile(9999, ProfileInput{Goal: "Lose"})
	assert.ErrorIs(t, err, ErrNotFound)
}
