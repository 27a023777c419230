package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"nutriassist/models"
	"nutriassist/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Email    string   `json:"email"`
	Age      *float64 `json:"age"`
	Height   *float64 `json:"height"`
	Weight   *float64 `json:"weight"`
	Goal     string   `json:"goal"`
}

func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: Username, email, and password are required", ErrValidation)
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: Invalid email", ErrValidation)
	}

	var existing models.User
	err := s.db.Where("username = ? OR email = ?", input.Username, email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: Username or email already taken", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	goal := input.Goal
	if goal == "" {
		goal = "Maintain"
	}
	if !models.ValidGoal(goal) {
		return nil, fmt.Errorf("%w: goal must be Maintain, Lose or Gain", ErrValidation)
	}

	user := models.User{
		Username: input.Username,
		Password: hashed,
		Email:    email,
		Age:      input.Age,
		Height:   input.Height,
		Weight:   input.Weight,
		Goal:     goal,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Unique index race: two registrations with the same name can both
		// pass the lookup above.
		return nil, fmt.Errorf("%w: Username or email already taken", ErrConflict)
	}
	return &user, nil
}

// Login verifies the password and issues a bearer token. The message never
// reveals whether the username or the password was wrong.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: Username and password are required", ErrValidation)
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return "", nil, fmt.Errorf("%w: Invalid username or password", ErrValidation)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, fmt.Errorf("%w: Invalid username or password", ErrValidation)
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("%w: User not found", ErrNotFound)
	}
	return &user, nil
}

type ProfileInput struct {
	Email  string   `json:"email"`
	Age    *float64 `json:"age"`
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
	Goal   string   `json:"goal"`
}

func (s *AuthService) UpdateProfile(id uint, input ProfileInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("%w: User not found", ErrNotFound)
	}

	if input.Email != "" {
		email := strings.ToLower(strings.TrimSpace(input.Email))
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("%w: Invalid email", ErrValidation)
		}
		user.Email = email
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.Height != nil {
		user.Height = input.Height
	}
	if input.Weight != nil {
		user.Weight = input.Weight
	}
	if input.Goal != "" {
		if !models.ValidGoal(input.Goal) {
			return nil, fmt.Errorf("%w: goal must be Maintain, Lose or Gain", ErrValidation)
		}
		user.Goal = input.Goal
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
