package auth

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"crm-master-api/config"
)

type AuthService struct {
	DB  *gorm.DB
	CFG *config.Config
}

func (s *AuthService) CreateUser(user User) (*User, error) {
	if user.Role == "" {
		user.Role = "User"
	}
	if user.Status == 0 {
		user.Status = 1
	}

	if err := s.DB.Create(&user).Error; err != nil {
		// unique constraint wording differs between postgres and sqlite
		msg := err.Error()
		if strings.Contains(msg, "duplicate key") ||
			strings.Contains(msg, "unique constraint") ||
			strings.Contains(msg, "UNIQUE constraint") {
			return nil, errors.New("An account with this email already exists. Please log in or use a different email.")
		}
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) GetUser(email string) (*User, error) {
	var user User
	result := s.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) GetUserByID(id int) (*User, error) {
	var user User
	result := s.DB.Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) GetAllUsers() ([]User, error) {
	var users []User
	result := s.DB.Order("id ASC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
