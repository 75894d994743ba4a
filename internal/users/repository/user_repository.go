package repository

import (
	"time"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
)

// GetUserByID retrieves a user account
func GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	result := database.DB.First(&user, userID)
	if result.Error != nil {
		return nil, errors.NotFound("user")
	}
	return &user, nil
}

// GetUserByUsername retrieves a user account by username
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	result := database.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, errors.NotFound("user")
	}
	return &user, nil
}

// CreateUser inserts a new account
func CreateUser(user *models.User) error {
	result := database.DB.Create(user)
	if result.Error != nil {
		return errors.Conflict("username or email already taken")
	}
	return nil
}

// UpdateUser saves the full account record
func UpdateUser(user *models.User) error {
	user.UpdatedAt = time.Now()
	result := database.DB.Save(user)
	if result.Error != nil {
		return errors.Internal("failed to update user", result.Error.Error())
	}
	return nil
}

// UpdateUserFields applies a partial update to an account
func UpdateUserFields(userID uint, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates)

	if result.Error != nil {
		return errors.Internal("failed to update user", result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errors.NotFound("user")
	}

	return nil
}
