package repository

import (
	"time"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"gorm.io/gorm"
)

// GetUserAchievements retrieves all achievement rows for a user
func GetUserAchievements(userID uint) ([]*models.UserAchievement, error) {
	var achievements []*models.UserAchievement
	result := database.DB.Where("user_id = ?", userID).Find(&achievements)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch achievements", result.Error.Error())
	}
	return achievements, nil
}

// GetUserAchievement retrieves one achievement row
func GetUserAchievement(userID uint, achievementID string) (*models.UserAchievement, error) {
	var achievement models.UserAchievement
	result := database.DB.
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		First(&achievement)
	if result.Error != nil {
		return nil, errors.NotFound("achievement")
	}
	return &achievement, nil
}

// CountUserAchievements returns how many achievement rows a user has
func CountUserAchievements(userID uint) (int64, error) {
	var count int64
	result := database.DB.Model(&models.UserAchievement{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, errors.Internal("failed to count achievements", result.Error.Error())
	}
	return count, nil
}

// CreateUserAchievements inserts a batch of achievement rows
func CreateUserAchievements(rows []*models.UserAchievement) error {
	if len(rows) == 0 {
		return nil
	}
	result := database.DB.Create(&rows)
	if result.Error != nil {
		return errors.Internal("failed to create achievements", result.Error.Error())
	}
	return nil
}

// SaveUserAchievement saves one achievement row
func SaveUserAchievement(achievement *models.UserAchievement) error {
	achievement.UpdatedAt = time.Now()
	result := database.DB.Save(achievement)
	if result.Error != nil {
		return errors.Internal("failed to save achievement", result.Error.Error())
	}
	return nil
}

// MarkUserAchievementClaimed flips the claimed flag for one row, guarded
// so a row that is already claimed is never flipped twice. Returns
// Conflict when another claim got there first.
func MarkUserAchievementClaimed(tx *gorm.DB, rowID uint, claimedAt time.Time) error {
	result := tx.Model(&models.UserAchievement{}).
		Where("id = ? AND claimed = ?", rowID, false).
		Updates(map[string]interface{}{
			"claimed":    true,
			"claimed_at": claimedAt,
			"updated_at": claimedAt,
		})
	if result.Error != nil {
		return errors.Internal("failed to mark achievement claimed", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.Conflict("achievement reward already claimed")
	}
	return nil
}
