package repository

import (
	"time"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/models"
	usermodels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
	"gorm.io/gorm"
)

// ========== PROGRESS STATS ==========

// GetProgressStats retrieves the per-user stats record
func GetProgressStats(userID uint) (*models.ProgressStats, error) {
	var stats models.ProgressStats
	result := database.DB.Where("user_id = ?", userID).First(&stats)
	if result.Error != nil {
		return nil, errors.NotFound("progress stats")
	}
	return &stats, nil
}

// CreateProgressStats inserts a stats record
func CreateProgressStats(stats *models.ProgressStats) error {
	result := database.DB.Create(stats)
	if result.Error != nil {
		return errors.Internal("failed to create progress stats", result.Error.Error())
	}
	return nil
}

// SaveProgressStats saves a stats record inside the given transaction
func SaveProgressStats(tx *gorm.DB, stats *models.ProgressStats) error {
	stats.UpdatedAt = time.Now()
	if err := tx.Save(stats).Error; err != nil {
		return errors.Internal("failed to save progress stats", err.Error())
	}
	return nil
}

// ========== MODULE PROGRESS ==========

// GetModuleProgress retrieves progress for one (user, module) pair
func GetModuleProgress(userID, moduleID uint) (*models.ModuleProgress, error) {
	var progress models.ModuleProgress
	result := database.DB.
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		First(&progress)
	if result.Error != nil {
		return nil, errors.NotFound("module progress")
	}
	return &progress, nil
}

// GetAllModuleProgress retrieves all module progress records for a user
func GetAllModuleProgress(userID uint) ([]*models.ModuleProgress, error) {
	var progress []*models.ModuleProgress
	result := database.DB.Where("user_id = ?", userID).Find(&progress)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch module progress", result.Error.Error())
	}
	return progress, nil
}

// SaveModuleProgress saves a module progress record inside the given transaction
func SaveModuleProgress(tx *gorm.DB, progress *models.ModuleProgress) error {
	progress.UpdatedAt = time.Now()
	if err := tx.Save(progress).Error; err != nil {
		return errors.Internal("failed to save module progress", err.Error())
	}
	return nil
}

// ========== LEARNING PROFILE ==========

// GetLearningProfile retrieves the user's learning profile
func GetLearningProfile(userID uint) (*models.LearningProfile, error) {
	var profile models.LearningProfile
	result := database.DB.Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		return nil, errors.NotFound("learning profile")
	}
	return &profile, nil
}

// CreateLearningProfile inserts a learning profile
func CreateLearningProfile(profile *models.LearningProfile) error {
	result := database.DB.Create(profile)
	if result.Error != nil {
		return errors.Internal("failed to create learning profile", result.Error.Error())
	}
	return nil
}

// SaveLearningProfile saves a learning profile inside the given transaction
func SaveLearningProfile(tx *gorm.DB, profile *models.LearningProfile) error {
	profile.UpdatedAt = time.Now()
	if err := tx.Save(profile).Error; err != nil {
		return errors.Internal("failed to save learning profile", err.Error())
	}
	return nil
}

// ========== LESSON EVENT LOG ==========

// AppendLessonEvent appends an event row inside the given transaction
func AppendLessonEvent(tx *gorm.DB, event *models.LessonEvent) error {
	if err := tx.Create(event).Error; err != nil {
		return errors.Internal("failed to append lesson event", err.Error())
	}
	return nil
}

// GetRecentLessonEvents retrieves a user's most recent lesson events
func GetRecentLessonEvents(userID uint, limit int) ([]*models.LessonEvent, error) {
	var events []*models.LessonEvent
	result := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&events)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch lesson events", result.Error.Error())
	}
	return events, nil
}

// ========== LEADERBOARD ==========

// GetLeaderboard retrieves the top users by XP
func GetLeaderboard(limit int) ([]*usermodels.User, error) {
	var top []*usermodels.User
	result := database.DB.
		Order("xp DESC, total_lessons_completed DESC").
		Limit(limit).
		Find(&top)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch leaderboard", result.Error.Error())
	}
	return top, nil
}
