package repository

import (
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/content/models"
	"gorm.io/gorm"
)

// GetModules retrieves all modules in course order
func GetModules() ([]*models.Module, error) {
	var modules []*models.Module
	result := database.DB.Order("sort_order ASC").Find(&modules)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch modules", result.Error.Error())
	}
	return modules, nil
}

// GetModuleByID retrieves a single module
func GetModuleByID(moduleID uint) (*models.Module, error) {
	var module models.Module
	result := database.DB.First(&module, moduleID)
	if result.Error != nil {
		return nil, errors.NotFound("module")
	}
	return &module, nil
}

// GetLessonsByModule retrieves a module's lessons in order, without slides
func GetLessonsByModule(moduleID uint) ([]*models.Lesson, error) {
	var lessons []*models.Lesson
	result := database.DB.
		Where("module_id = ?", moduleID).
		Order("sort_order ASC").
		Find(&lessons)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch lessons", result.Error.Error())
	}
	return lessons, nil
}

// GetLessonByID retrieves a lesson with its slides
func GetLessonByID(lessonID uint) (*models.Lesson, error) {
	var lesson models.Lesson
	result := database.DB.
		Preload("Slides", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&lesson, lessonID)
	if result.Error != nil {
		return nil, errors.NotFound("lesson")
	}
	return &lesson, nil
}

// LessonCountByModule returns the authoritative number of lessons in a module
func LessonCountByModule(moduleID uint) (int, error) {
	var count int64
	result := database.DB.Model(&models.Lesson{}).Where("module_id = ?", moduleID).Count(&count)
	if result.Error != nil {
		return 0, errors.Internal("failed to count lessons", result.Error.Error())
	}
	return int(count), nil
}

// CreateModule inserts a module (seeding)
func CreateModule(module *models.Module) error {
	result := database.DB.FirstOrCreate(module, models.Module{Slug: module.Slug})
	if result.Error != nil {
		return errors.Internal("failed to create module", result.Error.Error())
	}
	return nil
}

// CreateLesson inserts a lesson with its slides (seeding)
func CreateLesson(lesson *models.Lesson) error {
	result := database.DB.Create(lesson)
	if result.Error != nil {
		return errors.Internal("failed to create lesson", result.Error.Error())
	}
	return nil
}
