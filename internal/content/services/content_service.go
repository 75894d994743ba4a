package services

import (
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/content/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/content/repository"
)

// GetModules returns all modules with their lesson counts
func GetModules() ([]*models.ModuleResponse, error) {
	modules, err := repository.GetModules()
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ModuleResponse, len(modules))
	for i, module := range modules {
		count, err := repository.LessonCountByModule(module.ID)
		if err != nil {
			count = 0
		}
		responses[i] = &models.ModuleResponse{
			ID:          module.ID,
			Slug:        module.Slug,
			Title:       module.Title,
			Description: module.Description,
			SortOrder:   module.SortOrder,
			LessonCount: count,
		}
	}

	return responses, nil
}

// GetModuleLessons returns a module's lessons in course order
func GetModuleLessons(moduleID uint) ([]*models.Lesson, error) {
	if moduleID == 0 {
		return nil, errors.BadRequest("invalid module ID")
	}

	if _, err := repository.GetModuleByID(moduleID); err != nil {
		return nil, err
	}

	return repository.GetLessonsByModule(moduleID)
}

// GetLesson returns a lesson with its ordered slides
func GetLesson(lessonID uint) (*models.Lesson, error) {
	if lessonID == 0 {
		return nil, errors.BadRequest("invalid lesson ID")
	}
	return repository.GetLessonByID(lessonID)
}
