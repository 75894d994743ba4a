package services

import (
	"testing"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/content/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Module{}, &models.Lesson{}, &models.Slide{}))
	database.DB = db
}

func seedCourse(t *testing.T) *models.Module {
	module := &models.Module{Slug: "ecg-basics", Title: "ECG Basics", SortOrder: 1}
	require.NoError(t, database.DB.Create(module).Error)

	for i := 1; i <= 2; i++ {
		lesson := &models.Lesson{
			ModuleID:  module.ID,
			Title:     "Lesson",
			SortOrder: i,
			Slides: []models.Slide{
				{SortOrder: 2, Type: models.SlideQuiz, Title: "Check"},
				{SortOrder: 1, Type: models.SlideText, Title: "Intro"},
			},
		}
		require.NoError(t, database.DB.Create(lesson).Error)
	}
	return module
}

func TestGetModules_IncludesLessonCounts(t *testing.T) {
	setupTestDB(t)
	seedCourse(t)

	modules, err := GetModules()
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "ecg-basics", modules[0].Slug)
	assert.Equal(t, 2, modules[0].LessonCount)
}

func TestGetModuleLessons_UnknownModule(t *testing.T) {
	setupTestDB(t)

	_, err := GetModuleLessons(42)
	assert.Error(t, err)
}

func TestGetLesson_SlidesOrdered(t *testing.T) {
	setupTestDB(t)
	seedCourse(t)

	lesson, err := GetLesson(1)
	require.NoError(t, err)
	require.Len(t, lesson.Slides, 2)
	assert.Equal(t, "Intro", lesson.Slides[0].Title)
	assert.Equal(t, "Check", lesson.Slides[1].Title)
}
