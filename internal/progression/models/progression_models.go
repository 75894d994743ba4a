package models

import (
	"time"
)

// Module progress status values
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// ProgressStats is the per-user aggregate counters record. It is a
// denormalized companion to the user account, created lazily on first
// read if absent.
type ProgressStats struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"unique;not null;index" json:"user_id"`
	TotalLessons     int       `gorm:"default:0" json:"total_lessons"`
	PerfectLessons   int       `gorm:"default:0" json:"perfect_lessons"`
	FastCompletions  int       `gorm:"default:0" json:"fast_completions"`
	AverageScore     float64   `gorm:"default:0" json:"average_score"`
	CurrentStreak    int       `gorm:"default:0" json:"current_streak"`
	LongestStreak    int       `gorm:"default:0" json:"longest_streak"`
	TotalTimeSeconds int       `gorm:"default:0" json:"total_time_seconds"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ModuleProgress tracks one user's progress through one module
type ModuleProgress struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;uniqueIndex:idx_user_module" json:"user_id"`
	ModuleID         uint      `gorm:"not null;uniqueIndex:idx_user_module" json:"module_id"`
	CompletedLessons int       `gorm:"default:0" json:"completed_lessons"`
	TotalLessons     int       `gorm:"default:0" json:"total_lessons"`
	AverageScore     float64   `gorm:"default:0" json:"average_score"`
	Accuracy         float64   `gorm:"default:0" json:"accuracy"`
	TimeSpentSeconds int       `gorm:"default:0" json:"time_spent_seconds"`
	Status           string    `gorm:"default:'not-started'" json:"status"`
	MasteryLevel     int       `gorm:"default:0" json:"mastery_level"` // 0-100
	LastAccessedAt   time.Time `json:"last_accessed_at"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LearningProfile holds per-user learning configuration and totals.
// Created at signup with the default unlocked module list.
type LearningProfile struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"unique;not null;index" json:"user_id"`
	CompletedModules    string    `json:"completed_modules"` // comma-separated module ids
	UnlockedModules     string    `json:"unlocked_modules"`  // comma-separated module ids
	TotalLessons        int       `gorm:"default:0" json:"total_lessons"`
	TotalTimeSeconds    int       `gorm:"default:0" json:"total_time_seconds"`
	TotalPoints         int       `gorm:"default:0" json:"total_points"`
	AverageAccuracy     float64   `gorm:"default:0" json:"average_accuracy"`
	LearningStreak      int       `gorm:"default:0" json:"learning_streak"`
	PreferredDifficulty string    `gorm:"default:'beginner'" json:"preferred_difficulty"`
	StudySchedule       string    `json:"study_schedule"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// LessonEvent is the append-only record of one completed lesson. All
// derived counters are updated in the same transaction that appends
// the event, so the event log is the source of truth for auditing and
// rebuilds.
type LessonEvent struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	ModuleID         uint      `gorm:"not null" json:"module_id"`
	LessonID         uint      `gorm:"not null" json:"lesson_id"`
	Score            int       `json:"score"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
	Perfect          bool      `json:"perfect"`
	Passed           bool      `json:"passed"`
	XPAwarded        int       `json:"xp_awarded"`
	GemsAwarded      int       `json:"gems_awarded"`
	CreatedAt        time.Time `json:"created_at"`
}

// CompleteLessonRequest reports one finished lesson
type CompleteLessonRequest struct {
	ModuleID         uint `json:"module_id" binding:"required,gt=0"`
	LessonID         uint `json:"lesson_id" binding:"required,gt=0"`
	Score            int  `json:"score" binding:"min=0,max=100"`
	TimeSpentSeconds int  `json:"time_spent_seconds" binding:"min=0"`
	Perfect          bool `json:"perfect"`
}

// LessonCompletionResult is returned after a completed lesson is recorded
type LessonCompletionResult struct {
	XPAwarded     int    `json:"xp_awarded"`
	GemsAwarded   int    `json:"gems_awarded"`
	Passed        bool   `json:"passed"`
	TotalXP       int    `json:"total_xp"`
	TotalGems     int    `json:"total_gems"`
	Level         int    `json:"level"`
	XPToNextLevel int    `json:"xp_to_next_level"`
	CurrentStreak int    `json:"current_streak"`
	Rank          string `json:"rank"`
}

// UserProgressStats is the aggregate view merged from the user account,
// stats record, learning profile and per-module progress records.
type UserProgressStats struct {
	UserID           uint              `json:"user_id"`
	Level            int               `json:"level"`
	XPToNextLevel    int               `json:"xp_to_next_level"`
	TotalXP          int               `json:"total_xp"`
	Gems             int               `json:"gems"`
	TotalLessons     int               `json:"total_lessons"`
	PerfectLessons   int               `json:"perfect_lessons"`
	FastCompletions  int               `json:"fast_completions"`
	AverageScore     float64           `json:"average_score"`
	CurrentStreak    int               `json:"current_streak"`
	LongestStreak    int               `json:"longest_streak"`
	TotalTimeSeconds int               `json:"total_time_seconds"`
	LessonsThisWeek  int               `json:"lessons_this_week"`
	CompletedModules []uint            `json:"completed_modules"`
	Modules          []*ModuleProgress `json:"modules"`
}

// LeaderboardEntry is one row of the XP leaderboard
type LeaderboardEntry struct {
	Position int    `json:"position"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Rank     string `json:"rank"`
}
