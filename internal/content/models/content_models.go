package models

import (
	"time"
)

// Slide types supported by the lesson renderer
const (
	SlideText      = "text"
	SlideQuiz      = "quiz"
	SlideFlashcard = "flashcard"
	SlideTabs      = "tabs"
	SlideAccordion = "accordion"
	SlideSteps     = "steps"
	SlideHighlight = "highlight"
	SlideAudio     = "audio"
	SlideVideo     = "video"
	SlideYoutube   = "youtube"
)

// Module groups lessons into a course unit (e.g. "ECG Basics")
type Module struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	SortOrder   int       `gorm:"default:0" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Lesson is one teachable unit inside a module
type Lesson struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ModuleID      uint      `gorm:"not null;index" json:"module_id"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `json:"description"`
	SortOrder     int       `gorm:"default:0" json:"order"`
	EstimatedTime int       `gorm:"default:5" json:"estimated_time"` // minutes
	Introduction  string    `json:"introduction"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Slides        []Slide   `json:"slides,omitempty"`
}

// Slide carries a type discriminator plus type-specific fields.
// Quiz slides use Question/Options/CorrectAnswer/Explanation, media
// slides use MediaURL, everything else renders Content.
type Slide struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	LessonID      uint      `gorm:"not null;index" json:"lesson_id"`
	SortOrder     int       `gorm:"default:0" json:"order"`
	Type          string    `gorm:"not null" json:"type"`
	Title         string    `json:"title"`
	Content       string    `json:"content,omitempty"`
	Question      string    `json:"question,omitempty"`
	Options       string    `json:"options,omitempty"` // pipe-separated answer options
	CorrectAnswer int       `json:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty"`
	MediaURL      string    `json:"media_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ModuleResponse is the module list item including its lesson count
type ModuleResponse struct {
	ID          uint   `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SortOrder   int    `json:"order"`
	LessonCount int    `json:"lesson_count"`
}
