package models

import (
	"time"
)

// User is the account record for a learner. Accounts are created at
// signup and never deleted in normal operation.
type User struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	Username              string    `gorm:"unique;not null" json:"username"`
	Email                 string    `gorm:"unique" json:"email"`
	DisplayName           string    `json:"display_name"`
	XP                    int       `gorm:"default:0" json:"xp"`
	Gems                  int       `gorm:"default:0" json:"gems"`
	Hearts                int       `gorm:"default:5" json:"hearts"`
	CurrentStreak         int       `gorm:"default:0" json:"current_streak"`
	LongestStreak         int       `gorm:"default:0" json:"longest_streak"`
	TotalLessonsCompleted int       `gorm:"default:0" json:"total_lessons_completed"`
	PerfectLessons        int       `gorm:"default:0" json:"perfect_lessons"`
	Rank                  string    `gorm:"default:'Medical Student'" json:"rank"`
	Title                 string    `json:"title"` // earned via achievement rewards
	Bio                   string    `json:"bio"`
	Location              string    `json:"location"`
	Profession            string    `json:"profession"`
	Institution           string    `json:"institution"`
	LastActiveAt          time.Time `json:"last_active_at"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// SignupRequest creates a new account
type SignupRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=32" validate:"required,min=3,max=32"`
	Email       string `json:"email" binding:"omitempty,email" validate:"omitempty,email"`
	DisplayName string `json:"display_name" binding:"omitempty,max=64" validate:"omitempty,max=64"`
}

// UpdateProfileRequest edits the extended profile fields
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=64"`
	Bio         *string `json:"bio" binding:"omitempty,max=500"`
	Location    *string `json:"location" binding:"omitempty,max=100"`
	Profession  *string `json:"profession" binding:"omitempty,max=100"`
	Institution *string `json:"institution" binding:"omitempty,max=100"`
}

// ProfileResponse is the extended profile view. Missing fields are
// merged with empty-string defaults so the client always gets a full
// shape.
type ProfileResponse struct {
	UserID       uint      `json:"user_id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	Bio          string    `json:"bio"`
	Location     string    `json:"location"`
	Profession   string    `json:"profession"`
	Institution  string    `json:"institution"`
	XP           int       `json:"xp"`
	Gems         int       `json:"gems"`
	Hearts       int       `json:"hearts"`
	Rank         string    `json:"rank"`
	Title        string    `json:"title"`
	LastActiveAt time.Time `json:"last_active_at"`
}
