package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/repository"
	userrepo "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/repository"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/pkg/logger"
	"go.uber.org/zap"
)

// GetUserProgressStats merges the user account, stats record, learning
// profile and per-module progress into one aggregate view. Reads are
// fail-soft: a missing or unreadable piece contributes zero values so a
// brand-new user still gets a complete response.
func GetUserProgressStats(userID uint) *models.UserProgressStats {
	result := &models.UserProgressStats{
		UserID:           userID,
		Level:            1,
		XPToNextLevel:    100,
		CompletedModules: []uint{},
		Modules:          []*models.ModuleProgress{},
	}

	user, err := userrepo.GetUserByID(userID)
	if err != nil {
		logger.Warn("progress stats: user lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		return result
	}

	levelInfo := CalculateLevel(user.XP)
	result.Level = levelInfo.Level
	result.XPToNextLevel = levelInfo.XPToNextLevel
	result.TotalXP = user.XP
	result.Gems = user.Gems
	result.TotalLessons = user.TotalLessonsCompleted
	result.PerfectLessons = user.PerfectLessons
	result.CurrentStreak = user.CurrentStreak
	result.LongestStreak = user.LongestStreak

	stats, err := repository.GetProgressStats(userID)
	if err != nil {
		// Materialize the stats record so later completions find it,
		// seeded from the account counters so it starts in sync.
		// Best effort: the aggregate view works without it.
		stats = &models.ProgressStats{
			UserID:         userID,
			TotalLessons:   user.TotalLessonsCompleted,
			PerfectLessons: user.PerfectLessons,
			CurrentStreak:  user.CurrentStreak,
			LongestStreak:  user.LongestStreak,
		}
		if createErr := repository.CreateProgressStats(stats); createErr != nil {
			logger.Warn("progress stats: create failed", zap.Uint("user_id", userID), zap.Error(createErr))
		}
	}
	result.FastCompletions = stats.FastCompletions
	result.AverageScore = stats.AverageScore
	result.TotalTimeSeconds = stats.TotalTimeSeconds

	profile, err := repository.GetLearningProfile(userID)
	if err == nil {
		result.CompletedModules = splitModuleIDs(profile.CompletedModules)
	}

	modules, err := repository.GetAllModuleProgress(userID)
	if err == nil {
		result.Modules = modules
	}

	result.LessonsThisWeek = lessonsSince(userID, time.Now().AddDate(0, 0, -7))

	return result
}

// lessonsSince counts lesson events recorded after the cutoff.
func lessonsSince(userID uint, cutoff time.Time) int {
	events, err := repository.GetRecentLessonEvents(userID, 200)
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range events {
		if e.CreatedAt.After(cutoff) {
			count++
		}
	}
	return count
}

// GetModuleProgressList returns all per-module progress rows for a user.
func GetModuleProgressList(userID uint) ([]*models.ModuleProgress, error) {
	return repository.GetAllModuleProgress(userID)
}

// GetRecentActivity returns the newest lesson events, capped at limit.
func GetRecentActivity(userID uint, limit int) ([]*models.LessonEvent, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return repository.GetRecentLessonEvents(userID, limit)
}

// GetLeaderboard returns the top users ranked by total XP.
func GetLeaderboard(limit int) ([]*models.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	users, err := repository.GetLeaderboard(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]*models.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, &models.LeaderboardEntry{
			Position: i + 1,
			UserID:   u.ID,
			Username: u.Username,
			XP:       u.XP,
			Level:    CalculateLevel(u.XP).Level,
			Rank:     u.Rank,
		})
	}
	return entries, nil
}

// splitModuleIDs parses a comma-separated module id list, skipping
// anything unparseable.
func splitModuleIDs(s string) []uint {
	ids := []uint{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

// appendModuleID adds a module id to a comma-separated list if not
// already present.
func appendModuleID(s string, moduleID uint) string {
	for _, id := range splitModuleIDs(s) {
		if id == moduleID {
			return s
		}
	}
	entry := strconv.FormatUint(uint64(moduleID), 10)
	if s == "" {
		return entry
	}
	return s + "," + entry
}
