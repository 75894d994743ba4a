package services

import (
	"time"

	achievementmodels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/models"
	achievements "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/services"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/validation"
	contentrepo "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/content/repository"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/repository"
	usermodels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultModuleLessonCount is only used when the module is missing
// from the content catalog and no authoritative total exists.
const defaultModuleLessonCount = 10

// CompleteLesson records one finished lesson. The event append and
// every derived counter update (user account, stats record, module
// progress, learning profile) run in a single transaction, so a
// failure leaves no partially-updated views. The achievement check
// runs afterwards and is non-fatal.
func CompleteLesson(userID uint, req *models.CompleteLessonRequest) (*models.LessonCompletionResult, error) {
	if userID == 0 {
		return nil, errors.BadRequest("invalid user ID")
	}
	if err := validation.ValidateScore(req.Score); err != nil {
		return nil, errors.BadRequest(err.Error())
	}

	reward := CalculateLessonReward(req.Score, req.TimeSpentSeconds, req.Perfect)

	totalLessons, err := contentrepo.LessonCountByModule(req.ModuleID)
	if err != nil || totalLessons == 0 {
		totalLessons = defaultModuleLessonCount
	}

	var result *models.LessonCompletionResult
	var statsSnapshot achievementmodels.AchievementStats

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		// Source of truth first: the event row
		event := &models.LessonEvent{
			UserID:           userID,
			ModuleID:         req.ModuleID,
			LessonID:         req.LessonID,
			Score:            req.Score,
			TimeSpentSeconds: req.TimeSpentSeconds,
			Perfect:          req.Perfect,
			Passed:           reward.Passed,
			XPAwarded:        reward.TotalXP,
			GemsAwarded:      reward.Gems,
			CreatedAt:        now,
		}
		if txErr := repository.AppendLessonEvent(tx, event); txErr != nil {
			return txErr
		}

		// User account counters
		var user usermodels.User
		if txErr := tx.First(&user, userID).Error; txErr != nil {
			return errors.NotFound("user")
		}

		user.XP += reward.TotalXP
		user.Gems += reward.Gems
		user.TotalLessonsCompleted++
		if req.Perfect {
			user.PerfectLessons++
		}
		if reward.Passed {
			user.CurrentStreak++
		} else {
			user.CurrentStreak = 1
		}
		if user.CurrentStreak > user.LongestStreak {
			user.LongestStreak = user.CurrentStreak
		}
		user.Rank = RankForXP(user.XP)
		user.LastActiveAt = now
		user.UpdatedAt = now
		if txErr := tx.Save(&user).Error; txErr != nil {
			return errors.Internal("failed to update user", txErr.Error())
		}

		// Stats record
		var stats models.ProgressStats
		if txErr := tx.Where("user_id = ?", userID).First(&stats).Error; txErr != nil {
			stats = models.ProgressStats{UserID: userID, CreatedAt: now}
		}
		stats.AverageScore = weightedAverage(stats.AverageScore, stats.TotalLessons, req.Score)
		stats.TotalLessons++
		if req.Perfect {
			stats.PerfectLessons++
		}
		if reward.Fast {
			stats.FastCompletions++
		}
		stats.CurrentStreak = user.CurrentStreak
		stats.LongestStreak = user.LongestStreak
		stats.TotalTimeSeconds += req.TimeSpentSeconds
		if txErr := repository.SaveProgressStats(tx, &stats); txErr != nil {
			return txErr
		}

		// Module progress
		var moduleProgress models.ModuleProgress
		moduleCompleted := false
		if txErr := tx.Where("user_id = ? AND module_id = ?", userID, req.ModuleID).First(&moduleProgress).Error; txErr != nil {
			moduleProgress = models.ModuleProgress{
				UserID:    userID,
				ModuleID:  req.ModuleID,
				Status:    models.StatusNotStarted,
				CreatedAt: now,
			}
		}
		moduleProgress.AverageScore = weightedAverage(moduleProgress.AverageScore, moduleProgress.CompletedLessons, req.Score)
		moduleProgress.CompletedLessons++
		moduleProgress.TotalLessons = totalLessons
		moduleProgress.Accuracy = moduleProgress.AverageScore
		moduleProgress.TimeSpentSeconds += req.TimeSpentSeconds
		moduleProgress.MasteryLevel = masteryLevel(moduleProgress.CompletedLessons, totalLessons, moduleProgress.AverageScore)
		moduleProgress.LastAccessedAt = now
		if moduleProgress.CompletedLessons >= totalLessons {
			if moduleProgress.Status != models.StatusCompleted {
				moduleCompleted = true
			}
			moduleProgress.Status = models.StatusCompleted
		} else {
			moduleProgress.Status = models.StatusInProgress
		}
		if txErr := repository.SaveModuleProgress(tx, &moduleProgress); txErr != nil {
			return txErr
		}

		// Learning profile
		var profile models.LearningProfile
		if txErr := tx.Where("user_id = ?", userID).First(&profile).Error; txErr != nil {
			profile = models.LearningProfile{UserID: userID, CreatedAt: now}
		}
		profile.AverageAccuracy = weightedAverage(profile.AverageAccuracy, profile.TotalLessons, req.Score)
		profile.TotalLessons++
		profile.TotalTimeSeconds += req.TimeSpentSeconds
		profile.TotalPoints += reward.TotalXP
		profile.LearningStreak = user.CurrentStreak
		if moduleCompleted {
			profile.CompletedModules = appendModuleID(profile.CompletedModules, req.ModuleID)
		}
		if txErr := repository.SaveLearningProfile(tx, &profile); txErr != nil {
			return txErr
		}

		levelInfo := CalculateLevel(user.XP)
		result = &models.LessonCompletionResult{
			XPAwarded:     reward.TotalXP,
			GemsAwarded:   reward.Gems,
			Passed:        reward.Passed,
			TotalXP:       user.XP,
			TotalGems:     user.Gems,
			Level:         levelInfo.Level,
			XPToNextLevel: levelInfo.XPToNextLevel,
			CurrentStreak: user.CurrentStreak,
			Rank:          user.Rank,
		}

		statsSnapshot = achievementmodels.AchievementStats{
			TotalLessons:     user.TotalLessonsCompleted,
			CompletedModules: len(splitModuleIDs(profile.CompletedModules)),
			CurrentStreak:    user.CurrentStreak,
			PerfectLessons:   user.PerfectLessons,
			FastCompletions:  stats.FastCompletions,
			TotalXP:          user.XP,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Side process: achievement tracking. Failures are logged, never
	// surfaced to the lesson-completion caller.
	if err := achievements.CheckAchievements(userID, statsSnapshot); err != nil {
		logger.Error("achievement check failed", zap.Uint("user_id", userID), zap.Error(err))
	}

	return result, nil
}

// weightedAverage folds one new score into a running average.
func weightedAverage(oldAvg float64, oldCount, newScore int) float64 {
	return (oldAvg*float64(oldCount) + float64(newScore)) / float64(oldCount+1)
}

// masteryLevel combines completion ratio and average score into a
// 0-100 mastery figure.
func masteryLevel(completed, total int, avgScore float64) int {
	if total <= 0 {
		return 0
	}
	completion := float64(completed) / float64(total)
	if completion > 1 {
		completion = 1
	}
	mastery := int(completion * avgScore)
	if mastery > 100 {
		mastery = 100
	}
	return mastery
}
