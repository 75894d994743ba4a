package services

import (
	"time"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/repository"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/pkg/logger"
	usermodels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetCatalog returns the static achievement definitions
func GetCatalog() []models.AchievementDef {
	return models.Catalog
}

// GetUserAchievements returns the user's achievement rows, initializing
// them from the catalog on first access.
func GetUserAchievements(userID uint) ([]*models.UserAchievement, error) {
	if userID == 0 {
		return nil, errors.BadRequest("invalid user ID")
	}

	if err := Initialize(userID); err != nil {
		return nil, err
	}

	return repository.GetUserAchievements(userID)
}

// Initialize instantiates one progress row per catalog entry for the
// user if none exist yet. Safe to call repeatedly.
func Initialize(userID uint) error {
	count, err := repository.CountUserAchievements(userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]*models.UserAchievement, len(models.Catalog))
	for i, def := range models.Catalog {
		rows[i] = &models.UserAchievement{
			UserID:        userID,
			AchievementID: def.ID,
			Progress:      0,
			Target:        def.Target,
			RewardXP:      def.RewardXP,
			RewardGems:    def.RewardGems,
			RewardTitle:   def.RewardTitle,
			Rarity:        def.Rarity,
			Category:      def.Category,
		}
	}

	return repository.CreateUserAchievements(rows)
}

// UpdateProgress records new progress for one achievement. Progress is
// clamped to [0, target]. The first time the clamped value reaches the
// target with autoComplete set, the achievement is marked completed
// with an unlock timestamp; the completed flag never reverts. An
// unknown achievement id is logged and ignored; a missing row set is
// self-healed by initializing from the catalog and retrying once.
func UpdateProgress(userID uint, achievementID string, progress int, autoComplete bool) error {
	def, known := models.CatalogByID[achievementID]
	if !known {
		logger.Warn("unknown achievement id", zap.String("achievement_id", achievementID))
		return nil
	}

	row, err := repository.GetUserAchievement(userID, achievementID)
	if err != nil {
		if initErr := Initialize(userID); initErr != nil {
			return initErr
		}
		row, err = repository.GetUserAchievement(userID, achievementID)
		if err != nil {
			return err
		}
	}

	clamped := progress
	if clamped < 0 {
		clamped = 0
	}
	if clamped > def.Target {
		clamped = def.Target
	}

	row.Progress = clamped
	if autoComplete && !row.Completed && clamped >= def.Target {
		now := time.Now()
		row.Completed = true
		row.CompletedAt = &now
	}

	return repository.SaveUserAchievement(row)
}

// ClaimReward credits a completed achievement's reward to the user and
// marks it claimed, exactly once. The row is read and validated inside
// the same transaction that writes it, and the claimed flip is guarded
// by a claimed=false condition, so two racing claims cannot both
// credit. The claim fails without any writes when the achievement is
// missing, not completed, or already claimed.
func ClaimReward(userID uint, achievementID string) (*models.ClaimResult, error) {
	var claim *models.ClaimResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var row models.UserAchievement
		if txErr := tx.Where("user_id = ? AND achievement_id = ?", userID, achievementID).
			First(&row).Error; txErr != nil {
			return errors.NotFound("achievement")
		}
		if !row.Completed {
			return errors.BadRequest("achievement not completed yet")
		}
		if row.Claimed {
			return errors.Conflict("achievement reward already claimed")
		}

		if txErr := repository.MarkUserAchievementClaimed(tx, row.ID, time.Now()); txErr != nil {
			return txErr
		}

		var user usermodels.User
		if txErr := tx.First(&user, userID).Error; txErr != nil {
			return errors.NotFound("user")
		}

		user.XP += row.RewardXP
		user.Gems += row.RewardGems
		if row.RewardTitle != "" {
			user.Title = row.RewardTitle
		}
		user.UpdatedAt = time.Now()
		if txErr := tx.Save(&user).Error; txErr != nil {
			return errors.Internal("failed to credit reward", txErr.Error())
		}

		claim = &models.ClaimResult{
			AchievementID: achievementID,
			XPAwarded:     row.RewardXP,
			GemsAwarded:   row.RewardGems,
			TitleAwarded:  row.RewardTitle,
			TotalXP:       user.XP,
			TotalGems:     user.Gems,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return claim, nil
}

// CheckAchievements evaluates every catalog entry's trigger condition
// against the given stats and pushes progress for each. Repeated calls
// are idempotent because UpdateProgress clamps and completes only once.
func CheckAchievements(userID uint, stats models.AchievementStats) error {
	if err := Initialize(userID); err != nil {
		return err
	}

	for _, def := range models.Catalog {
		value := stats.StatForMetric(def.Metric)
		if value <= 0 {
			continue
		}
		if err := UpdateProgress(userID, def.ID, value, true); err != nil {
			logger.Error("achievement progress update failed",
				zap.String("achievement_id", def.ID),
				zap.Uint("user_id", userID),
				zap.Error(err))
		}
	}

	return nil
}
