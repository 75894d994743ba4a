package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/repository"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	usermodels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
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

	require.NoError(t, db.AutoMigrate(
		&usermodels.User{},
		&models.UserAchievement{},
	))

	database.DB = db
}

func createTestUser(t *testing.T) *usermodels.User {
	user := &usermodels.User{Username: "testuser", Hearts: 5, Rank: "Medical Student"}
	require.NoError(t, database.DB.Create(user).Error)
	return user
}

func TestInitialize_CreatesOneRowPerCatalogEntry(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	require.NoError(t, Initialize(user.ID))

	rows, err := repository.GetUserAchievements(user.ID)
	require.NoError(t, err)
	assert.Len(t, rows, len(models.Catalog))

	// Repeated calls do not duplicate
	require.NoError(t, Initialize(user.ID))
	rows, err = repository.GetUserAchievements(user.ID)
	require.NoError(t, err)
	assert.Len(t, rows, len(models.Catalog))
}

func TestGetUserAchievements_InitializesOnFirstAccess(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	rows, err := GetUserAchievements(user.ID)
	require.NoError(t, err)
	assert.Len(t, rows, len(models.Catalog))
	for _, row := range rows {
		assert.Equal(t, 0, row.Progress)
		assert.False(t, row.Completed)
		assert.False(t, row.Claimed)
	}
}

func TestUpdateProgress_ClampsToTarget(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	require.NoError(t, Initialize(user.ID))

	// streak_3 has target 3
	require.NoError(t, UpdateProgress(user.ID, "streak_3", 50, false))

	row, err := repository.GetUserAchievement(user.ID, "streak_3")
	require.NoError(t, err)
	assert.Equal(t, 3, row.Progress)
	assert.False(t, row.Completed)

	require.NoError(t, UpdateProgress(user.ID, "streak_3", -5, false))
	row, err = repository.GetUserAchievement(user.ID, "streak_3")
	require.NoError(t, err)
	assert.Equal(t, 0, row.Progress)
}

func TestUpdateProgress_CompletesOnceAndNeverReverts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	require.NoError(t, Initialize(user.ID))

	require.NoError(t, UpdateProgress(user.ID, "streak_3", 3, true))

	row, err := repository.GetUserAchievement(user.ID, "streak_3")
	require.NoError(t, err)
	assert.True(t, row.Completed)
	require.NotNil(t, row.CompletedAt)
	firstCompletedAt := *row.CompletedAt

	// Streak dropping back below the target does not revert the unlock
	require.NoError(t, UpdateProgress(user.ID, "streak_3", 1, true))
	row, err = repository.GetUserAchievement(user.ID, "streak_3")
	require.NoError(t, err)
	assert.True(t, row.Completed)
	assert.Equal(t, firstCompletedAt.Unix(), row.CompletedAt.Unix())
}

func TestUpdateProgress_UnknownIDIsIgnored(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	require.NoError(t, Initialize(user.ID))

	assert.NoError(t, UpdateProgress(user.ID, "no_such_achievement", 5, true))
}

func TestUpdateProgress_SelfHealsMissingRows(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	// No Initialize call: the rows do not exist yet
	require.NoError(t, UpdateProgress(user.ID, "first_lesson", 1, true))

	row, err := repository.GetUserAchievement(user.ID, "first_lesson")
	require.NoError(t, err)
	assert.True(t, row.Completed)
}

func TestClaimReward_CreditsExactlyOnce(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	require.NoError(t, Initialize(user.ID))
	require.NoError(t, UpdateProgress(user.ID, "first_lesson", 1, true))

	result, err := ClaimReward(user.ID, "first_lesson")
	require.NoError(t, err)
	assert.Equal(t, 10, result.XPAwarded)
	assert.Equal(t, 5, result.GemsAwarded)
	assert.Equal(t, 10, result.TotalXP)
	assert.Equal(t, 5, result.TotalGems)

	var stored usermodels.User
	require.NoError(t, database.DB.First(&stored, user.ID).Error)
	assert.Equal(t, 10, stored.XP)
	assert.Equal(t, 5, stored.Gems)

	// Second claim fails and credits nothing
	_, err = ClaimReward(user.ID, "first_lesson")
	assert.Error(t, err)

	require.NoError(t, database.DB.First(&stored, user.ID).Error)
	assert.Equal(t, 10, stored.XP)
	assert.Equal(t, 5, stored.Gems)
}

func TestClaimReward_RacingClaimCreditsNothing(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	require.NoError(t, Initialize(user.ID))
	require.NoError(t, UpdateProgress(user.ID, "first_lesson", 1, true))

	// Another request flips the claimed flag between this request's read
	// and its write. The guarded update must refuse the second flip.
	row, err := repository.GetUserAchievement(user.ID, "first_lesson")
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, repository.MarkUserAchievementClaimed(database.DB, row.ID, now))

	err = repository.MarkUserAchievementClaimed(database.DB, row.ID, now)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.Status)

	_, err = ClaimReward(user.ID, "first_lesson")
	assert.Error(t, err)

	var stored usermodels.User
	require.NoError(t, database.DB.First(&stored, user.ID).Error)
	assert.Equal(t, 0, stored.XP)
	assert.Equal(t, 0, stored.Gems)
}

func TestClaimReward_NotCompleted(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	require.NoError(t, Initialize(user.ID))

	_, err := ClaimReward(user.ID, "first_lesson")
	assert.Error(t, err)

	var stored usermodels.User
	require.NoError(t, database.DB.First(&stored, user.ID).Error)
	assert.Equal(t, 0, stored.XP)
	assert.Equal(t, 0, stored.Gems)

	row, repoErr := repository.GetUserAchievement(user.ID, "first_lesson")
	require.NoError(t, repoErr)
	assert.False(t, row.Claimed)
}

func TestClaimReward_MissingAchievement(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	require.NoError(t, Initialize(user.ID))

	_, err := ClaimReward(user.ID, "no_such_achievement")
	assert.Error(t, err)
}

func TestClaimReward_AwardsTitle(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	require.NoError(t, Initialize(user.ID))
	require.NoError(t, UpdateProgress(user.ID, "xp_10000", 10000, true))

	result, err := ClaimReward(user.ID, "xp_10000")
	require.NoError(t, err)
	assert.Equal(t, "Legend", result.TitleAwarded)

	var stored usermodels.User
	require.NoError(t, database.DB.First(&stored, user.ID).Error)
	assert.Equal(t, "Legend", stored.Title)
}

func TestCheckAchievements_PushesAllMetrics(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	stats := models.AchievementStats{
		TotalLessons:   1,
		CurrentStreak:  3,
		PerfectLessons: 1,
		TotalXP:        100,
	}
	require.NoError(t, CheckAchievements(user.ID, stats))

	for _, id := range []string{"first_lesson", "streak_3", "perfect_score"} {
		row, err := repository.GetUserAchievement(user.ID, id)
		require.NoError(t, err)
		assert.True(t, row.Completed, "%s should be completed", id)
	}

	// Partial progress recorded without completion
	row, err := repository.GetUserAchievement(user.ID, "xp_1000")
	require.NoError(t, err)
	assert.Equal(t, 100, row.Progress)
	assert.False(t, row.Completed)
}

func TestCheckAchievements_Idempotent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	stats := models.AchievementStats{TotalLessons: 1}
	require.NoError(t, CheckAchievements(user.ID, stats))
	require.NoError(t, CheckAchievements(user.ID, stats))

	row, err := repository.GetUserAchievement(user.ID, "first_lesson")
	require.NoError(t, err)
	assert.True(t, row.Completed)
	assert.Equal(t, 1, row.Progress)
}
