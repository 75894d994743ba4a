package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/services"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/middleware"
	usermodels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&usermodels.User{}, &models.UserAchievement{}))
	database.DB = db

	user := &usermodels.User{ID: 1, Username: "testuser", Hearts: 5, Rank: "Medical Student"}
	require.NoError(t, db.Create(user).Error)

	router := gin.New()
	group := router.Group("/api/v1/achievements")
	group.GET("", GetCatalog)
	group.GET("/user", middleware.AuthRequired(), GetUserAchievements)
	group.POST("/seed", middleware.AuthRequired(), SeedAchievements)
	group.POST("/:id/claim", middleware.AuthRequired(), ClaimReward)

	return router
}

func authedRequest(method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer 1")
	return req
}

func TestGetCatalogEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/achievements", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Achievements []models.AchievementDef `json:"achievements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Achievements, len(models.Catalog))
}

func TestGetUserAchievementsEndpoint_InitializesRows(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/achievements/user"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Achievements []models.UserAchievement `json:"achievements"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Achievements, len(models.Catalog))
}

func TestSeedAchievementsEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/achievements/seed"))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.UserAchievement{}).Where("user_id = ?", 1).Count(&count)
	assert.Equal(t, int64(len(models.Catalog)), count)

	// Calling again does not duplicate
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/achievements/seed"))
	require.Equal(t, http.StatusOK, w.Code)

	database.DB.Model(&models.UserAchievement{}).Where("user_id = ?", 1).Count(&count)
	assert.Equal(t, int64(len(models.Catalog)), count)
}

func TestClaimRewardEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	require.NoError(t, services.Initialize(1))
	require.NoError(t, services.UpdateProgress(1, "first_lesson", 1, true))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/achievements/first_lesson/claim"))

	require.Equal(t, http.StatusOK, w.Code)

	var result models.ClaimResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "first_lesson", result.AchievementID)
	assert.Equal(t, 10, result.XPAwarded)

	// Claiming again is rejected
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/achievements/first_lesson/claim"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestClaimRewardEndpoint_NotCompleted(t *testing.T) {
	router := setupTestRouter(t)
	require.NoError(t, services.Initialize(1))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodPost, "/api/v1/achievements/streak_100/claim"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClaimRewardEndpoint_Unauthenticated(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/achievements/first_lesson/claim", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
