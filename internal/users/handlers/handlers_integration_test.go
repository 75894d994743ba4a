package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	achievementmodels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/database"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/middleware"
	progressionmodels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/services"
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
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&progressionmodels.ProgressStats{},
		&progressionmodels.LearningProfile{},
		&achievementmodels.UserAchievement{},
	))
	database.DB = db

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/users", Signup)
	v1.GET("/users/:id", GetUser)
	v1.GET("/profile", middleware.AuthRequired(), GetProfile)
	v1.PUT("/profile", middleware.AuthRequired(), UpdateProfile)
	v1.GET("/profile/rank", middleware.AuthRequired(), GetRankProgress)

	return router
}

func jsonRequest(method, path string, body interface{}, userID string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+userID)
	}
	return req
}

func TestSignupEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/users", gin.H{
		"username": "newlearner",
	}, ""))

	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "newlearner", user.Username)
	assert.Equal(t, "Medical Student", user.Rank)
}

func TestSignupEndpoint_ShortUsername(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/v1/users", gin.H{
		"username": "ab",
	}, ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	created, err := services.Signup(&models.SignupRequest{Username: "lookup"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/users/1", nil, ""))
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, created.Username, user.Username)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/users/999", nil, ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileEndpoints_RoundTrip(t *testing.T) {
	router := setupTestRouter(t)
	_, err := services.Signup(&models.SignupRequest{Username: "profiled"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPut, "/api/v1/profile", gin.H{
		"bio": "ECG enthusiast",
	}, "1"))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/profile", nil, "1"))
	require.Equal(t, http.StatusOK, w.Code)

	var profile services.ProfileView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "ECG enthusiast", profile.Bio)
	assert.Equal(t, "profiled", profile.Username)
	assert.Equal(t, 1, profile.Level)
}

func TestRankProgressEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	user, err := services.Signup(&models.SignupRequest{Username: "ranked"})
	require.NoError(t, err)
	require.NoError(t, database.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{"xp": 300, "rank": "Resident"}).Error)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/profile/rank", nil, "1"))
	require.Equal(t, http.StatusOK, w.Code)

	var info struct {
		Rank       string  `json:"rank"`
		NextRank   string  `json:"next_rank"`
		Progress   float64 `json:"progress"`
		RequiredXP int     `json:"required_xp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "Resident", info.Rank)
	assert.Equal(t, "ECG Wizard", info.NextRank)
	assert.InDelta(t, 50.0, info.Progress, 0.001)
	assert.Equal(t, 200, info.RequiredXP)
}

func TestProfileEndpoint_Unauthenticated(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodGet, "/api/v1/profile", nil, ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
