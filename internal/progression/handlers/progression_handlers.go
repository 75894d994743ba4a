package handlers

import (
	"net/http"
	"strconv"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/middleware"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/services"
	"github.com/gin-gonic/gin"
)

// CompleteLesson handles POST /api/v1/progress/lessons/complete
func CompleteLesson(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}

	var req models.CompleteLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	result, err := services.CompleteLesson(userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProgressStats handles GET /api/v1/progress/stats
func GetProgressStats(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}
	c.JSON(http.StatusOK, services.GetUserProgressStats(userID))
}

// GetModuleProgress handles GET /api/v1/progress/modules
func GetModuleProgress(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}
	modules, err := services.GetModuleProgressList(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": modules})
}

// GetRecentActivity handles GET /api/v1/progress/activity
func GetRecentActivity(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	events, err := services.GetRecentActivity(userID, limit)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": events})
}

// GetLeaderboard handles GET /api/v1/leaderboard
func GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	entries, err := services.GetLeaderboard(limit)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
