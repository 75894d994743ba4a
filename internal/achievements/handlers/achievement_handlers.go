package handlers

import (
	"net/http"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/services"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/middleware"
	"github.com/gin-gonic/gin"
)

// GetCatalog handles GET /api/v1/achievements
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"achievements": services.GetCatalog()})
}

// GetUserAchievements handles GET /api/v1/achievements/user
func GetUserAchievements(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}
	achievements, err := services.GetUserAchievements(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// SeedAchievements handles POST /api/v1/achievements/seed. It
// instantiates the caller's progress rows from the catalog; safe to
// call repeatedly.
func SeedAchievements(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}
	if err := services.Initialize(userID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "seeded"})
}

// ClaimReward handles POST /api/v1/achievements/:id/claim
func ClaimReward(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}
	achievementID := c.Param("id")
	if achievementID == "" {
		middleware.JSONErrorResponse(c, errors.BadRequest("achievement id is required"))
		return
	}
	result, err := services.ClaimReward(userID, achievementID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
