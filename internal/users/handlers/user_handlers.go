package handlers

import (
	"net/http"
	"strconv"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/middleware"
	progression "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/services"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/services"
	"github.com/gin-gonic/gin"
)

// Signup handles POST /api/v1/users
func Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}
	user, err := services.Signup(&req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /api/v1/users/:id
func GetUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || userID == 0 {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid user id"))
		return
	}
	user, svcErr := services.GetUser(uint(userID))
	if svcErr != nil {
		middleware.JSONErrorResponse(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetRankProgress handles GET /api/v1/profile/rank
func GetRankProgress(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}
	user, err := services.GetUser(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, progression.RankProgress(user.Rank, user.XP))
}

// GetProfile handles GET /api/v1/profile
func GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}
	profile, err := services.GetProfile(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/profile
func UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return
	}
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}
	profile, err := services.UpdateProfile(userID, &req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
