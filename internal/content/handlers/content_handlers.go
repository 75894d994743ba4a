package handlers

import (
	"net/http"
	"strconv"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/middleware"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/content/services"
	"github.com/gin-gonic/gin"
)

// GetModules returns the module catalog
// GET /api/v1/content/modules
func GetModules(c *gin.Context) {
	modules, err := services.GetModules()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, modules)
}

// GetModuleLessons returns a module's lessons
// GET /api/v1/content/modules/:id/lessons
func GetModuleLessons(c *gin.Context) {
	moduleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module id"})
		return
	}

	lessons, svcErr := services.GetModuleLessons(uint(moduleID))
	if svcErr != nil {
		middleware.JSONErrorResponse(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, lessons)
}

// GetLesson returns a lesson with its slides
// GET /api/v1/content/lessons/:id
func GetLesson(c *gin.Context) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson id"})
		return
	}

	lesson, svcErr := services.GetLesson(uint(lessonID))
	if svcErr != nil {
		middleware.JSONErrorResponse(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, lesson)
}
