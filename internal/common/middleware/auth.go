package middleware

import (
	"strconv"
	"strings"

	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/gin-gonic/gin"
)

// AuthRequired resolves the calling user from the session cookie or the
// Authorization header and stores the numeric id in the context under
// "user_id". Requests without a resolvable user are rejected.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveUserID(c); ok {
			c.Set("user_id", userID)
			c.Next()
			return
		}

		appErr := errors.Unauthorized("missing or invalid authentication")
		c.JSON(appErr.Status, appErr)
		c.Abort()
	}
}

// OptionalAuth resolves the user if credentials are present but never fails.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveUserID(c); ok {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func resolveUserID(c *gin.Context) (uint, bool) {
	// Session cookie carries the user id directly
	if session, err := c.Cookie("session_id"); err == nil && session != "" {
		if id, err := strconv.ParseUint(session, 10, 32); err == nil && id > 0 {
			return uint(id), true
		}
	}

	// Bearer token: the token subject is the user id
	token := c.GetHeader("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	if token != "" {
		if id, err := strconv.ParseUint(token, 10, 32); err == nil && id > 0 {
			return uint(id), true
		}
	}

	return 0, false
}

// UserID extracts the authenticated user id set by AuthRequired.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
