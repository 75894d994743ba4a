package services

import (
	"strings"
	"time"

	achievements "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/achievements/services"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/errors"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/common/validation"
	progressionmodels "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/models"
	progressionrepo "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/repository"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/repository"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/pkg/logger"
	"go.uber.org/zap"
)

// defaultUnlockedModules is the module list every new account starts
// with. The first module is free; the rest unlock through play.
const defaultUnlockedModules = "1"

// Signup creates a new user account with its learning profile and
// achievement rows.
func Signup(req *models.SignupRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, errors.BadRequest("username is required")
	}
	if errs := validation.Validate(req); len(errs) > 0 {
		return nil, errors.Validation("invalid signup request", errs[0].Message)
	}
	if existing, err := repository.GetUserByUsername(username); err == nil && existing != nil {
		return nil, errors.Conflict("username already taken")
	}

	user := &models.User{
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		DisplayName:  strings.TrimSpace(req.DisplayName),
		Hearts:       5,
		Rank:         "Medical Student",
		LastActiveAt: time.Now(),
	}
	if user.DisplayName == "" {
		user.DisplayName = username
	}
	if err := repository.CreateUser(user); err != nil {
		return nil, err
	}

	profile := &progressionmodels.LearningProfile{
		UserID:          user.ID,
		UnlockedModules: defaultUnlockedModules,
	}
	if err := progressionrepo.CreateLearningProfile(profile); err != nil {
		logger.Warn("signup: learning profile create failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	if err := achievements.Initialize(user.ID); err != nil {
		logger.Warn("signup: achievement init failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

// GetUser returns one account by id.
func GetUser(userID uint) (*models.User, error) {
	return repository.GetUserByID(userID)
}

// GetUserByUsername returns one account by username.
func GetUserByUsername(username string) (*models.User, error) {
	return repository.GetUserByUsername(username)
}
