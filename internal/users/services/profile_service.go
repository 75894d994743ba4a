package services

import (
	"time"

	progression "github.com/epulsepoints-cpu/pulsepoints-sub010/internal/progression/services"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/models"
	"github.com/epulsepoints-cpu/pulsepoints-sub010/internal/users/repository"
)

// ProfileView is the profile response plus rank progression details.
type ProfileView struct {
	models.ProfileResponse
	Level         int     `json:"level"`
	XPToNextLevel int     `json:"xp_to_next_level"`
	NextRank      string  `json:"next_rank"`
	RankProgress  float64 `json:"rank_progress"`
	RankXPNeeded  int     `json:"rank_xp_needed"`
}

// GetProfile returns the extended profile for one user. Optional text
// fields come back as empty strings rather than being omitted, so
// clients always see the full shape.
func GetProfile(userID uint) (*ProfileView, error) {
	user, err := repository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	levelInfo := progression.CalculateLevel(user.XP)
	rankInfo := progression.RankProgress(user.Rank, user.XP)

	return &ProfileView{
		ProfileResponse: models.ProfileResponse{
			UserID:       user.ID,
			Username:     user.Username,
			DisplayName:  user.DisplayName,
			Bio:          user.Bio,
			Location:     user.Location,
			Profession:   user.Profession,
			Institution:  user.Institution,
			XP:           user.XP,
			Gems:         user.Gems,
			Hearts:       user.Hearts,
			Rank:         rankInfo.Rank,
			Title:        user.Title,
			LastActiveAt: user.LastActiveAt,
		},
		Level:         levelInfo.Level,
		XPToNextLevel: levelInfo.XPToNextLevel,
		NextRank:      rankInfo.NextRank,
		RankProgress:  rankInfo.Progress,
		RankXPNeeded:  rankInfo.RequiredXP,
	}, nil
}

// UpdateProfile applies a partial edit to the profile fields. Only the
// fields present in the request are written.
func UpdateProfile(userID uint, req *models.UpdateProfileRequest) (*ProfileView, error) {
	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Profession != nil {
		updates["profession"] = *req.Profession
	}
	if req.Institution != nil {
		updates["institution"] = *req.Institution
	}
	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := repository.UpdateUserFields(userID, updates); err != nil {
			return nil, err
		}
	}
	return GetProfile(userID)
}
