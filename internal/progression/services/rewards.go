package services

const (
	// PassingScore is the minimum score that counts as a pass and
	// keeps the lesson streak alive.
	PassingScore = 70

	// FastCompletionSeconds is the cutoff under which a lesson counts
	// as a fast completion.
	FastCompletionSeconds = 180

	perfectBonusXP = 25
)

// LessonReward is the XP/gem payout for one completed lesson.
type LessonReward struct {
	BaseXP  int  `json:"base_xp"`
	BonusXP int  `json:"bonus_xp"`
	TotalXP int  `json:"total_xp"`
	Gems    int  `json:"gems"`
	Passed  bool `json:"passed"`
	Fast    bool `json:"fast"`
}

// CalculateLessonReward maps a lesson result to its reward tier.
// Breakpoints at 95/80/70 select the base XP and gem payout; a perfect
// run adds a flat bonus.
func CalculateLessonReward(score, timeSpentSeconds int, perfect bool) LessonReward {
	reward := LessonReward{
		Passed: score >= PassingScore,
		Fast:   timeSpentSeconds > 0 && timeSpentSeconds < FastCompletionSeconds,
	}

	switch {
	case score >= 95:
		reward.BaseXP = 75
		reward.Gems = 10
	case score >= 80:
		reward.BaseXP = 50
		reward.Gems = 5
	case score >= 70:
		reward.BaseXP = 30
		reward.Gems = 3
	default:
		reward.BaseXP = 20
		reward.Gems = 1
	}

	if perfect {
		reward.BonusXP = perfectBonusXP
	}

	reward.TotalXP = reward.BaseXP + reward.BonusXP
	return reward
}
