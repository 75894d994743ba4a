package models

import (
	"time"
)

// Rarity tiers
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Metrics an achievement can track
const (
	MetricLessons = "lessons"
	MetricStreak  = "streak"
	MetricPerfect = "perfect"
	MetricFast    = "fast"
	MetricModules = "modules"
	MetricXP      = "xp"
)

// AchievementDef is a static catalog entry. Per-user progress rows are
// instantiated from these definitions.
type AchievementDef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Target      int    `json:"target"`
	Metric      string `json:"metric"`
	RewardXP    int    `json:"reward_xp"`
	RewardGems  int    `json:"reward_gems"`
	RewardTitle string `json:"reward_title,omitempty"`
	Rarity      string `json:"rarity"`
	Category    string `json:"category"`
}

// Catalog is the fixed achievement table, ordered for display.
var Catalog = []AchievementDef{
	{ID: "first_lesson", Title: "First Steps", Description: "Complete your first lesson", Icon: "🎯", Target: 1, Metric: MetricLessons, RewardXP: 10, RewardGems: 5, Rarity: RarityCommon, Category: "milestone"},
	{ID: "knowledge_seeker", Title: "Knowledge Seeker", Description: "Complete 50 lessons", Icon: "📚", Target: 50, Metric: MetricLessons, RewardXP: 200, RewardGems: 40, Rarity: RarityRare, Category: "milestone"},
	{ID: "streak_3", Title: "On Fire", Description: "Reach a 3-lesson streak", Icon: "🔥", Target: 3, Metric: MetricStreak, RewardXP: 25, RewardGems: 5, Rarity: RarityCommon, Category: "streak"},
	{ID: "streak_7", Title: "Week Warrior", Description: "Reach a 7-lesson streak", Icon: "🌟", Target: 7, Metric: MetricStreak, RewardXP: 50, RewardGems: 10, Rarity: RarityUncommon, Category: "streak"},
	{ID: "streak_14", Title: "Dedicated", Description: "Reach a 14-lesson streak", Icon: "💪", Target: 14, Metric: MetricStreak, RewardXP: 100, RewardGems: 20, Rarity: RarityRare, Category: "streak"},
	{ID: "streak_30", Title: "Unstoppable", Description: "Reach a 30-lesson streak", Icon: "👑", Target: 30, Metric: MetricStreak, RewardXP: 250, RewardGems: 50, Rarity: RarityEpic, Category: "streak"},
	{ID: "streak_100", Title: "Centurion", Description: "Reach a 100-lesson streak", Icon: "🏛️", Target: 100, Metric: MetricStreak, RewardXP: 1000, RewardGems: 200, RewardTitle: "The Relentless", Rarity: RarityLegendary, Category: "streak"},
	{ID: "perfect_score", Title: "Flawless", Description: "Finish a lesson with a perfect score", Icon: "💯", Target: 1, Metric: MetricPerfect, RewardXP: 25, RewardGems: 5, Rarity: RarityCommon, Category: "perfection"},
	{ID: "perfectionist", Title: "Perfectionist", Description: "Finish 10 lessons with perfect scores", Icon: "✨", Target: 10, Metric: MetricPerfect, RewardXP: 150, RewardGems: 30, Rarity: RarityRare, Category: "perfection"},
	{ID: "speed_demon", Title: "Speed Demon", Description: "Finish 10 lessons in under three minutes each", Icon: "⚡", Target: 10, Metric: MetricFast, RewardXP: 75, RewardGems: 15, Rarity: RarityUncommon, Category: "speed"},
	{ID: "module_mastery", Title: "Module Mastery", Description: "Complete your first module", Icon: "🏆", Target: 1, Metric: MetricModules, RewardXP: 50, RewardGems: 10, Rarity: RarityUncommon, Category: "mastery"},
	{ID: "ecg_scholar", Title: "ECG Scholar", Description: "Complete 5 modules", Icon: "🎓", Target: 5, Metric: MetricModules, RewardXP: 300, RewardGems: 60, RewardTitle: "ECG Scholar", Rarity: RarityEpic, Category: "mastery"},
	{ID: "xp_1000", Title: "Rising Star", Description: "Earn 1,000 total XP", Icon: "⭐", Target: 1000, Metric: MetricXP, RewardXP: 50, RewardGems: 10, Rarity: RarityUncommon, Category: "milestone"},
	{ID: "xp_10000", Title: "Legend", Description: "Earn 10,000 total XP", Icon: "💎", Target: 10000, Metric: MetricXP, RewardXP: 500, RewardGems: 100, RewardTitle: "Legend", Rarity: RarityLegendary, Category: "milestone"},
}

// CatalogByID indexes the catalog for lookups.
var CatalogByID = func() map[string]AchievementDef {
	m := make(map[string]AchievementDef, len(Catalog))
	for _, def := range Catalog {
		m[def.ID] = def
	}
	return m
}()

// UserAchievement is the per-user progress row for one catalog entry.
// Progress never exceeds Target; Claimed implies Completed; Completed
// never reverts.
type UserAchievement struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID string     `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	Progress      int        `gorm:"default:0" json:"progress"`
	Target        int        `gorm:"not null" json:"target"`
	Completed     bool       `gorm:"default:false" json:"completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Claimed       bool       `gorm:"default:false" json:"claimed"`
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`
	RewardXP      int        `json:"reward_xp"`
	RewardGems    int        `json:"reward_gems"`
	RewardTitle   string     `json:"reward_title,omitempty"`
	Rarity        string     `json:"rarity"`
	Category      string     `json:"category"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// AchievementStats is the progress summary the tracker evaluates
// trigger conditions against.
type AchievementStats struct {
	TotalLessons     int `json:"total_lessons"`
	CompletedModules int `json:"completed_modules"`
	CurrentStreak    int `json:"current_streak"`
	PerfectLessons   int `json:"perfect_lessons"`
	FastCompletions  int `json:"fast_completions"`
	TotalXP          int `json:"total_xp"`
}

// StatForMetric returns the stat value tracked by the given metric.
func (s AchievementStats) StatForMetric(metric string) int {
	switch metric {
	case MetricLessons:
		return s.TotalLessons
	case MetricStreak:
		return s.CurrentStreak
	case MetricPerfect:
		return s.PerfectLessons
	case MetricFast:
		return s.FastCompletions
	case MetricModules:
		return s.CompletedModules
	case MetricXP:
		return s.TotalXP
	default:
		return 0
	}
}

// ClaimResult reports the credited reward after a successful claim
type ClaimResult struct {
	AchievementID string `json:"achievement_id"`
	XPAwarded     int    `json:"xp_awarded"`
	GemsAwarded   int    `json:"gems_awarded"`
	TitleAwarded  string `json:"title_awarded,omitempty"`
	TotalXP       int    `json:"total_xp"`
	TotalGems     int    `json:"total_gems"`
}
