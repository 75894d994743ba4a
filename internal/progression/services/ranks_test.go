package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankForXP(t *testing.T) {
	tests := []struct {
		xp   int
		rank string
	}{
		{0, "Medical Student"},
		{99, "Medical Student"},
		{100, "Resident"},
		{499, "Resident"},
		{500, "ECG Wizard"},
		{1500, "Cardiology Fellow"},
		{4000, "Electrophysiologist"},
		{9999, "Electrophysiologist"},
		{10000, "ECG Master"},
		{50000, "ECG Master"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.rank, RankForXP(tt.xp), "rank for %d XP", tt.xp)
	}
}

func TestRankProgress_Midpoint(t *testing.T) {
	// Resident spans 100..500; 300 XP sits halfway
	info := RankProgress("Resident", 300)

	assert.Equal(t, "Resident", info.Rank)
	assert.Equal(t, "ECG Wizard", info.NextRank)
	assert.InDelta(t, 50.0, info.Progress, 0.001)
	assert.Equal(t, 200, info.RequiredXP)
}

func TestRankProgress_TopRank(t *testing.T) {
	info := RankProgress("ECG Master", 12000)

	assert.Equal(t, "ECG Master", info.Rank)
	assert.Empty(t, info.NextRank)
	assert.Equal(t, 100.0, info.Progress)
	assert.Equal(t, 0, info.RequiredXP)
}

func TestRankProgress_UnknownRankResolvesFromXP(t *testing.T) {
	info := RankProgress("Attending", 600)

	assert.Equal(t, "ECG Wizard", info.Rank)
	assert.Equal(t, "Cardiology Fellow", info.NextRank)
}

func TestRankProgress_Clamped(t *testing.T) {
	// Stale rank with XP beyond the next threshold still clamps to 100
	info := RankProgress("Medical Student", 700)

	assert.Equal(t, 100.0, info.Progress)
	assert.Equal(t, 0, info.RequiredXP)

	// Below the current rank's own floor clamps to 0
	info = RankProgress("Resident", 50)
	assert.Equal(t, 0.0, info.Progress)
}
