package services

// rankThreshold is one entry of the named-rank ladder. Ranks are a
// separate progression axis from the numeric level: ranks are the
// user-facing career ladder, levels drive reward pacing.
type rankThreshold struct {
	Name string
	XP   int
}

// rankLadder is ordered by ascending XP threshold.
var rankLadder = []rankThreshold{
	{"Medical Student", 0},
	{"Resident", 100},
	{"ECG Wizard", 500},
	{"Cardiology Fellow", 1500},
	{"Electrophysiologist", 4000},
	{"ECG Master", 10000},
}

// RankProgressInfo describes where a user sits on the rank ladder.
type RankProgressInfo struct {
	Rank       string  `json:"rank"`
	NextRank   string  `json:"next_rank,omitempty"`
	Progress   float64 `json:"progress"`    // percent toward next rank, clamped to [0,100]
	RequiredXP int     `json:"required_xp"` // XP still needed for the next rank
}

// RankForXP returns the highest rank whose threshold the XP meets.
func RankForXP(xp int) string {
	rank := rankLadder[0].Name
	for _, t := range rankLadder {
		if xp >= t.XP {
			rank = t.Name
		}
	}
	return rank
}

// RankProgress locates the given rank on the ladder and linearly
// interpolates progress toward the next threshold. An unknown rank is
// resolved from XP instead. At the top rank progress is 100 with no
// next rank.
func RankProgress(rank string, xp int) RankProgressInfo {
	idx := -1
	for i, t := range rankLadder {
		if t.Name == rank {
			idx = i
			break
		}
	}
	if idx < 0 {
		return RankProgress(RankForXP(xp), xp)
	}

	if idx == len(rankLadder)-1 {
		return RankProgressInfo{Rank: rank, Progress: 100}
	}

	current := rankLadder[idx]
	next := rankLadder[idx+1]

	progress := float64(xp-current.XP) / float64(next.XP-current.XP) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	required := next.XP - xp
	if required < 0 {
		required = 0
	}

	return RankProgressInfo{
		Rank:       rank,
		NextRank:   next.Name,
		Progress:   progress,
		RequiredXP: required,
	}
}
