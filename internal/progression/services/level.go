package services

// LevelInfo pairs a numeric level with the size of the next level's
// XP bracket. XPToNextLevel is a display value (bracket size), not the
// XP remaining from the current balance.
type LevelInfo struct {
	Level         int `json:"level"`
	XPToNextLevel int `json:"xp_to_next_level"`
}

// CalculateLevel maps cumulative XP to a level using a triangular
// bracket schedule: level 1 spans 100 XP, level 2 spans 200 XP, level
// N spans 100*N XP. Negative input is treated as zero.
func CalculateLevel(totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	remaining := totalXP
	for remaining >= 100*level {
		remaining -= 100 * level
		level++
	}

	return LevelInfo{
		Level:         level,
		XPToNextLevel: 100 * level,
	}
}
