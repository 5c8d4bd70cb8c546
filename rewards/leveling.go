package rewards

// levelThresholds[i] is the cumulative XP required to reach level i. The table
// is strictly increasing; levels are dimensionless and capped by its length.
var levelThresholds = []int{
	0, 100, 250, 500, 900,
	1500, 2300, 3300, 4600, 6200,
	8000, 10500, 13500, 17000, 21000,
	26000, 32000, 39000, 47000, 56000,
	66000, 78000, 92000, 108000, 126000,
	146000,
}

// MaxLevel is the highest attainable level.
func MaxLevel() int {
	return len(levelThresholds) - 1
}

// LevelOf returns the highest level whose threshold does not exceed xp.
// Negative xp maps to level 0.
func LevelOf(xp int) int {
	for lvl := len(levelThresholds) - 1; lvl > 0; lvl-- {
		if xp >= levelThresholds[lvl] {
			return lvl
		}
	}
	return 0
}

// XPForNextLevel returns the cumulative XP threshold of level+1, or the top
// threshold when level is already at or past the maximum.
func XPForNextLevel(level int) int {
	if level < 0 {
		level = 0
	}
	if level >= MaxLevel() {
		return levelThresholds[MaxLevel()]
	}
	return levelThresholds[level+1]
}
