package services

import "math"

// MaxLevel caps the level curve. XP keeps accumulating past the cap but
// the level and title stop moving.
const MaxLevel = 50

type titleRange struct {
	Title    string
	MinLevel int
	MaxLevel int
}

// titleRanges must be contiguous and cover every level 1..MaxLevel with no
// gaps or overlaps. TestTitleRangesExhaustive enforces this.
var titleRanges = []titleRange{
	{"Novice", 1, 4},
	{"Apprentice", 5, 9},
	{"Adept", 10, 14},
	{"Journeyman", 15, 19},
	{"Expert", 20, 24},
	{"Veteran", 25, 29},
	{"Master", 30, 34},
	{"Grandmaster", 35, 39},
	{"Legend", 40, 44},
	{"Mythic", 45, 49},
	{"Ascended", 50, 50},
}

// XPForLevel returns the cumulative XP required to reach a level.
// Level 1 costs nothing; each step to level i costs floor(50 * i^1.5).
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	total := 0
	for i := 2; i <= level; i++ {
		total += int(math.Floor(50 * math.Pow(float64(i), 1.5)))
	}
	return total
}

// LevelFromXP returns the highest level whose threshold is <= xp.
// A linear scan is fine: MaxLevel is small and fixed.
func LevelFromXP(xp int) int {
	level := 1
	for l := 2; l <= MaxLevel; l++ {
		if xp >= XPForLevel(l) {
			level = l
		} else {
			break
		}
	}
	return level
}

// TitleForLevel looks up the title band containing a level.
func TitleForLevel(level int) string {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	for _, r := range titleRanges {
		if level >= r.MinLevel && level <= r.MaxLevel {
			return r.Title
		}
	}
	// Unreachable while titleRanges stays exhaustive
	return titleRanges[len(titleRanges)-1].Title
}

// LevelProgressInfo describes where a user sits within their current level.
type LevelProgressInfo struct {
	Level           int     `json:"level"`
	XPIntoLevel     int     `json:"xpIntoLevel"`
	XPForNextLevel  int     `json:"xpForNextLevel"`
	PercentComplete float64 `json:"percentComplete"`
	Title           string  `json:"title"`
	NextTitle       *string `json:"nextTitle,omitempty"`
}

// LevelProgress computes the level break-down for a total XP amount.
// NextTitle is set only when the next level's title differs from the
// current one; titles span several levels.
func LevelProgress(xp int) LevelProgressInfo {
	level := LevelFromXP(xp)
	info := LevelProgressInfo{
		Level: level,
		Title: TitleForLevel(level),
	}

	if level >= MaxLevel {
		info.XPIntoLevel = xp - XPForLevel(MaxLevel)
		info.PercentComplete = 100
		return info
	}

	floor := XPForLevel(level)
	next := XPForLevel(level + 1)
	info.XPIntoLevel = xp - floor
	info.XPForNextLevel = next - floor
	if info.XPForNextLevel > 0 {
		info.PercentComplete = math.Round(float64(info.XPIntoLevel)/float64(info.XPForNextLevel)*10000) / 100
	}

	if nt := TitleForLevel(level + 1); nt != info.Title {
		info.NextTitle = &nt
	}
	return info
}
