package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPForLevel_Basics(t *testing.T) {
	assert.Equal(t, 0, XPForLevel(1))
	assert.Equal(t, 0, XPForLevel(0))
	assert.Equal(t, 0, XPForLevel(-3))

	// Step to level 2 costs floor(50 * 2^1.5) = 141
	assert.Equal(t, 141, XPForLevel(2))

	// Levels past the cap cost the same as the cap
	assert.Equal(t, XPForLevel(MaxLevel), XPForLevel(MaxLevel+10))
}

func TestLevelFromXP_RoundTrip(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		xp := XPForLevel(level)
		assert.Equal(t, level, LevelFromXP(xp), "level %d threshold should map back to itself", level)

		// One XP short of the threshold is the previous level
		if level > 1 {
			assert.Equal(t, level-1, LevelFromXP(xp-1))
		}
	}
}

func TestLevelFromXP_Monotonic(t *testing.T) {
	prev := LevelFromXP(0)
	for xp := 0; xp <= XPForLevel(MaxLevel)+5000; xp += 137 {
		level := LevelFromXP(xp)
		assert.GreaterOrEqual(t, level, prev, "level must never decrease as xp grows")
		prev = level
	}
}

func TestTitleRangesExhaustive(t *testing.T) {
	// Contiguous: each range starts where the previous ended
	assert.Equal(t, 1, titleRanges[0].MinLevel)
	assert.Equal(t, MaxLevel, titleRanges[len(titleRanges)-1].MaxLevel)
	for i := 1; i < len(titleRanges); i++ {
		assert.Equal(t, titleRanges[i-1].MaxLevel+1, titleRanges[i].MinLevel,
			"gap or overlap between %q and %q", titleRanges[i-1].Title, titleRanges[i].Title)
	}

	// Exhaustive: every level maps to exactly one title
	for level := 1; level <= MaxLevel; level++ {
		matches := 0
		for _, r := range titleRanges {
			if level >= r.MinLevel && level <= r.MaxLevel {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "level %d must fall in exactly one title range", level)
	}
}

func TestLevelProgress_FreshUser(t *testing.T) {
	info := LevelProgress(0)
	assert.Equal(t, 1, info.Level)
	assert.Equal(t, 0, info.XPIntoLevel)
	assert.Equal(t, 141, info.XPForNextLevel)
	assert.Equal(t, float64(0), info.PercentComplete)
	assert.Equal(t, "Novice", info.Title)
	// Level 2 is still Novice, so no next title yet
	assert.Nil(t, info.NextTitle)
}

func TestLevelProgress_NextTitleAtBandEdge(t *testing.T) {
	// Level 4 is the last Novice level; level 5 is Apprentice
	info := LevelProgress(XPForLevel(4))
	assert.Equal(t, 4, info.Level)
	assert.Equal(t, "Novice", info.Title)
	if assert.NotNil(t, info.NextTitle) {
		assert.Equal(t, "Apprentice", *info.NextTitle)
	}
}

func TestLevelProgress_MaxLevel(t *testing.T) {
	info := LevelProgress(XPForLevel(MaxLevel) + 999)
	assert.Equal(t, MaxLevel, info.Level)
	assert.Equal(t, "Ascended", info.Title)
	assert.Equal(t, float64(100), info.PercentComplete)
	assert.Equal(t, 0, info.XPForNextLevel)
	assert.Nil(t, info.NextTitle)
}

func TestLevelProgress_PercentWithinBounds(t *testing.T) {
	for xp := 0; xp < XPForLevel(10); xp += 53 {
		info := LevelProgress(xp)
		assert.True(t, info.PercentComplete >= 0 && info.PercentComplete <= 100)
		assert.False(t, math.IsNaN(info.PercentComplete))
	}
}
