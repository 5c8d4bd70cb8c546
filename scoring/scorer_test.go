package scoring

import (
	"strings"
	"testing"

	"github.com/matchday-forum/matchday/models"
)

func TestScoreDeterministic(t *testing.T) {
	text := strings.Repeat("what a pass and what a finish ", 30)
	media := []string{"https://cdn.example.com/a.jpg"}
	poll := &models.PollSpec{
		Question: "best formation?",
		Options:  []string{"4-4-2", "4-3-3"},
	}

	first := Score(text, media, "", poll, models.CategoryUltimateTeam)
	for i := 0; i < 10; i++ {
		if got := Score(text, media, "", poll, models.CategoryUltimateTeam); got != first {
			t.Fatalf("score not deterministic: %d vs %d", got, first)
		}
	}
	if first < 0 || first > 100 {
		t.Fatalf("score out of range: %d", first)
	}
}

func TestScoreRange(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		media    []string
		gif      string
		poll     *models.PollSpec
		category string
	}{
		{name: "empty"},
		{name: "spam", text: "FREE COINS click here " + strings.Repeat("!", 30), category: models.CategoryTrading},
		{name: "rich", text: strings.Repeat("solid analysis of the match ", 60),
			media: []string{"https://x/a.jpg", "https://x/b.jpg"}, gif: "https://x/c.gif",
			poll:     &models.PollSpec{Options: []string{"yes", "no", "maybe"}},
			category: models.CategoryUltimateTeam},
	}
	for _, tc := range cases {
		got := Score(tc.text, tc.media, tc.gif, tc.poll, tc.category)
		if got < 0 || got > 100 {
			t.Fatalf("%s: score out of range: %d", tc.name, got)
		}
	}
}

func TestScoreCategoryPopularity(t *testing.T) {
	// identical posts, only the category differs
	text := strings.Repeat("word ", 250)
	media := []string{"https://cdn.example.com/goal.png"}

	hot := Score(text, media, "", nil, models.CategoryUltimateTeam) // popularity 0.95
	cold := Score(text, media, "", nil, "unknown_category")         // popularity fallback 0.5

	if hot <= cold {
		t.Fatalf("expected ultimate_team (%d) to outscore unknown category (%d)", hot, cold)
	}
}

func TestScorePollRichness(t *testing.T) {
	text := strings.Repeat("word ", 100)
	plain := Score(text, nil, "", nil, models.CategoryGeneral)
	withPoll := Score(text, nil, "", &models.PollSpec{
		Options:  []string{"a", "b", "c", "d"},
		Settings: models.PollSettings{Boosted: true, HasTimeLimit: true, DurationHours: 24},
	}, models.CategoryGeneral)

	if withPoll <= plain {
		t.Fatalf("expected poll to raise score: %d <= %d", withPoll, plain)
	}
}

func TestSpamLowersQuality(t *testing.T) {
	clean := strings.Repeat("honest match report ", 20)
	spam := clean + " FREE coins click here"

	if Score(spam, nil, "", nil, models.CategoryGeneral) >= Score(clean, nil, "", nil, models.CategoryGeneral) {
		t.Fatal("expected spam content to score lower")
	}
}

func TestEngagementPotential(t *testing.T) {
	text := strings.Repeat("trading tips for the weekend market ", 40)

	base := EngagementPotential(text, nil, "", nil, models.CategoryGeneral)
	boosted := EngagementPotential(text, nil, "", nil, models.CategoryUltimateTeam)
	if boosted < base {
		t.Fatalf("category multiplier should not lower engagement: %d < %d", boosted, base)
	}

	for _, v := range []int{base, boosted} {
		if v < 0 || v > 100 {
			t.Fatalf("engagement out of range: %d", v)
		}
	}
}

func TestCategoryMultiplierFloor(t *testing.T) {
	if m := CategoryMultiplier("nonexistent"); m != 1.0 {
		t.Fatalf("expected 1.0 fallback, got %f", m)
	}
	for _, c := range models.ValidCategories {
		if m := CategoryMultiplier(c); m < 1.0 {
			t.Fatalf("multiplier below 1.0 for %s: %f", c, m)
		}
	}
}
