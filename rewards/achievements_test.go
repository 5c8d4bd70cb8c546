package rewards

import (
	"testing"

	"github.com/matchday-forum/matchday/models"
)

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Catalog {
		if seen[a.ID] {
			t.Fatalf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Unlocked == nil {
			t.Fatalf("achievement %q has no predicate", a.ID)
		}
	}
}

func TestEvaluateAchievementsUnlocks(t *testing.T) {
	cases := []struct {
		name  string
		state models.RewardState
		level int
		want  []string
	}{
		{
			name:  "fresh state unlocks nothing",
			state: models.RewardState{},
			level: 0,
			want:  nil,
		},
		{
			name:  "first post",
			state: models.RewardState{PostsTotal: 1},
			level: 0,
			want:  []string{"first_post"},
		},
		{
			name:  "ten posts unlocks both post tiers",
			state: models.RewardState{PostsTotal: 10},
			level: 0,
			want:  []string{"first_post", "posts_10"},
		},
		{
			name:  "week streak",
			state: models.RewardState{DailyStreak: 7},
			level: 0,
			want:  []string{"streak_7"},
		},
		{
			name:  "level thresholds stack",
			state: models.RewardState{},
			level: 12,
			want:  []string{"level_5", "level_10"},
		},
		{
			name:  "likes milestone",
			state: models.RewardState{LikesTotal: 100},
			level: 0,
			want:  []string{"likes_100"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateAchievements(&tc.state, tc.level, map[string]bool{})
			if len(got) != len(tc.want) {
				t.Fatalf("unlocked %d achievements, expected %d: %+v", len(got), len(tc.want), got)
			}
			for i, a := range got {
				if a.ID != tc.want[i] {
					t.Fatalf("unlocked[%d] = %q, expected %q", i, a.ID, tc.want[i])
				}
			}
		})
	}
}

func TestEvaluateAchievementsNeverRepeats(t *testing.T) {
	state := &models.RewardState{PostsTotal: 12, DailyStreak: 8}
	unlocked := map[string]bool{}

	first := EvaluateAchievements(state, 6, unlocked)
	if len(first) == 0 {
		t.Fatal("expected at least one unlock")
	}
	for _, a := range first {
		unlocked[a.ID] = true
	}

	second := EvaluateAchievements(state, 6, unlocked)
	if len(second) != 0 {
		t.Fatalf("expected no repeat unlocks, got %+v", second)
	}

	// Progressing further only returns the newly crossed tiers.
	state.PostsTotal = 50
	third := EvaluateAchievements(state, 6, unlocked)
	if len(third) != 1 || third[0].ID != "posts_50" {
		t.Fatalf("expected only posts_50, got %+v", third)
	}
}

func TestAchievementPayout(t *testing.T) {
	p, ok := AchievementPayout("first_post")
	if !ok || p.Coins != 20 || p.XP != 10 {
		t.Fatalf("unexpected first_post payout %+v ok=%v", p, ok)
	}
	if _, ok := AchievementPayout("no_such_badge"); ok {
		t.Fatal("unknown id should not resolve")
	}
}
