package rewards

import (
	"testing"
	"time"

	"github.com/matchday-forum/matchday/models"
)

func TestDecideMeaningfulPost(t *testing.T) {
	rules := DefaultRules()
	longPost := PostPayload{ContentLength: 200, Category: models.CategoryGeneral}

	t.Run("rewards until the daily cap", func(t *testing.T) {
		s := &models.RewardState{}
		for i := 0; i < rules.MeaningfulPost.DailyCap; i++ {
			d := decideMeaningfulPost(rules, s, longPost)
			if !d.ok {
				t.Fatalf("post %d rejected: %s", i+1, d.reason)
			}
			if d.payout.Coins != rules.MeaningfulPost.Coins || d.payout.XP != rules.MeaningfulPost.XP {
				t.Fatalf("unexpected payout %+v", d.payout)
			}
		}
		d := decideMeaningfulPost(rules, s, longPost)
		if d.ok || d.reason != ReasonDailyLimit {
			t.Fatalf("expected daily_limit past cap, got %+v", d)
		}
		// The post itself still counts even when the reward does not.
		if s.PostsCreated != 4 || s.PostsTotal != 4 {
			t.Fatalf("post counters = %d/%d, expected 4/4", s.PostsCreated, s.PostsTotal)
		}
		if s.MeaningfulPosts != rules.MeaningfulPost.DailyCap {
			t.Fatalf("meaningful counter = %d, expected %d", s.MeaningfulPosts, rules.MeaningfulPost.DailyCap)
		}
	})

	t.Run("short content is ineligible but counted", func(t *testing.T) {
		s := &models.RewardState{}
		d := decideMeaningfulPost(rules, s, PostPayload{ContentLength: rules.MinPostLength - 1})
		if d.ok || d.reason != ReasonContentLength {
			t.Fatalf("expected content_length, got %+v", d)
		}
		if s.PostsTotal != 1 || s.MeaningfulPosts != 0 {
			t.Fatalf("counters = total %d meaningful %d", s.PostsTotal, s.MeaningfulPosts)
		}
	})

	t.Run("active strikes suspend rewards", func(t *testing.T) {
		s := &models.RewardState{Strikes: 1}
		d := decideMeaningfulPost(rules, s, longPost)
		if d.ok || d.reason != ReasonPenalties {
			t.Fatalf("expected penalties, got %+v", d)
		}
	})

	t.Run("media gate when configured", func(t *testing.T) {
		withMedia := *rules
		withMedia.PostRequiresMedia = true
		s := &models.RewardState{}
		d := decideMeaningfulPost(&withMedia, s, longPost)
		if d.ok || d.reason != ReasonMediaRequired {
			t.Fatalf("expected media_required, got %+v", d)
		}
		d = decideMeaningfulPost(&withMedia, s, PostPayload{ContentLength: 200, MediaCount: 2})
		if !d.ok {
			t.Fatalf("post with media rejected: %+v", d)
		}
	})

	t.Run("popular category scales the payout", func(t *testing.T) {
		s := &models.RewardState{}
		d := decideMeaningfulPost(rules, s, PostPayload{ContentLength: 200, Category: models.CategoryUltimateTeam})
		if !d.ok {
			t.Fatalf("rejected: %+v", d)
		}
		if d.payout.Coins <= rules.MeaningfulPost.Coins || d.payout.XP <= rules.MeaningfulPost.XP {
			t.Fatalf("expected boosted payout, got %+v", d.payout)
		}
	})
}

func TestDecideDailyLogin(t *testing.T) {
	rules := DefaultRules()
	day1 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("consecutive days extend the streak", func(t *testing.T) {
		s := &models.RewardState{}
		for i := 0; i < 3; i++ {
			d := decideDailyLogin(rules, s, day1.AddDate(0, 0, i))
			if !d.ok {
				t.Fatalf("day %d rejected: %+v", i+1, d)
			}
			if s.DailyStreak != i+1 {
				t.Fatalf("streak = %d after day %d", s.DailyStreak, i+1)
			}
		}
	})

	t.Run("same day is already claimed", func(t *testing.T) {
		s := &models.RewardState{}
		if d := decideDailyLogin(rules, s, day1); !d.ok {
			t.Fatalf("first login rejected: %+v", d)
		}
		d := decideDailyLogin(rules, s, day1.Add(8*time.Hour))
		if d.ok || d.reason != ReasonAlreadyClaimed {
			t.Fatalf("expected already_claimed, got %+v", d)
		}
		if s.DailyStreak != 1 {
			t.Fatalf("streak changed on rejected claim: %d", s.DailyStreak)
		}
	})

	t.Run("skipping a day resets to 1", func(t *testing.T) {
		s := &models.RewardState{DailyStreak: 5, LastLoginDate: models.Day(day1)}
		d := decideDailyLogin(rules, s, day1.AddDate(0, 0, 2))
		if !d.ok {
			t.Fatalf("rejected: %+v", d)
		}
		if s.DailyStreak != 1 {
			t.Fatalf("streak = %d, expected reset to 1", s.DailyStreak)
		}
	})

	t.Run("streak bonus folds into day seven", func(t *testing.T) {
		s := &models.RewardState{DailyStreak: 6, LastLoginDate: models.Day(day1.AddDate(0, 0, -1))}
		d := decideDailyLogin(rules, s, day1)
		if !d.ok || s.DailyStreak != 7 {
			t.Fatalf("day 7 login: ok=%v streak=%d", d.ok, s.DailyStreak)
		}
		want := Payout{
			Coins: rules.DailyLogin.Coins + rules.StreakWeekBonus.Coins,
			XP:    rules.DailyLogin.XP + rules.StreakWeekBonus.XP,
		}
		if d.payout != want {
			t.Fatalf("payout = %+v, expected %+v", d.payout, want)
		}
	})

	t.Run("day boundary is UTC", func(t *testing.T) {
		s := &models.RewardState{}
		loc := time.FixedZone("UTC+10", 10*3600)
		// 01:00 local on June 2 is still June 1 in UTC.
		if d := decideDailyLogin(rules, s, time.Date(2025, 6, 2, 1, 0, 0, 0, loc)); !d.ok {
			t.Fatalf("first login rejected: %+v", d)
		}
		d := decideDailyLogin(rules, s, time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC))
		if d.ok || d.reason != ReasonAlreadyClaimed {
			t.Fatalf("expected already_claimed across zones, got %+v", d)
		}
	})
}

func TestDecidePollCreation(t *testing.T) {
	rules := DefaultRules()
	s := &models.RewardState{}
	for i := 0; i < rules.PollCreation.DailyCap; i++ {
		if d := decidePollCreation(rules, s); !d.ok {
			t.Fatalf("poll %d rejected: %+v", i+1, d)
		}
	}
	d := decidePollCreation(rules, s)
	if d.ok || d.reason != ReasonDailyLimit {
		t.Fatalf("expected daily_limit, got %+v", d)
	}
	if s.PollsTotal != rules.PollCreation.DailyCap {
		t.Fatalf("polls total = %d", s.PollsTotal)
	}
}

func TestDecideCommentReceivedMilestones(t *testing.T) {
	rules := DefaultRules()
	s := &models.RewardState{}
	n := rules.CommentReceived.EveryN

	for i := 1; i <= n*2; i++ {
		d := decideCommentReceived(rules, s)
		if s.CommentsTotal != i {
			t.Fatalf("comments total = %d after %d comments", s.CommentsTotal, i)
		}
		wantOK := i%n == 0
		if d.ok != wantOK {
			t.Fatalf("comment %d: ok=%v, expected %v", i, d.ok, wantOK)
		}
		if !wantOK && d.reason != ReasonNotEligible {
			t.Fatalf("comment %d: reason %s", i, d.reason)
		}
		if wantOK && d.payout != rules.CommentReceived.Payout {
			t.Fatalf("comment %d payout %+v", i, d.payout)
		}
	}
}

func TestDecideReplyMadeMilestones(t *testing.T) {
	rules := DefaultRules()
	s := &models.RewardState{RepliesTotal: 4, RepliesMade: 4}
	d := decideReplyMade(rules, s)
	if !d.ok || s.RepliesTotal != 5 {
		t.Fatalf("fifth reply: ok=%v total=%d", d.ok, s.RepliesTotal)
	}
	d = decideReplyMade(rules, s)
	if d.ok || d.reason != ReasonNotEligible {
		t.Fatalf("sixth reply: %+v", d)
	}
}

func TestDecideVideoWatched(t *testing.T) {
	rules := DefaultRules()
	s := &models.RewardState{VideosWatched: rules.VideoWatched.DailyCap - 1}
	if d := decideVideoWatched(rules, s); !d.ok {
		t.Fatalf("video under cap rejected: %+v", d)
	}
	d := decideVideoWatched(rules, s)
	if d.ok || d.reason != ReasonDailyLimit {
		t.Fatalf("expected daily_limit at cap, got %+v", d)
	}
}

func TestDecideLikesReceived(t *testing.T) {
	rules := DefaultRules()

	t.Run("single milestone", func(t *testing.T) {
		s := &models.RewardState{LikesTotal: 8}
		d := decideLikesReceived(rules, s, 12)
		if !d.ok || d.reason != ReasonLikesMilestone {
			t.Fatalf("unexpected decision %+v", d)
		}
		if s.LikesMilestonePaid != 10 || s.LikesTotal != 12 {
			t.Fatalf("state paid=%d total=%d", s.LikesMilestonePaid, s.LikesTotal)
		}
	})

	t.Run("jump pays every crossed milestone once", func(t *testing.T) {
		s := &models.RewardState{LikesTotal: 5, LikesMilestonePaid: 0}
		d := decideLikesReceived(rules, s, 120)
		if !d.ok {
			t.Fatalf("rejected: %+v", d)
		}
		want := Payout{Coins: 10 + 30 + 75, XP: 20 + 60 + 150}
		if d.payout != want {
			t.Fatalf("payout = %+v, expected %+v", d.payout, want)
		}
		if s.LikesMilestonePaid != 100 {
			t.Fatalf("paid marker = %d", s.LikesMilestonePaid)
		}
	})

	t.Run("no repeat payout", func(t *testing.T) {
		s := &models.RewardState{LikesTotal: 60, LikesMilestonePaid: 50}
		d := decideLikesReceived(rules, s, 70)
		if d.ok || d.reason != ReasonNoMilestone {
			t.Fatalf("expected no_milestone, got %+v", d)
		}
	})
}

func TestDecideBonusChest(t *testing.T) {
	rules := DefaultRules()
	s := &models.RewardState{}
	d := decideBonusChest(rules, s)
	if !d.ok || d.payout != rules.BonusChest {
		t.Fatalf("first chest: %+v", d)
	}
	d = decideBonusChest(rules, s)
	if d.ok || d.reason != ReasonAlreadyClaimed {
		t.Fatalf("second chest: %+v", d)
	}
}

func TestDecideStreakBonus(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		streak int
		ok     bool
		payout Payout
	}{
		{0, false, Payout{}},
		{3, false, Payout{}},
		{7, true, rules.StreakWeekBonus},
		{10, true, rules.StreakTenBonus},
		{14, true, rules.StreakWeekBonus},
		{30, true, rules.StreakMonthBonus},
		{70, true, rules.StreakWeekBonus},
		{90, true, rules.StreakMonthBonus},
	}
	for _, tc := range cases {
		s := &models.RewardState{DailyStreak: tc.streak}
		d := decideStreakBonus(rules, s)
		if d.ok != tc.ok {
			t.Fatalf("streak %d: ok=%v, expected %v", tc.streak, d.ok, tc.ok)
		}
		if tc.ok && d.payout != tc.payout {
			t.Fatalf("streak %d payout %+v, expected %+v", tc.streak, d.payout, tc.payout)
		}
	}

	s := &models.RewardState{DailyStreak: 7, StreakBonusClaimed: true}
	if d := decideStreakBonus(rules, s); d.ok || d.reason != ReasonAlreadyClaimed {
		t.Fatalf("claimed flag ignored: %+v", d)
	}
}

func TestRollDayHealsDayCounters(t *testing.T) {
	s := &models.RewardState{
		StatsDate:          "2025-05-31",
		PostsCreated:       4,
		MeaningfulPosts:    3,
		PollsCreated:       2,
		VideosWatched:      10,
		ChestClaimed:       true,
		StreakBonusClaimed: true,
		PostsTotal:         40,
		DailyStreak:        6,
	}
	s.RollDay("2025-06-01")
	if s.MeaningfulPosts != 0 || s.PollsCreated != 0 || s.VideosWatched != 0 || s.ChestClaimed || s.StreakBonusClaimed {
		t.Fatalf("day counters survived the roll: %+v", s)
	}
	if s.PostsTotal != 40 || s.DailyStreak != 6 {
		t.Fatal("lifetime fields must survive the roll")
	}
	before := *s
	s.RollDay("2025-06-01")
	if *s != before {
		t.Fatal("rolling onto the same day must be a no-op")
	}
}
