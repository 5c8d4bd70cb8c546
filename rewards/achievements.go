package rewards

import "github.com/matchday-forum/matchday/models"

// AchievementDef describes a one-time unlock. The predicate runs against the
// prospective post-update state; the payout folds into the same transaction
// that triggered the unlock.
type AchievementDef struct {
	ID       string
	Name     string
	Coins    int
	XP       int
	Unlocked func(s *models.RewardState, level int) bool
}

// Catalog lists every achievement in evaluation order.
var Catalog = []AchievementDef{
	{
		ID: "first_post", Name: "Kick-off", Coins: 20, XP: 10,
		Unlocked: func(s *models.RewardState, _ int) bool { return s.PostsTotal >= 1 },
	},
	{
		ID: "posts_10", Name: "Playmaker", Coins: 75, XP: 50,
		Unlocked: func(s *models.RewardState, _ int) bool { return s.PostsTotal >= 10 },
	},
	{
		ID: "posts_50", Name: "Club Captain", Coins: 400, XP: 200,
		Unlocked: func(s *models.RewardState, _ int) bool { return s.PostsTotal >= 50 },
	},
	{
		ID: "polls_5", Name: "Crowd Pleaser", Coins: 60, XP: 40,
		Unlocked: func(s *models.RewardState, _ int) bool { return s.PollsTotal >= 5 },
	},
	{
		ID: "likes_100", Name: "Fan Favourite", Coins: 150, XP: 100,
		Unlocked: func(s *models.RewardState, _ int) bool { return s.LikesTotal >= 100 },
	},
	{
		ID: "streak_7", Name: "Full Week", Coins: 50, XP: 25,
		Unlocked: func(s *models.RewardState, _ int) bool { return s.DailyStreak >= 7 },
	},
	{
		ID: "streak_30", Name: "Season Ticket", Coins: 300, XP: 150,
		Unlocked: func(s *models.RewardState, _ int) bool { return s.DailyStreak >= 30 },
	},
	{
		ID: "level_5", Name: "Rising Star", Coins: 100, XP: 0,
		Unlocked: func(_ *models.RewardState, level int) bool { return level >= 5 },
	},
	{
		ID: "level_10", Name: "Starting Eleven", Coins: 250, XP: 0,
		Unlocked: func(_ *models.RewardState, level int) bool { return level >= 10 },
	},
	{
		ID: "level_20", Name: "Club Legend", Coins: 1000, XP: 0,
		Unlocked: func(_ *models.RewardState, level int) bool { return level >= 20 },
	},
}

// AchievementPayout returns the payout for a known achievement id.
func AchievementPayout(id string) (Payout, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return Payout{Coins: a.Coins, XP: a.XP}, true
		}
	}
	return Payout{}, false
}

// EvaluateAchievements returns the catalog entries whose condition newly holds
// for the given prospective state. Ids already present in unlocked are never
// returned again.
func EvaluateAchievements(s *models.RewardState, level int, unlocked map[string]bool) []AchievementDef {
	var newly []AchievementDef
	for _, a := range Catalog {
		if unlocked[a.ID] {
			continue
		}
		if a.Unlocked(s, level) {
			newly = append(newly, a)
		}
	}
	return newly
}
