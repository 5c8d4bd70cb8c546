package rewards

// Payout is a coin/XP pair granted by a rule or achievement.
type Payout struct {
	Coins int `json:"coins"`
	XP    int `json:"xp"`
}

// CappedRule pays out at most DailyCap times per calendar day.
type CappedRule struct {
	Payout
	DailyCap int `json:"daily_cap"`
}

// MilestoneRule pays out only on every Nth qualifying event.
type MilestoneRule struct {
	Payout
	EveryN int `json:"every_n"`
}

// LikesMilestone pays out once when a post author's lifetime like count
// crosses Threshold.
type LikesMilestone struct {
	Threshold int `json:"threshold"`
	Payout
}

// Rules is the remote, versioned reward configuration. It is stored as a JSON
// document and cached for a few minutes; eligibility checks always consult the
// loaded rules, never hard-coded values.
type Rules struct {
	Version           int  `json:"version"`
	MinPostLength     int  `json:"min_post_length"`
	PostRequiresMedia bool `json:"post_requires_media"`

	MeaningfulPost  CappedRule    `json:"meaningful_post"`
	DailyLogin      Payout        `json:"daily_login"`
	PollCreation    CappedRule    `json:"poll_creation"`
	CommentReceived MilestoneRule `json:"comment_received"`
	ReplyMade       MilestoneRule `json:"reply_made"`
	VideoWatched    CappedRule    `json:"video_watched"`

	LikesMilestones []LikesMilestone `json:"likes_milestones"`

	BonusChest Payout `json:"bonus_chest"`

	// Flat streak bonuses paid when the streak is a multiple of 30, 7 or 10,
	// checked in that order.
	StreakMonthBonus Payout `json:"streak_month_bonus"`
	StreakWeekBonus  Payout `json:"streak_week_bonus"`
	StreakTenBonus   Payout `json:"streak_ten_bonus"`
}

// DefaultRules returns the built-in rule set used to seed the configuration
// store on first boot.
func DefaultRules() *Rules {
	return &Rules{
		Version:       1,
		MinPostLength: 50,

		MeaningfulPost:  CappedRule{Payout: Payout{Coins: 25, XP: 50}, DailyCap: 3},
		DailyLogin:      Payout{Coins: 10, XP: 20},
		PollCreation:    CappedRule{Payout: Payout{Coins: 15, XP: 30}, DailyCap: 2},
		CommentReceived: MilestoneRule{Payout: Payout{Coins: 5, XP: 15}, EveryN: 3},
		ReplyMade:       MilestoneRule{Payout: Payout{Coins: 5, XP: 10}, EveryN: 5},
		VideoWatched:    CappedRule{Payout: Payout{Coins: 2, XP: 5}, DailyCap: 10},

		LikesMilestones: []LikesMilestone{
			{Threshold: 10, Payout: Payout{Coins: 10, XP: 20}},
			{Threshold: 50, Payout: Payout{Coins: 30, XP: 60}},
			{Threshold: 100, Payout: Payout{Coins: 75, XP: 150}},
			{Threshold: 500, Payout: Payout{Coins: 200, XP: 400}},
			{Threshold: 1000, Payout: Payout{Coins: 500, XP: 1000}},
		},

		BonusChest: Payout{Coins: 20, XP: 10},

		StreakMonthBonus: Payout{Coins: 300, XP: 150},
		StreakWeekBonus:  Payout{Coins: 70, XP: 35},
		StreakTenBonus:   Payout{Coins: 100, XP: 50},
	}
}
