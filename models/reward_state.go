package models

import "time"

// DayFormat is the canonical calendar-date layout for streak and daily-quota
// bookkeeping. All day boundaries are evaluated in UTC so that multi-device
// access from different timezones agrees on "today".
const DayFormat = "2006-01-02"

// Day formats t as a canonical UTC calendar date.
func Day(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// RewardState is the per-user record owned by the reward subsystem. It is
// mutated only inside ledger transactions under a row lock; the level is never
// stored because it is a pure function of XP.
type RewardState struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	UserID        uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Coins         int    `gorm:"not null;default:0" json:"coins"`
	XP            int    `gorm:"not null;default:0" json:"xp"`
	DailyStreak   int    `gorm:"not null;default:0" json:"daily_streak"`
	LastLoginDate string `gorm:"size:10" json:"last_login_date"`

	// Day-scoped counters, valid only while StatsDate equals the current UTC
	// date. A stale date is healed on the next transactional write.
	StatsDate          string `gorm:"size:10" json:"stats_date"`
	PostsCreated       int    `gorm:"not null;default:0" json:"posts_created"`
	MeaningfulPosts    int    `gorm:"not null;default:0" json:"meaningful_posts"`
	CommentsReceived   int    `gorm:"not null;default:0" json:"comments_received"`
	RepliesMade        int    `gorm:"not null;default:0" json:"replies_made"`
	VideosWatched      int    `gorm:"not null;default:0" json:"videos_watched"`
	PollsCreated       int    `gorm:"not null;default:0" json:"polls_created"`
	LikesReceived      int    `gorm:"not null;default:0" json:"likes_received"`
	ChestClaimed       bool   `gorm:"not null;default:false" json:"chest_claimed"`
	StreakBonusClaimed bool   `gorm:"not null;default:false" json:"streak_bonus_claimed"`

	// Lifetime activity totals feeding milestone and achievement checks.
	PostsTotal         int `gorm:"not null;default:0" json:"posts_total"`
	PollsTotal         int `gorm:"not null;default:0" json:"polls_total"`
	CommentsTotal      int `gorm:"not null;default:0" json:"comments_total"`
	RepliesTotal       int `gorm:"not null;default:0" json:"replies_total"`
	LikesTotal         int `gorm:"not null;default:0" json:"likes_total"`
	LikesMilestonePaid int `gorm:"not null;default:0" json:"likes_milestone_paid"`

	// Moderation penalties. Users with active strikes earn nothing.
	Strikes      int        `gorm:"not null;default:0" json:"strikes"`
	LastStrikeAt *time.Time `json:"last_strike_at"`
	Restrictions string     `gorm:"type:text" json:"restrictions"` // JSON array of tags

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RollDay resets the day-scoped counters when the stored date differs from
// today. Must be called inside the same transaction as any counter write so
// stale records self-heal exactly once.
func (s *RewardState) RollDay(today string) {
	if s.StatsDate == today {
		return
	}
	s.StatsDate = today
	s.PostsCreated = 0
	s.MeaningfulPosts = 0
	s.CommentsReceived = 0
	s.RepliesMade = 0
	s.VideosWatched = 0
	s.PollsCreated = 0
	s.LikesReceived = 0
	s.ChestClaimed = false
	s.StreakBonusClaimed = false
}
