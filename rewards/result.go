package rewards

// Action identifies a ledger operation.
type Action string

const (
	ActionMeaningfulPost  Action = "meaningful_post"
	ActionDailyLogin      Action = "daily_login"
	ActionPollCreated     Action = "poll_created"
	ActionCommentReceived Action = "comment_received"
	ActionReplyMade       Action = "reply_made"
	ActionVideoWatched    Action = "video_watched"
	ActionLikesReceived   Action = "likes_received"
	ActionBonusChest      Action = "bonus_chest"
	ActionStreakBonus     Action = "streak_bonus"
)

// Reason is the machine-readable outcome code carried by every Result.
type Reason string

const (
	ReasonPosted           Reason = "posted"
	ReasonLogin            Reason = "login"
	ReasonPoll             Reason = "poll"
	ReasonCommentMilestone Reason = "comment_milestone"
	ReasonReplyMilestone   Reason = "reply_milestone"
	ReasonVideo            Reason = "video"
	ReasonLikesMilestone   Reason = "likes_milestone"
	ReasonChest            Reason = "chest"
	ReasonStreakBonus      Reason = "streak_bonus"

	ReasonDailyLimit     Reason = "daily_limit"
	ReasonContentLength  Reason = "content_length"
	ReasonMediaRequired  Reason = "media_required"
	ReasonPenalties      Reason = "penalties"
	ReasonNotEligible    Reason = "not_eligible"
	ReasonAlreadyClaimed Reason = "already_claimed"
	ReasonNoMilestone    Reason = "no_milestone"
	ReasonUserError      Reason = "user_error"
	ReasonSystemError    Reason = "system_error"
)

// Result is the outcome of every ledger operation. Operations never return a
// raw error to callers; failures are normalized into a Result with a reason
// code and zero payout.
type Result struct {
	Success      bool     `json:"success"`
	CoinsEarned  int      `json:"coins_earned"`
	XPEarned     int      `json:"xp_earned"`
	NewLevel     *int     `json:"new_level,omitempty"`
	Achievements []string `json:"achievements_unlocked,omitempty"`
	Message      string   `json:"message"`
	Reason       Reason   `json:"reason"`
}

func failure(reason Reason, message string) Result {
	return Result{Message: message, Reason: reason}
}
