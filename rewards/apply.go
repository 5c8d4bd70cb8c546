package rewards

import (
	"fmt"
	"math"
	"time"

	"github.com/matchday-forum/matchday/models"
	"github.com/matchday-forum/matchday/scoring"
)

// decision is the outcome of an eligibility check. Decide functions may
// mutate counters on the state even when ok is false (milestone counters keep
// advancing); coin/XP application happens later, inside the same transaction.
type decision struct {
	ok      bool
	reason  Reason
	message string
	payout  Payout
}

func reject(reason Reason, message string) decision {
	return decision{reason: reason, message: message}
}

// PostPayload carries the post attributes the ledger needs for eligibility.
type PostPayload struct {
	ContentLength int    `json:"content_length"`
	MediaCount    int    `json:"media_count"`
	Category      string `json:"category"`
}

func decideMeaningfulPost(rules *Rules, s *models.RewardState, p PostPayload) decision {
	// Every accepted post counts, rewarded or not.
	s.PostsCreated++
	s.PostsTotal++

	if s.Strikes > 0 {
		return reject(ReasonPenalties, "rewards are suspended while penalties are active")
	}
	if p.ContentLength < rules.MinPostLength {
		return reject(ReasonContentLength,
			fmt.Sprintf("posts need at least %d characters to earn rewards", rules.MinPostLength))
	}
	if rules.PostRequiresMedia && p.MediaCount == 0 {
		return reject(ReasonMediaRequired, "attach an image or video to earn the post reward")
	}
	if s.MeaningfulPosts >= rules.MeaningfulPost.DailyCap {
		return reject(ReasonDailyLimit, "daily post reward limit reached, come back tomorrow")
	}

	s.MeaningfulPosts++
	mult := scoring.CategoryMultiplier(p.Category)
	return decision{
		ok:      true,
		reason:  ReasonPosted,
		message: "post reward earned",
		payout: Payout{
			Coins: scale(rules.MeaningfulPost.Coins, mult),
			XP:    scale(rules.MeaningfulPost.XP, mult),
		},
	}
}

func decideDailyLogin(rules *Rules, s *models.RewardState, now time.Time) decision {
	today := models.Day(now)
	if s.LastLoginDate == today {
		return reject(ReasonAlreadyClaimed, "daily login already claimed today")
	}

	streak := 1
	if s.LastLoginDate == models.Day(now.AddDate(0, 0, -1)) {
		streak = s.DailyStreak + 1
	}
	s.DailyStreak = streak
	s.LastLoginDate = today

	payout := rules.DailyLogin
	if bonus, ok := streakBonus(rules, streak); ok {
		payout.Coins += bonus.Coins
		payout.XP += bonus.XP
	}

	return decision{
		ok:      true,
		reason:  ReasonLogin,
		message: fmt.Sprintf("day %d login streak", streak),
		payout:  payout,
	}
}

func decidePollCreation(rules *Rules, s *models.RewardState) decision {
	if s.Strikes > 0 {
		return reject(ReasonPenalties, "rewards are suspended while penalties are active")
	}
	if s.PollsCreated >= rules.PollCreation.DailyCap {
		return reject(ReasonDailyLimit, "daily poll reward limit reached")
	}

	s.PollsCreated++
	s.PollsTotal++
	return decision{ok: true, reason: ReasonPoll, message: "poll reward earned", payout: rules.PollCreation.Payout}
}

func decideCommentReceived(rules *Rules, s *models.RewardState) decision {
	s.CommentsReceived++
	s.CommentsTotal++

	n := rules.CommentReceived.EveryN
	if n <= 0 {
		n = 1
	}
	if s.CommentsTotal%n != 0 {
		remaining := n - s.CommentsTotal%n
		return reject(ReasonNotEligible, fmt.Sprintf("%d more comments until the next reward", remaining))
	}
	return decision{ok: true, reason: ReasonCommentMilestone,
		message: fmt.Sprintf("comment milestone reached (%d)", s.CommentsTotal), payout: rules.CommentReceived.Payout}
}

func decideReplyMade(rules *Rules, s *models.RewardState) decision {
	s.RepliesMade++
	s.RepliesTotal++

	n := rules.ReplyMade.EveryN
	if n <= 0 {
		n = 1
	}
	if s.RepliesTotal%n != 0 {
		remaining := n - s.RepliesTotal%n
		return reject(ReasonNotEligible, fmt.Sprintf("%d more replies until the next reward", remaining))
	}
	return decision{ok: true, reason: ReasonReplyMilestone,
		message: fmt.Sprintf("reply milestone reached (%d)", s.RepliesTotal), payout: rules.ReplyMade.Payout}
}

func decideVideoWatched(rules *Rules, s *models.RewardState) decision {
	if s.VideosWatched >= rules.VideoWatched.DailyCap {
		return reject(ReasonDailyLimit, "daily video reward limit reached")
	}
	s.VideosWatched++
	return decision{ok: true, reason: ReasonVideo, message: "video reward earned", payout: rules.VideoWatched.Payout}
}

func decideLikesReceived(rules *Rules, s *models.RewardState, totalLikes int) decision {
	if totalLikes > s.LikesTotal {
		s.LikesReceived += totalLikes - s.LikesTotal
		s.LikesTotal = totalLikes
	}

	var payout Payout
	highest := s.LikesMilestonePaid
	for _, m := range rules.LikesMilestones {
		if m.Threshold > s.LikesMilestonePaid && m.Threshold <= totalLikes {
			payout.Coins += m.Coins
			payout.XP += m.XP
			if m.Threshold > highest {
				highest = m.Threshold
			}
		}
	}
	if highest == s.LikesMilestonePaid {
		return reject(ReasonNoMilestone, "no new likes milestone reached")
	}

	s.LikesMilestonePaid = highest
	return decision{ok: true, reason: ReasonLikesMilestone,
		message: fmt.Sprintf("likes milestone reached (%d)", highest), payout: payout}
}

func decideBonusChest(rules *Rules, s *models.RewardState) decision {
	if s.ChestClaimed {
		return reject(ReasonAlreadyClaimed, "bonus chest already opened today")
	}
	s.ChestClaimed = true
	return decision{ok: true, reason: ReasonChest, message: "bonus chest opened", payout: rules.BonusChest}
}

func decideStreakBonus(rules *Rules, s *models.RewardState) decision {
	if s.StreakBonusClaimed {
		return reject(ReasonAlreadyClaimed, "streak bonus already claimed today")
	}
	bonus, ok := streakBonus(rules, s.DailyStreak)
	if !ok {
		return reject(ReasonNoMilestone, "current streak carries no bonus")
	}
	s.StreakBonusClaimed = true
	return decision{ok: true, reason: ReasonStreakBonus,
		message: fmt.Sprintf("streak bonus for day %d", s.DailyStreak), payout: bonus}
}

// streakBonus returns the flat bonus for a streak length. Multiples of 30 win
// over multiples of 7, which win over multiples of 10.
func streakBonus(rules *Rules, streak int) (Payout, bool) {
	switch {
	case streak <= 0:
		return Payout{}, false
	case streak%30 == 0:
		return rules.StreakMonthBonus, true
	case streak%7 == 0:
		return rules.StreakWeekBonus, true
	case streak%10 == 0:
		return rules.StreakTenBonus, true
	}
	return Payout{}, false
}

func scale(v int, mult float64) int {
	return int(math.Round(float64(v) * mult))
}
