package rewards

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/matchday-forum/matchday/models"
	"github.com/matchday-forum/matchday/utils"
)

// Ledger is the transactional core of the reward subsystem. Every public
// operation loads the rules, evaluates eligibility and applies the full
// multi-field mutation (coins, XP, counters, achievements, audit row) inside
// one store transaction holding a row lock on the user's reward state, so
// concurrent calls from multiple devices serialize instead of interleaving.
// Operations always return a Result, never an error.
type Ledger struct {
	db    *gorm.DB
	rules RulesLoader
	now   func() time.Time
}

// RulesLoader yields the active rule document for a grant.
type RulesLoader interface {
	Load(ctx context.Context) (*Rules, error)
}

// NewLedger creates a ledger bound to the store and rule source.
func NewLedger(db *gorm.DB, rules RulesLoader) *Ledger {
	return &Ledger{db: db, rules: rules, now: time.Now}
}

// RewardMeaningfulPost grants the post reward when the post qualifies.
func (l *Ledger) RewardMeaningfulPost(ctx context.Context, userID uint, p PostPayload) Result {
	return l.grant(ctx, userID, ActionMeaningfulPost, func(rules *Rules, s *models.RewardState, _ time.Time) decision {
		return decideMeaningfulPost(rules, s, p)
	})
}

// RewardDailyLogin claims the daily login reward and advances the streak.
func (l *Ledger) RewardDailyLogin(ctx context.Context, userID uint) Result {
	return l.grant(ctx, userID, ActionDailyLogin, func(rules *Rules, s *models.RewardState, now time.Time) decision {
		return decideDailyLogin(rules, s, now)
	})
}

// RewardPollCreation grants the poll creation reward.
func (l *Ledger) RewardPollCreation(ctx context.Context, userID uint) Result {
	return l.grant(ctx, userID, ActionPollCreated, func(rules *Rules, s *models.RewardState, _ time.Time) decision {
		return decidePollCreation(rules, s)
	})
}

// RewardCommentReceived credits a received comment; only every Nth one pays.
func (l *Ledger) RewardCommentReceived(ctx context.Context, userID uint) Result {
	return l.grant(ctx, userID, ActionCommentReceived, func(rules *Rules, s *models.RewardState, _ time.Time) decision {
		return decideCommentReceived(rules, s)
	})
}

// RewardReplyMade credits a reply; only every Nth one pays.
func (l *Ledger) RewardReplyMade(ctx context.Context, userID uint) Result {
	return l.grant(ctx, userID, ActionReplyMade, func(rules *Rules, s *models.RewardState, _ time.Time) decision {
		return decideReplyMade(rules, s)
	})
}

// RewardVideoWatched grants the video reward up to the daily cap.
func (l *Ledger) RewardVideoWatched(ctx context.Context, userID uint) Result {
	return l.grant(ctx, userID, ActionVideoWatched, func(rules *Rules, s *models.RewardState, _ time.Time) decision {
		return decideVideoWatched(rules, s)
	})
}

// RewardLikesReceived pays out any likes milestones newly crossed by the
// author's lifetime like total.
func (l *Ledger) RewardLikesReceived(ctx context.Context, userID uint, totalLikes int) Result {
	return l.grant(ctx, userID, ActionLikesReceived, func(rules *Rules, s *models.RewardState, _ time.Time) decision {
		return decideLikesReceived(rules, s, totalLikes)
	})
}

// ProcessBonusChest opens the once-per-day bonus chest.
func (l *Ledger) ProcessBonusChest(ctx context.Context, userID uint) Result {
	return l.grant(ctx, userID, ActionBonusChest, func(rules *Rules, s *models.RewardState, _ time.Time) decision {
		return decideBonusChest(rules, s)
	})
}

// ProcessStreakBonus claims the flat bonus for the current streak tier.
func (l *Ledger) ProcessStreakBonus(ctx context.Context, userID uint) Result {
	return l.grant(ctx, userID, ActionStreakBonus, func(rules *Rules, s *models.RewardState, _ time.Time) decision {
		return decideStreakBonus(rules, s)
	})
}

// GrantPayload carries the optional parameters of a generic Grant call.
type GrantPayload struct {
	Post *PostPayload `json:"post,omitempty"`
}

// Grant dispatches an action by name. Unknown actions yield a user_error.
func (l *Ledger) Grant(ctx context.Context, action Action, userID uint, p GrantPayload) Result {
	switch action {
	case ActionMeaningfulPost:
		if p.Post == nil {
			return failure(ReasonUserError, "post payload required")
		}
		return l.RewardMeaningfulPost(ctx, userID, *p.Post)
	case ActionDailyLogin:
		return l.RewardDailyLogin(ctx, userID)
	case ActionPollCreated:
		return l.RewardPollCreation(ctx, userID)
	case ActionCommentReceived:
		return l.RewardCommentReceived(ctx, userID)
	case ActionReplyMade:
		return l.RewardReplyMade(ctx, userID)
	case ActionVideoWatched:
		return l.RewardVideoWatched(ctx, userID)
	case ActionLikesReceived:
		// like totals are server-owned; milestones settle on the like event
		return failure(ReasonUserError, "likes rewards settle when likes are recorded")
	case ActionBonusChest:
		return l.ProcessBonusChest(ctx, userID)
	case ActionStreakBonus:
		return l.ProcessStreakBonus(ctx, userID)
	}
	return failure(ReasonUserError, "unknown reward action")
}

// Status returns the user's current reward state (day counters healed for
// display only, not persisted) and unlocked achievement ids.
func (l *Ledger) Status(ctx context.Context, userID uint) (*models.RewardState, []string, error) {
	var s models.RewardState
	err := l.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = models.RewardState{UserID: userID}
	} else if err != nil {
		return nil, nil, err
	}
	s.RollDay(models.Day(l.now()))

	var rows []models.UserAchievement
	if err := l.db.WithContext(ctx).Where("user_id = ?", userID).Order("unlocked_at").Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.AchievementID)
	}
	return &s, ids, nil
}

// grant runs the shared operation template: load rules (fail closed), lock
// the state row, heal the day counters, decide, apply payout plus achievement
// bonuses, write the audit row and commit. Any store error normalizes to a
// system_error Result with zero payout.
func (l *Ledger) grant(ctx context.Context, userID uint, action Action, decide func(*Rules, *models.RewardState, time.Time) decision) Result {
	if userID == 0 {
		return failure(ReasonUserError, "missing user")
	}

	rules, err := l.rules.Load(ctx)
	if err != nil {
		return failure(ReasonSystemError, "rewards are temporarily unavailable, try again")
	}

	var res Result
	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := lockState(tx, userID)
		if err != nil {
			return err
		}

		now := l.now()
		s.RollDay(models.Day(now))

		d := decide(rules, s, now)
		if !d.ok {
			res = failure(d.reason, d.message)
			// counters advanced by the decide step still persist
			return tx.Save(s).Error
		}

		prevLevel := LevelOf(s.XP)
		s.Coins += d.payout.Coins
		s.XP += d.payout.XP

		unlocked, err := unlockedSet(tx, userID)
		if err != nil {
			return err
		}

		totalCoins, totalXP := d.payout.Coins, d.payout.XP
		var unlockedIDs []string
		for _, a := range EvaluateAchievements(s, LevelOf(s.XP), unlocked) {
			s.Coins += a.Coins
			s.XP += a.XP
			totalCoins += a.Coins
			totalXP += a.XP
			unlockedIDs = append(unlockedIDs, a.ID)
			if err := tx.Create(&models.UserAchievement{
				UserID:        userID,
				AchievementID: a.ID,
				UnlockedAt:    now,
			}).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&models.RewardEntry{
			EntryKey: uuid.NewString(),
			UserID:   userID,
			Action:   string(action),
			Coins:    totalCoins,
			XP:       totalXP,
			Streak:   s.DailyStreak,
		}).Error; err != nil {
			return err
		}

		if err := tx.Save(s).Error; err != nil {
			return err
		}

		res = Result{
			Success:      true,
			CoinsEarned:  totalCoins,
			XPEarned:     totalXP,
			Achievements: unlockedIDs,
			Message:      d.message,
			Reason:       d.reason,
		}
		if lvl := LevelOf(s.XP); lvl > prevLevel {
			res.NewLevel = &lvl
		}
		return nil
	})
	if err != nil {
		utils.Sugar.Errorw("reward transaction failed", "user", userID, "action", action, "err", err)
		return failure(ReasonSystemError, "reward could not be processed, no funds were moved")
	}
	return res
}

// lockState loads the user's reward state under a row lock, materializing a
// zeroed record on first use.
func lockState(tx *gorm.DB, userID uint) (*models.RewardState, error) {
	var s models.RewardState
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	s = models.RewardState{UserID: userID}
	if err := tx.Create(&s).Error; err != nil {
		// lost a concurrent create; take the lock on the winner's row
		var existing models.RewardState
		if err2 := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&existing).Error; err2 != nil {
			return nil, err
		}
		return &existing, nil
	}
	return &s, nil
}

func unlockedSet(tx *gorm.DB, userID uint) (map[string]bool, error) {
	var rows []models.UserAchievement
	if err := tx.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(rows))
	for _, r := range rows {
		set[r.AchievementID] = true
	}
	return set, nil
}
