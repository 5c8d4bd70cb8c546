package models

import "time"

// UserAchievement records an unlocked achievement. Rows are append-only; the
// composite unique index makes duplicate unlocks impossible even under
// concurrent ledger transactions.
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index:idx_user_achievement,unique;not null" json:"user_id"`
	AchievementID string    `gorm:"index:idx_user_achievement,unique;size:64;not null" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
	CreatedAt     time.Time `json:"created_at"`
}
