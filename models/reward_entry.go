package models

import "time"

// RewardEntry is the audit row written inside every successful grant
// transaction. The EntryKey is a UUID stamped by the ledger so retries can be
// traced across devices.
type RewardEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EntryKey  string    `gorm:"size:36;uniqueIndex;not null" json:"entry_key"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Action    string    `gorm:"size:32;index;not null" json:"action"`
	Coins     int       `gorm:"not null" json:"coins"`
	XP        int       `gorm:"not null" json:"xp"`
	Streak    int       `gorm:"not null;default:0" json:"streak"`
	CreatedAt time.Time `json:"created_at"`
}
