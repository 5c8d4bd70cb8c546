package models

import "time"

// RewardConfig holds a versioned reward rule document. The active row is
// addressed by name; Payload is the JSON encoding of rewards.Rules.
type RewardConfig struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Version   int       `gorm:"not null;default:1" json:"version"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}
