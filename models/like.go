package models

import "time"

// Like records one user liking one post. The composite unique index makes the
// row the server-side source of truth for like totals; duplicate likes are
// impossible at the schema level.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index:idx_post_like,unique;not null" json:"post_id"`
	UserID    uint      `gorm:"index:idx_post_like,unique;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
