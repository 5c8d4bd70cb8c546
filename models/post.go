package models

import "time"

// Post categories form a fixed set; submissions outside it are rejected.
const (
	CategoryGeneral      = "general"
	CategoryUltimateTeam = "ultimate_team"
	CategoryCareerMode   = "career_mode"
	CategoryProClubs     = "pro_clubs"
	CategoryTrading      = "trading"
	CategoryEsports      = "esports"
	CategoryNews         = "news"
)

// ValidCategories lists every accepted post category.
var ValidCategories = []string{
	CategoryGeneral,
	CategoryUltimateTeam,
	CategoryCareerMode,
	CategoryProClubs,
	CategoryTrading,
	CategoryEsports,
	CategoryNews,
}

// IsValidCategory reports whether c belongs to the fixed category set.
func IsValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Post represents a forum post created by a user. Media and the optional poll
// are stored as JSON columns; hotness and engagement scores are computed once
// at submission time and stored with the post.
type Post struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"index;not null" json:"user_id"`
	Title               string    `gorm:"size:255;not null" json:"title"`
	Content             string    `gorm:"type:text;not null" json:"content"`
	Category            string    `gorm:"size:32;default:'general'" json:"category"`
	Media               string    `gorm:"type:text" json:"media"` // JSON array of media URLs
	GifURL              string    `gorm:"size:512" json:"gif_url"`
	Poll                string    `gorm:"type:text" json:"poll"` // JSON-encoded PollSpec, empty when absent
	HotnessScore        int       `gorm:"not null;default:0" json:"hotness_score"`
	EngagementPotential int       `gorm:"not null;default:0" json:"engagement_potential"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	User                User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Comments            []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments"`
}
