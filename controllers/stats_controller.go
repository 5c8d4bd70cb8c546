package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matchday-forum/matchday/models"
	"github.com/matchday-forum/matchday/utils"
)

// StatsController provides forum statistics such as counts and reward totals.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns aggregate statistics for the forum.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var userCount int64
	var postCount int64
	var commentCount int64
	var coinsIssued int64
	var xpIssued int64

	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		// Fallback to 0 instead of failing the whole endpoint
		userCount = 0
	}

	if err := s.db.Model(&models.Post{}).Count(&postCount).Error; err != nil {
		postCount = 0
	}

	if err := s.db.Model(&models.Comment{}).Count(&commentCount).Error; err != nil {
		commentCount = 0
	}

	if err := s.db.Model(&models.RewardEntry{}).
		Select("COALESCE(SUM(coins),0)").
		Scan(&coinsIssued).Error; err != nil {
		coinsIssued = 0
	}
	if err := s.db.Model(&models.RewardEntry{}).
		Select("COALESCE(SUM(xp),0)").
		Scan(&xpIssued).Error; err != nil {
		xpIssued = 0
	}

	utils.Success(ctx, gin.H{
		"user_count":    userCount,
		"post_count":    postCount,
		"comment_count": commentCount,
		"coins_issued":  coinsIssued,
		"xp_issued":     xpIssued,
	})
}

// GetPostStats returns score and comment counts for a given post id.
func (s *StatsController) GetPostStats(ctx *gin.Context) {
	id := ctx.Param("id")

	var post models.Post
	if err := s.db.Select("id", "hotness_score", "engagement_potential").First(&post, id).Error; err != nil {
		utils.Error(ctx, 404, 40420, "post not found")
		return
	}

	var commentsCount int64
	if err := s.db.Model(&models.Comment{}).Where("post_id = ?", id).Count(&commentsCount).Error; err != nil {
		commentsCount = 0
	}

	utils.Success(ctx, gin.H{
		"hotness_score":        post.HotnessScore,
		"engagement_potential": post.EngagementPotential,
		"comments_count":       commentsCount,
	})
}
