package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matchday-forum/matchday/middleware"
	"github.com/matchday-forum/matchday/models"
	"github.com/matchday-forum/matchday/rewards"
	"github.com/matchday-forum/matchday/scoring"
	"github.com/matchday-forum/matchday/utils"
)

// PostController manages post submission, scoring and listing.
type PostController struct {
	db      *gorm.DB
	ledger  *rewards.Ledger
	limiter *rewards.SubmissionLimiter
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB, ledger *rewards.Ledger, limiter *rewards.SubmissionLimiter) *PostController {
	return &PostController{db: db, ledger: ledger, limiter: limiter}
}

type postRequest struct {
	Title    string           `json:"title" binding:"required,min=1"`
	Content  string           `json:"content" binding:"required"`
	Category string           `json:"category"`
	Media    []string         `json:"media"`
	GifURL   string           `json:"gif_url"`
	Poll     *models.PollSpec `json:"poll"`
}

func (p *PostController) buildSubmission(req postRequest, userID uint) scoring.Submission {
	category := req.Category
	if category == "" {
		category = models.CategoryGeneral
	}
	return scoring.Submission{
		Title:       utils.Sanitize(strings.TrimSpace(req.Title)),
		Content:     utils.Sanitize(req.Content),
		Category:    category,
		Media:       utils.UniqueStrings(req.Media),
		GifURL:      strings.TrimSpace(req.GifURL),
		Poll:        req.Poll,
		UserID:      userID,
		RateLimited: !p.limiter.CanSubmit(userID),
	}
}

// CreatePost validates, scores and persists a new post, then settles the
// post reward through the ledger.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req postRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	sub := p.buildSubmission(req, userID)
	verdict := scoring.Validate(sub)
	if !verdict.IsValid {
		if sub.RateLimited {
			utils.Respond(ctx, http.StatusTooManyRequests, 42902, "submission rate limit reached", gin.H{
				"validation":  verdict,
				"retry_after": p.limiter.TimeUntilNext(userID).Seconds(),
			})
			return
		}
		utils.Respond(ctx, http.StatusBadRequest, 40021, "submission rejected", gin.H{"validation": verdict})
		return
	}

	hotness := scoring.Score(sub.Content, sub.Media, sub.GifURL, sub.Poll, sub.Category)
	engagement := scoring.EngagementPotential(sub.Content, sub.Media, sub.GifURL, sub.Poll, sub.Category)

	post := models.Post{
		UserID:              userID,
		Title:               sub.Title,
		Content:             sub.Content,
		Category:            sub.Category,
		GifURL:              sub.GifURL,
		HotnessScore:        hotness,
		EngagementPotential: engagement,
	}
	if len(sub.Media) > 0 {
		b, err := json.Marshal(sub.Media)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40023, "invalid media list")
			return
		}
		post.Media = string(b)
	}
	if sub.Poll != nil {
		normalized := *sub.Poll
		normalized.Options = sub.Poll.NormalizedOptions()
		b, err := json.Marshal(normalized)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40024, "invalid poll")
			return
		}
		post.Poll = string(b)
	}

	if err := p.db.Create(&post).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to create post")
		return
	}

	// submission confirmed; only now does it count against the window
	p.limiter.Record(userID)

	reward := p.ledger.RewardMeaningfulPost(ctx.Request.Context(), userID, rewards.PostPayload{
		ContentLength: len([]rune(sub.Content)),
		MediaCount:    len(sub.Media),
		Category:      sub.Category,
	})

	var pollReward *rewards.Result
	if sub.Poll != nil {
		r := p.ledger.RewardPollCreation(ctx.Request.Context(), userID)
		pollReward = &r
	}

	utils.InvalidateByPrefix("cache:posts:list:")
	utils.InvalidateByPrefix("cache:user:" + strconv.Itoa(int(userID)) + ":posts:")

	utils.Success(ctx, gin.H{
		"post":        post,
		"validation":  verdict,
		"reward":      reward,
		"poll_reward": pollReward,
	})
}

// PreviewPost validates and scores a candidate post without persisting it.
func (p *PostController) PreviewPost(ctx *gin.Context) {
	var req postRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	sub := p.buildSubmission(req, userID)
	verdict := scoring.Validate(sub)

	utils.Success(ctx, gin.H{
		"validation":           verdict,
		"stats":                scoring.Analyze(sub.Content),
		"hotness_score":        scoring.Score(sub.Content, sub.Media, sub.GifURL, sub.Poll, sub.Category),
		"engagement_potential": scoring.EngagementPotential(sub.Content, sub.Media, sub.GifURL, sub.Poll, sub.Category),
	})
}

// ListPosts returns paginated posts including author information.
func (p *PostController) ListPosts(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))
	search := strings.TrimSpace(ctx.Query("search"))
	category := strings.TrimSpace(ctx.Query("category"))

	// Cache homepage/category lists when no search term to avoid cache key explosion
	if search == "" {
		cacheKey := fmt.Sprintf("cache:posts:list:cat=%s:page=%d:size=%d", category, page, pageSize)
		if b, ok := utils.CacheGetBytes(cacheKey); ok {
			ctx.Data(200, "application/json", b)
			return
		}
	}

	var posts []models.Post
	var total int64

	query := p.db.Preload("User").Order("created_at DESC")
	if search != "" {
		query = query.Where("title LIKE ? OR content LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Model(&models.Post{}).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to count posts")
		return
	}

	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Find(&posts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to list posts")
		return
	}

	payload := gin.H{
		"items": posts,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	}
	if search == "" {
		cacheKey := fmt.Sprintf("cache:posts:list:cat=%s:page=%d:size=%d", category, page, pageSize)
		wrapper := struct {
			Code    int         `json:"code"`
			Message string      `json:"message"`
			Data    interface{} `json:"data"`
		}{Code: 0, Message: "success", Data: payload}
		utils.CacheSetJSON(cacheKey, wrapper, time.Hour)
	}
	utils.Success(ctx, payload)
}

// GetPost returns a single post with comments.
func (p *PostController) GetPost(ctx *gin.Context) {
	postID := ctx.Param("id")

	var post models.Post
	if err := p.db.Preload("User").Preload("Comments.User").First(&post, postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to load post")
		return
	}

	utils.Success(ctx, gin.H{"post": post})
}

// CreateComment adds a comment to a post and settles the reply reward for the
// commenter plus the comment-received reward for the post author.
func (p *PostController) CreateComment(ctx *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40025, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40026, "comment cannot be empty")
		return
	}

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || postID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40027, "invalid post id")
		return
	}

	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to load post")
		return
	}

	comment := models.Comment{
		PostID:  uint(postID),
		UserID:  userID,
		Content: content,
	}
	if err := p.db.Create(&comment).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50024, "failed to create comment")
		return
	}

	replyReward := p.ledger.RewardReplyMade(ctx.Request.Context(), userID)

	// self-replies never feed the author's comment milestone
	var commentReward *rewards.Result
	if post.UserID != userID {
		r := p.ledger.RewardCommentReceived(ctx.Request.Context(), post.UserID)
		commentReward = &r
	}

	utils.Success(ctx, gin.H{
		"comment":        comment,
		"reply_reward":   replyReward,
		"comment_reward": commentReward,
	})
}

// LikePost records a like on a post and settles any likes milestone for the
// post author. The like row is the authoritative total; milestone payouts are
// derived from it, never from a client-supplied count.
func (p *PostController) LikePost(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || postID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40027, "invalid post id")
		return
	}

	var post models.Post
	if err := p.db.First(&post, postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to load post")
		return
	}
	if post.UserID == userID {
		utils.Error(ctx, http.StatusBadRequest, 40028, "cannot like your own post")
		return
	}

	like := models.Like{PostID: uint(postID), UserID: userID}
	res := p.db.Where("post_id = ? AND user_id = ?", postID, userID).FirstOrCreate(&like)
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50025, "failed to record like")
		return
	}
	if res.RowsAffected == 0 {
		// repeat like is a no-op, never a second milestone credit
		utils.Success(ctx, gin.H{"liked": true, "reward": nil})
		return
	}

	var totalLikes int64
	if err := p.db.Model(&models.Like{}).
		Joins("JOIN posts ON posts.id = likes.post_id").
		Where("posts.user_id = ?", post.UserID).
		Count(&totalLikes).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50026, "failed to count likes")
		return
	}

	reward := p.ledger.RewardLikesReceived(ctx.Request.Context(), post.UserID, int(totalLikes))

	utils.Success(ctx, gin.H{
		"liked":       true,
		"total_likes": totalLikes,
		"reward":      reward,
	})
}

func parsePagination(pageStr, sizeStr string) (int, int) {
	page := 1
	pageSize := 10
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 100 {
		pageSize = s
	}
	return page, pageSize
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}
