package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matchday-forum/matchday/rewards"
	"github.com/matchday-forum/matchday/utils"
)

// RewardController exposes the reward ledger over HTTP.
type RewardController struct {
	ledger  *rewards.Ledger
	limiter *rewards.SubmissionLimiter
}

// NewRewardController creates a new controller instance.
func NewRewardController(ledger *rewards.Ledger, limiter *rewards.SubmissionLimiter) *RewardController {
	return &RewardController{ledger: ledger, limiter: limiter}
}

// DailyLogin claims the daily login reward and advances the streak.
func (r *RewardController) DailyLogin(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	writeResult(ctx, r.ledger.RewardDailyLogin(ctx.Request.Context(), userID))
}

// grantableActions maps URL action names to ledger actions callable through
// the generic grant endpoint. Post, poll, comment, reply and likes rewards
// settle server-side on their content events, never through this endpoint.
var grantableActions = map[string]rewards.Action{
	"video":  rewards.ActionVideoWatched,
	"chest":  rewards.ActionBonusChest,
	"streak": rewards.ActionStreakBonus,
}

// Grant dispatches a reward action named in the URL.
func (r *RewardController) Grant(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	action, ok := grantableActions[ctx.Param("action")]
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, 40030, "unknown reward action")
		return
	}

	var payload rewards.GrantPayload
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
			return
		}
	}

	writeResult(ctx, r.ledger.Grant(ctx.Request.Context(), action, userID, payload))
}

// Me returns the caller's reward state, level progress and achievements.
func (r *RewardController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	state, achievements, err := r.ledger.Status(ctx.Request.Context(), userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load reward state")
		return
	}

	level := rewards.LevelOf(state.XP)
	utils.Success(ctx, gin.H{
		"state":             state,
		"level":             level,
		"xp_for_next_level": rewards.XPForNextLevel(level),
		"achievements":      achievements,
	})
}

// Limits reports the advisory submission limiter verdict for the caller.
func (r *RewardController) Limits(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	utils.Success(ctx, gin.H{
		"can_submit":         r.limiter.CanSubmit(userID),
		"seconds_until_next": r.limiter.TimeUntilNext(userID).Seconds(),
	})
}

// writeResult maps a ledger Result onto the HTTP envelope. Policy rejections
// stay 200 with success:false so clients read the reason code; only system
// errors become 5xx.
func writeResult(ctx *gin.Context, res rewards.Result) {
	if res.Reason == rewards.ReasonSystemError {
		utils.Respond(ctx, http.StatusInternalServerError, 50031, res.Message, gin.H{"result": res})
		return
	}
	utils.Success(ctx, gin.H{"result": res})
}
