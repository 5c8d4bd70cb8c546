package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/matchday-forum/matchday/config"
	"github.com/matchday-forum/matchday/middleware"
	"github.com/matchday-forum/matchday/rewards"
	"github.com/matchday-forum/matchday/utils"
)

// ConfigController manages the versioned reward rule document.
type ConfigController struct {
	rules *rewards.RulesSource
}

func NewConfigController(rules *rewards.RulesSource) *ConfigController {
	return &ConfigController{rules: rules}
}

// GetRules returns the active rule document. Admin only.
func (c *ConfigController) GetRules(ctx *gin.Context) {
	if !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40310, "admin access required")
		return
	}

	rules, err := c.rules.Load(ctx.Request.Context())
	if err != nil {
		utils.Error(ctx, http.StatusServiceUnavailable, 50340, "reward rules unavailable")
		return
	}
	utils.Success(ctx, gin.H{"rules": rules})
}

// UpdateRules replaces the rule document and invalidates the cache. Admin only.
func (c *ConfigController) UpdateRules(ctx *gin.Context) {
	if !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40310, "admin access required")
		return
	}

	var rules rewards.Rules
	if err := ctx.ShouldBindJSON(&rules); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid rules payload")
		return
	}
	if rules.Version <= 0 || rules.MinPostLength < 0 {
		utils.Error(ctx, http.StatusBadRequest, 40041, "rules payload failed sanity checks")
		return
	}

	if err := c.rules.Update(ctx.Request.Context(), &rules); err != nil {
		utils.Sugar.Errorw("rules update failed", "err", err)
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to store rules")
		return
	}

	utils.Sugar.Infow("reward rules updated", "version", rules.Version)
	utils.Success(ctx, gin.H{"version": rules.Version})
}

func isAdmin(ctx *gin.Context) bool {
	unameVal, exists := ctx.Get(middleware.ContextUsernameKey)
	if !exists {
		return false
	}
	uname, _ := unameVal.(string)
	if uname == "" {
		return false
	}
	cfg := config.Get()
	for _, u := range cfg.AdminUsernames {
		if strings.EqualFold(strings.TrimSpace(u), uname) {
			return true
		}
	}
	return false
}
