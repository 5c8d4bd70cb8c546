package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/matchday-forum/matchday/utils"
)

// SessionController handles token lifecycle for sessions issued by the
// identity provider.
type SessionController struct{}

func NewSessionController() *SessionController {
	return &SessionController{}
}

// Logout revokes the presented bearer token until its natural expiration.
func (sc *SessionController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusBadRequest, 40001, "missing bearer token")
		return
	}
	tokenStr := strings.TrimSpace(parts[1])

	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		// AuthRequired already validated the token; treat a parse failure
		// here as revoked and move on.
		utils.Success(ctx, gin.H{"revoked": true})
		return
	}

	if claims.ExpiresAt != nil {
		utils.BlacklistToken(tokenStr, claims.ExpiresAt.Time)
	}
	utils.Sugar.Infof("session revoked for user %d", claims.UserID)
	utils.Success(ctx, gin.H{"revoked": true})
}
