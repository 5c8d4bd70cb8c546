package main

import (
	"time"

	"github.com/matchday-forum/matchday/config"
	"github.com/matchday-forum/matchday/models"
	"github.com/matchday-forum/matchday/rewards"
	"github.com/matchday-forum/matchday/routes"
	"github.com/matchday-forum/matchday/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.RewardState{},
		&models.UserAchievement{},
		&models.RewardEntry{},
		&models.RewardConfig{},
	)

	rulesSource := rewards.NewRulesSource(db)
	if err := rulesSource.EnsureDefault(); err != nil {
		utils.Sugar.Fatalf("failed to seed reward rules: %v", err)
	}

	ledger := rewards.NewLedger(db, rulesSource)
	limiter := rewards.NewSubmissionLimiter(
		cfg.SubmitHourlyCap,
		cfg.SubmitDailyCap,
		time.Duration(cfg.SubmitCooldownSec)*time.Second,
	)

	r := routes.SetupRouter(db, ledger, rulesSource, limiter)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
