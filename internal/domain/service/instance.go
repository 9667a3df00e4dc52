package service

import (
	"log/slog"

	"github.com/agnikas07/HustleBot/internal/config"
	"github.com/agnikas07/HustleBot/internal/domain/contract"
)

type Instance struct {
	Leaderboard *leaderboardService
	Scheduler   *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, sheetSource contract.SheetSource, cfg *config.Config, logger *slog.Logger) *Instance {
	leaderboardService := newLeaderboard(dm, slackClient, sheetSource, cfg, logger)

	return &Instance{
		Leaderboard: leaderboardService,
		Scheduler:   newScheduler(leaderboardService, cfg, logger),
	}
}
