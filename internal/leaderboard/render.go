package leaderboard

import (
	"fmt"
	"time"

	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

// Render turns a ranked list into the display structure the Slack layer
// posts. The second return value is false when there is nothing to show;
// the caller decides whether that becomes a "no data" reply (interactive)
// or a silently suppressed post (scheduled).
func Render(entries []entity.RankedEntry, window entity.WeekWindow, activityLabel, ctaLink string, generatedAt time.Time) (*entity.Leaderboard, bool) {
	if len(entries) == 0 {
		return nil, false
	}

	subtitle := fmt.Sprintf("%s from %s - %s",
		activityLabel,
		window.Start.Format("Jan 02"),
		window.End.Format("Jan 02"),
	)
	if ctaLink != "" {
		subtitle += "\n" + ctaLink
	}

	board := &entity.Leaderboard{
		Title:    fmt.Sprintf("🏆 Weekly Leaderboard: %s 🏆", activityLabel),
		Subtitle: subtitle,
		Footer:   fmt.Sprintf("Leaderboard generated at: %s", generatedAt.Format("2006-01-02 15:04:05")),
	}

	for _, e := range entries {
		board.Fields = append(board.Fields, entity.LeaderboardField{
			Name:  fmt.Sprintf("%s %s", e.Decoration, e.Person),
			Value: fmt.Sprintf("%s completed: *%d*", activityLabel, e.Score),
		})
	}

	return board, true
}
