package contract

import (
	"context"

	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

// LeaderboardService runs the aggregation pipeline and manages channel
// subscriptions for the scheduled posts.
type LeaderboardService interface {
	// BuildBoard fetches the sheet and produces the rendered leaderboard for
	// one activity key. A nil board with a nil error means there is nothing
	// to show for the current week.
	BuildBoard(ctx context.Context, activity string) (*entity.Leaderboard, entity.Stats, error)

	// Activities lists the valid activity keys in display order.
	Activities() []string

	Subscribe(slackChannelID, slackChannelName, slackTeamID string) error
	Unsubscribe(slackChannelID string) error
	IsSubscribed(slackChannelID string) (bool, error)

	// PostScheduledBoards builds and posts every activity's board to the
	// configured and subscribed channels. Failures are logged per activity
	// and per channel; it never returns an error.
	PostScheduledBoards(ctx context.Context)

	// PostReminder posts the static log-your-numbers reminder.
	PostReminder(ctx context.Context) error
}
