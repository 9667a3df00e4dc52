package entity

import "time"

// Channel is a Slack channel subscribed to the scheduled leaderboard posts.
type Channel struct {
	ID               int64
	SlackChannelID   string
	SlackChannelName string
	SlackTeamID      string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
