package slack

import (
	slackapi "github.com/slack-go/slack"

	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

// BoardAttachment formats a rendered leaderboard as a Slack attachment,
// one field per ranked entry.
func BoardAttachment(board *entity.Leaderboard) slackapi.Attachment {
	fields := make([]slackapi.AttachmentField, 0, len(board.Fields))
	for _, f := range board.Fields {
		fields = append(fields, slackapi.AttachmentField{
			Title: f.Name,
			Value: f.Value,
			Short: false,
		})
	}

	return slackapi.Attachment{
		Color:  "#FFD700",
		Title:  board.Title,
		Text:   board.Subtitle,
		Fields: fields,
		Footer: board.Footer,
	}
}
