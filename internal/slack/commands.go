package slack

import (
	"strings"
)

type CommandType string

const (
	CmdBoard       CommandType = "board"
	CmdActivities  CommandType = "activities"
	CmdSubscribe   CommandType = "subscribe"
	CmdUnsubscribe CommandType = "unsubscribe"
	CmdStatus      CommandType = "status"
	CmdHelp        CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand interprets the slash command text. Any word that is not a
// known subcommand is treated as an activity key, so `/hustle dials` and
// `/hustle board dials` both work; invalid activities are rejected later
// against the registry.
func ParseCommand(text string) *Command {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp, Raw: text}
	}

	cmd := &Command{Raw: text}

	switch parts[0] {
	case "board", "leaderboard":
		cmd.Type = CmdBoard
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "activities", "list":
		cmd.Type = CmdActivities
	case "subscribe", "sub":
		cmd.Type = CmdSubscribe
	case "unsubscribe", "unsub":
		cmd.Type = CmdUnsubscribe
	case "status":
		cmd.Type = CmdStatus
	case "help":
		cmd.Type = CmdHelp
	default:
		cmd.Type = CmdBoard
		cmd.Args = parts
	}

	return cmd
}

func GetHelpText() string {
	return `*Available commands:*

*Leaderboards:*
• ` + "`/hustle board <activity>`" + ` - Show this week's leaderboard (e.g. ` + "`/hustle board dials`" + `)
• ` + "`/hustle activities`" + ` - List the valid activity types

*Weekly posts:*
• ` + "`/hustle subscribe`" + ` - Post the weekly leaderboards in this channel
• ` + "`/hustle unsubscribe`" + ` - Stop posting them here
• ` + "`/hustle status`" + ` - Show this channel's subscription state`
}
