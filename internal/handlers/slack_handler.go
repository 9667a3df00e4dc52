package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/slack-go/slack"

	"github.com/agnikas07/HustleBot/internal/domain"
	"github.com/agnikas07/HustleBot/internal/domain/contract"
	slackcmd "github.com/agnikas07/HustleBot/internal/slack"
)

type SlackHandler struct {
	leaderboardService contract.LeaderboardService
	signingSecret      string
	logger             *slog.Logger
}

func New(leaderboardService contract.LeaderboardService, signingSecret string, logger *slog.Logger) *SlackHandler {
	return &SlackHandler{
		leaderboardService: leaderboardService,
		signingSecret:      signingSecret,
		logger:             logger,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd := slackcmd.ParseCommand(s.Text)

	// Every invocation gets exactly one terminal response.
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdBoard:
		return h.handleBoard(ctx, cmd)
	case slackcmd.CmdActivities:
		return h.handleActivities()
	case slackcmd.CmdSubscribe:
		return h.handleSubscribe(slashCmd)
	case slackcmd.CmdUnsubscribe:
		return h.handleUnsubscribe(slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleBoard(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse(fmt.Sprintf("Pick an activity: `/hustle board dials`. Valid activities: %s", h.activityList()))
	}

	activity := strings.ToLower(cmd.Args[0])

	board, _, err := h.leaderboardService.BuildBoard(ctx, activity)
	if errors.Is(err, domain.ErrUnknownActivity) {
		return h.createErrorResponse(fmt.Sprintf("Invalid activity type '%s'. Please choose from: %s", activity, h.activityList()))
	}
	if err != nil {
		h.logger.Error("board command failed",
			slog.String("activity", activity),
			slog.Any("err", err),
		)
		return h.createErrorResponse("Error accessing the tracking sheet. Please try again later.")
	}

	if board == nil {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No data found for this week.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Attachments:  []slack.Attachment{slackcmd.BoardAttachment(board)},
	}
}

func (h *SlackHandler) handleActivities() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("*Valid activities:* %s", h.activityList()),
	}
}

func (h *SlackHandler) handleSubscribe(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.leaderboardService.Subscribe(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID); err != nil {
		h.logger.Error("subscribe failed", slog.String("channel", slashCmd.ChannelID), slog.Any("err", err))
		return h.createErrorResponse("Error subscribing this channel")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ This channel will now receive the weekly leaderboards!",
	}
}

func (h *SlackHandler) handleUnsubscribe(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.leaderboardService.Unsubscribe(slashCmd.ChannelID); err != nil {
		h.logger.Error("unsubscribe failed", slog.String("channel", slashCmd.ChannelID), slog.Any("err", err))
		return h.createErrorResponse("Error unsubscribing this channel")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ This channel will no longer receive the weekly leaderboards.",
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	subscribed, err := h.leaderboardService.IsSubscribed(slashCmd.ChannelID)
	if err != nil {
		h.logger.Error("status check failed", slog.String("channel", slashCmd.ChannelID), slog.Any("err", err))
		return h.createErrorResponse("Error checking subscription status")
	}

	text := "This channel is *not subscribed* to the weekly leaderboards. Use `/hustle subscribe` to opt in."
	if subscribed {
		text = "This channel is *subscribed* to the weekly leaderboards."
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) activityList() string {
	return strings.Join(h.leaderboardService.Activities(), ", ")
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}
