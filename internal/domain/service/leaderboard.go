package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	slackapi "github.com/slack-go/slack"

	"github.com/agnikas07/HustleBot/internal/config"
	"github.com/agnikas07/HustleBot/internal/domain"
	"github.com/agnikas07/HustleBot/internal/domain/contract"
	"github.com/agnikas07/HustleBot/internal/domain/entity"
	"github.com/agnikas07/HustleBot/internal/leaderboard"
	slackfmt "github.com/agnikas07/HustleBot/internal/slack"
)

type leaderboardService struct {
	dm       contract.DataManager
	slack    contract.SlackClient
	sheets   contract.SheetSource
	registry *leaderboard.Registry
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time
}

func newLeaderboard(dm contract.DataManager, slackClient contract.SlackClient, sheetSource contract.SheetSource, cfg *config.Config, logger *slog.Logger) *leaderboardService {
	registry := leaderboard.NewRegistry([]leaderboard.Binding{
		{Key: leaderboard.ActivityDials, Column: cfg.DialsColumn},
		{Key: leaderboard.ActivityDoorknocks, Column: cfg.DoorknocksColumn},
		{Key: leaderboard.ActivityAppointments, Column: cfg.AppointmentsColumn},
		{Key: leaderboard.ActivityPresentations, Column: cfg.PresentationsColumn},
		{Key: leaderboard.ActivityRecruiting, Column: cfg.RecruitingColumn},
	})

	return &leaderboardService{
		dm:       dm,
		slack:    slackClient,
		sheets:   sheetSource,
		registry: registry,
		cfg:      cfg,
		logger:   logger,
		now:      func() time.Time { return time.Now().In(cfg.Location) },
	}
}

// Activities lists the valid activity keys in display order.
func (s *leaderboardService) Activities() []string {
	return s.registry.Keys()
}

// BuildBoard runs the full pipeline for one activity: fetch, normalize,
// aggregate over the current week, rank and render. A nil board with a nil
// error means nobody has a positive score this week.
func (s *leaderboardService) BuildBoard(ctx context.Context, activity string) (*entity.Leaderboard, entity.Stats, error) {
	column, ok := s.registry.Column(activity)
	if !ok {
		return nil, entity.Stats{}, fmt.Errorf("%w: %s", domain.ErrUnknownActivity, activity)
	}

	records, err := s.sheets.FetchRecords(ctx)
	if err != nil {
		return nil, entity.Stats{}, fmt.Errorf("failed to fetch sheet records: %w", err)
	}

	now := s.now()
	window := leaderboard.CurrentWeek(now)
	diag := leaderboard.NewDiagnostics(s.logger)
	cols := leaderboard.Columns{
		Date:     s.cfg.DateColumn,
		Name:     s.cfg.NameColumn,
		Activity: column,
	}

	board, stats := leaderboard.Aggregate(records, cols, window, s.cfg.SheetDateLayout, diag)

	s.logger.Info("aggregation complete",
		slog.String("activity", activity),
		slog.Int("processed", stats.Processed),
		slog.Int("skipped", stats.Skipped),
		slog.Int("out_of_window", stats.OutOfWindow),
		slog.Int("persons", stats.Persons),
	)

	ranked := leaderboard.Rank(board, s.cfg.TopN)
	rendered, ok := leaderboard.Render(ranked, window, s.registry.Label(activity), s.cfg.CTALink, now)
	if !ok {
		return nil, stats, nil
	}

	return rendered, stats, nil
}

// Subscribe registers the channel for the scheduled weekly posts, creating
// it on first contact.
func (s *leaderboardService) Subscribe(slackChannelID, slackChannelName, slackTeamID string) error {
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to check channel: %w", err)
	}

	if channel == nil {
		channel = &entity.Channel{
			SlackChannelID:   slackChannelID,
			SlackChannelName: slackChannelName,
			SlackTeamID:      slackTeamID,
			IsActive:         true,
		}
		if err := s.dm.Channel().Create(channel); err != nil {
			return fmt.Errorf("failed to create channel: %w", err)
		}
		return nil
	}

	if channel.IsActive {
		return nil
	}

	return s.dm.Channel().SetActive(slackChannelID, true)
}

// Unsubscribe deactivates the channel's subscription. Unknown channels are
// a no-op.
func (s *leaderboardService) Unsubscribe(slackChannelID string) error {
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to check channel: %w", err)
	}

	if channel == nil || !channel.IsActive {
		return nil
	}

	return s.dm.Channel().SetActive(slackChannelID, false)
}

func (s *leaderboardService) IsSubscribed(slackChannelID string) (bool, error) {
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return false, fmt.Errorf("failed to check channel: %w", err)
	}
	return channel != nil && channel.IsActive, nil
}

// PostScheduledBoards builds and posts every activity's board. One
// activity's failure must not block the others, so errors are logged and
// the loop continues.
func (s *leaderboardService) PostScheduledBoards(ctx context.Context) {
	channels := s.targetChannels()

	for _, activity := range s.registry.Keys() {
		board, _, err := s.BuildBoard(ctx, activity)
		if err != nil {
			s.logger.Error("scheduled board failed",
				slog.String("activity", activity),
				slog.Any("err", err),
			)
			continue
		}

		if board == nil {
			s.logger.Info("no positive scores this week, skipping post",
				slog.String("activity", activity),
			)
			continue
		}

		for _, channelID := range channels {
			if err := s.postBoard(channelID, board); err != nil {
				s.logger.Error("failed to post leaderboard",
					slog.String("activity", activity),
					slog.String("channel", channelID),
					slog.Any("err", err),
				)
			}
		}
	}
}

// PostReminder posts the static log-your-numbers reminder to the reminder
// channel.
func (s *leaderboardService) PostReminder(ctx context.Context) error {
	message := "📝 *Weekly numbers are due!*\n\nLog this week's activity in the tracking sheet before tonight's leaderboard post."
	if s.cfg.CTALink != "" {
		message += "\n" + s.cfg.CTALink
	}

	_, _, err := s.slack.PostMessage(
		s.cfg.ReminderChannelID,
		slackapi.MsgOptionText(message, false),
		slackapi.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}

	return nil
}

// targetChannels is the configured default channel plus every subscribed
// channel, deduplicated. A repository failure degrades to the default
// channel instead of dropping the whole post.
func (s *leaderboardService) targetChannels() []string {
	targets := []string{s.cfg.LeaderboardChannelID}
	seen := map[string]bool{s.cfg.LeaderboardChannelID: true}

	channels, err := s.dm.Channel().GetActiveChannels()
	if err != nil {
		s.logger.Error("failed to load subscribed channels", slog.Any("err", err))
		return targets
	}

	for _, channel := range channels {
		if seen[channel.SlackChannelID] {
			continue
		}
		seen[channel.SlackChannelID] = true
		targets = append(targets, channel.SlackChannelID)
	}

	return targets
}

func (s *leaderboardService) postBoard(channelID string, board *entity.Leaderboard) error {
	_, _, err := s.slack.PostMessage(
		channelID,
		slackapi.MsgOptionAttachments(slackfmt.BoardAttachment(board)),
		slackapi.MsgOptionAsUser(false),
	)
	return err
}
