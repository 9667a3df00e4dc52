package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/agnikas07/HustleBot/internal/config"
	"github.com/agnikas07/HustleBot/internal/domain/contract"
)

type eventKind int

const (
	eventBoards eventKind = iota
	eventReminder
)

func (k eventKind) String() string {
	if k == eventReminder {
		return "reminder"
	}
	return "boards"
}

// scheduler drives the weekly cadence: leaderboard posts on Friday and
// Sunday, the numbers-due reminder on Sunday, all at configured local
// times. The actual pipeline work lives in the leaderboard service.
type scheduler struct {
	service  contract.LeaderboardService
	cfg      *config.Config
	logger   *slog.Logger
	stopChan chan struct{}
	running  bool
	now      func() time.Time
}

func newScheduler(service contract.LeaderboardService, cfg *config.Config, logger *slog.Logger) *scheduler {
	return &scheduler{
		service:  service,
		cfg:      cfg,
		logger:   logger,
		stopChan: make(chan struct{}),
		now:      func() time.Time { return time.Now().In(cfg.Location) },
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.logger.Info("scheduler starting")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	s.logger.Info("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop() {
	for {
		now := s.now()
		when, kind := s.nextEvent(now)

		s.logger.Info("next scheduled run",
			slog.Time("at", when),
			slog.String("kind", kind.String()),
		)

		timer := time.NewTimer(when.Sub(now))

		select {
		case <-timer.C:
			s.fire(kind)
			// Step past the fired minute so it cannot trigger twice.
			time.Sleep(time.Minute)

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

func (s *scheduler) fire(kind eventKind) {
	ctx := context.Background()

	switch kind {
	case eventReminder:
		if err := s.service.PostReminder(ctx); err != nil {
			s.logger.Error("reminder post failed", slog.Any("err", err))
		}
	case eventBoards:
		s.service.PostScheduledBoards(ctx)
	}
}

// nextEvent returns the earliest upcoming scheduled run after now. Posts
// and the reminder are computed independently; whichever comes first wins.
func (s *scheduler) nextEvent(now time.Time) (time.Time, eventKind) {
	post := nextAt(now, s.cfg.PostHour, s.cfg.PostMinute, isPostingDay)
	reminder := nextAt(now, s.cfg.ReminderHour, s.cfg.ReminderMinute, isReminderDay)

	if reminder.Before(post) {
		return reminder, eventReminder
	}
	return post, eventBoards
}

// nextAt finds the next wall-clock occurrence of hour:minute on a day the
// predicate accepts, strictly after now.
func nextAt(now time.Time, hour, minute int, onDay func(time.Time) bool) time.Time {
	for i := 0; i <= 7; i++ {
		day := now.AddDate(0, 0, i)
		candidate := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
		if onDay(candidate) && candidate.After(now) {
			return candidate
		}
	}
	// Unreachable: every predicate accepts at least one weekday.
	return now.AddDate(0, 0, 7)
}

// isPostingDay reports whether the weekly leaderboards go out on this day.
func isPostingDay(t time.Time) bool {
	return t.Weekday() == time.Friday || t.Weekday() == time.Sunday
}

// isReminderDay reports whether the numbers-due reminder goes out on this
// day.
func isReminderDay(t time.Time) bool {
	return t.Weekday() == time.Sunday
}
