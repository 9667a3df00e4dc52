package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/agnikas07/HustleBot/mocks"
)

func Test_isPostingDay(t *testing.T) {
	tests := []struct {
		day  time.Time
		want bool
	}{
		{day: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), want: false}, // Monday
		{day: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), want: false}, // Wednesday
		{day: time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), want: true},  // Friday
		{day: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), want: false}, // Saturday
		{day: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), want: true},  // Sunday
	}

	for _, tt := range tests {
		t.Run(tt.day.Weekday().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, isPostingDay(tt.day))
		})
	}
}

func Test_isReminderDay(t *testing.T) {
	assert.True(t, isReminderDay(time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)))  // Sunday
	assert.False(t, isReminderDay(time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC))) // Friday
	assert.False(t, isReminderDay(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC))) // Monday
}

func Test_scheduler_nextEvent(t *testing.T) {
	// POST_TIME 17:00, REMINDER_TIME 19:00 (from testConfig).
	s := newScheduler(nil, testConfig(), testLogger())

	tests := []struct {
		name     string
		now      time.Time
		wantAt   time.Time
		wantKind eventKind
	}{
		{
			name:     "Wednesday noon waits for Friday post",
			now:      time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC),
			wantAt:   time.Date(2025, 6, 6, 17, 0, 0, 0, time.UTC),
			wantKind: eventBoards,
		},
		{
			name:     "Friday before the post time fires the same day",
			now:      time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC),
			wantAt:   time.Date(2025, 6, 6, 17, 0, 0, 0, time.UTC),
			wantKind: eventBoards,
		},
		{
			name:     "Friday exactly at the post time rolls to Sunday",
			now:      time.Date(2025, 6, 6, 17, 0, 0, 0, time.UTC),
			wantAt:   time.Date(2025, 6, 8, 17, 0, 0, 0, time.UTC),
			wantKind: eventBoards,
		},
		{
			name:     "Saturday waits for the Sunday post",
			now:      time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC),
			wantAt:   time.Date(2025, 6, 8, 17, 0, 0, 0, time.UTC),
			wantKind: eventBoards,
		},
		{
			name:     "Sunday between post and reminder fires the reminder",
			now:      time.Date(2025, 6, 8, 17, 30, 0, 0, time.UTC),
			wantAt:   time.Date(2025, 6, 8, 19, 0, 0, 0, time.UTC),
			wantKind: eventReminder,
		},
		{
			name:     "Sunday night rolls to next Friday",
			now:      time.Date(2025, 6, 8, 20, 0, 0, 0, time.UTC),
			wantAt:   time.Date(2025, 6, 13, 17, 0, 0, 0, time.UTC),
			wantKind: eventBoards,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, kind := s.nextEvent(tt.now)
			assert.Equal(t, tt.wantAt, at)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func Test_scheduler_fire(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockLeaderboardService(ctrl)
	s := newScheduler(serviceMock, testConfig(), testLogger())

	serviceMock.EXPECT().PostScheduledBoards(gomock.Any()).Times(1)
	s.fire(eventBoards)

	serviceMock.EXPECT().PostReminder(gomock.Any()).Return(nil).Times(1)
	s.fire(eventReminder)
}
