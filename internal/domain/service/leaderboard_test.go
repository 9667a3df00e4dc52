package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agnikas07/HustleBot/internal/domain"
	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

func weekRecords() []entity.RawRecord {
	return []entity.RawRecord{
		{"Date": "06/02/2025", "Name": "Alice", "Dials": "5", "Door Knocks": "2", "Appointments": "1", "Presentations": "0", "Recruiting Interviews": "0"},
		{"Date": "06/02/2025", "Name": "Bob", "Dials": "3", "Door Knocks": "0", "Appointments": "0", "Presentations": "0", "Recruiting Interviews": "0"},
		{"Date": "05/20/2025", "Name": "Alice", "Dials": "100", "Door Knocks": "0", "Appointments": "0", "Presentations": "0", "Recruiting Interviews": "0"},
	}
}

func Test_leaderboardService_Activities(t *testing.T) {
	_, svc := newServiceTestMock(t)

	assert.Equal(t, []string{"dials", "doorknocks", "appointments", "presentations", "recruiting_interviews"}, svc.Activities())
}

func Test_leaderboardService_BuildBoard(t *testing.T) {
	tests := []struct {
		name       string
		activity   string
		buildMock  func(m allMocks)
		checkBoard func(t *testing.T, board *entity.Leaderboard, stats entity.Stats)
		wantErr    error
	}{
		{
			name:     "Should build ranked board for the current week",
			activity: "dials",
			buildMock: func(m allMocks) {
				m.mockSheetSource.EXPECT().
					FetchRecords(gomock.Any()).
					Return(weekRecords(), nil).Times(1)
			},
			checkBoard: func(t *testing.T, board *entity.Leaderboard, stats entity.Stats) {
				require.NotNil(t, board)
				assert.Equal(t, "🏆 Weekly Leaderboard: Dials 🏆", board.Title)
				assert.Contains(t, board.Subtitle, "Jun 02 - Jun 08")

				require.Len(t, board.Fields, 2)
				assert.Equal(t, "🥇 Alice", board.Fields[0].Name)
				assert.Equal(t, "Dials completed: *5*", board.Fields[0].Value)
				assert.Equal(t, "🥈 Bob", board.Fields[1].Name)

				assert.Equal(t, 2, stats.Processed)
				assert.Equal(t, 1, stats.OutOfWindow)
			},
		},
		{
			name:     "Should return nil board when no positive scores",
			activity: "presentations",
			buildMock: func(m allMocks) {
				m.mockSheetSource.EXPECT().
					FetchRecords(gomock.Any()).
					Return(weekRecords(), nil).Times(1)
			},
			checkBoard: func(t *testing.T, board *entity.Leaderboard, stats entity.Stats) {
				assert.Nil(t, board)
				assert.Equal(t, 2, stats.Processed)
			},
		},
		{
			name:      "Should reject unknown activity without fetching",
			activity:  "pushups",
			buildMock: func(m allMocks) {},
			wantErr:   domain.ErrUnknownActivity,
		},
		{
			name:     "Should propagate fetch failures",
			activity: "dials",
			buildMock: func(m allMocks) {
				m.mockSheetSource.EXPECT().
					FetchRecords(gomock.Any()).
					Return(nil, errors.New("permission denied")).Times(1)
			},
			wantErr: errors.New("failed to fetch sheet records"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := newServiceTestMock(t)
			tt.buildMock(m)

			board, stats, err := svc.BuildBoard(context.Background(), tt.activity)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, domain.ErrUnknownActivity) {
					assert.ErrorIs(t, err, domain.ErrUnknownActivity)
				} else {
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
				return
			}

			require.NoError(t, err)
			tt.checkBoard(t, board, stats)
		})
	}
}

func Test_leaderboardService_Subscribe(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(m allMocks)
		wantErr   bool
	}{
		{
			name: "Should create channel on first subscribe",
			buildMock: func(m allMocks) {
				m.mockChannelRepo.EXPECT().
					GetBySlackID("C123").
					Return(nil, nil).Times(1)

				m.mockChannelRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(channel *entity.Channel) error {
						channel.ID = 1
						assert.Equal(t, "C123", channel.SlackChannelID)
						assert.Equal(t, "sales", channel.SlackChannelName)
						assert.Equal(t, "T123", channel.SlackTeamID)
						assert.True(t, channel.IsActive)
						return nil
					}).Times(1)
			},
		},
		{
			name: "Should be a no-op when already subscribed",
			buildMock: func(m allMocks) {
				m.mockChannelRepo.EXPECT().
					GetBySlackID("C123").
					Return(&entity.Channel{ID: 1, SlackChannelID: "C123", IsActive: true}, nil).Times(1)
			},
		},
		{
			name: "Should reactivate an unsubscribed channel",
			buildMock: func(m allMocks) {
				m.mockChannelRepo.EXPECT().
					GetBySlackID("C123").
					Return(&entity.Channel{ID: 1, SlackChannelID: "C123", IsActive: false}, nil).Times(1)

				m.mockChannelRepo.EXPECT().
					SetActive("C123", true).
					Return(nil).Times(1)
			},
		},
		{
			name: "Should surface repository errors",
			buildMock: func(m allMocks) {
				m.mockChannelRepo.EXPECT().
					GetBySlackID("C123").
					Return(nil, errors.New("db locked")).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := newServiceTestMock(t)
			tt.buildMock(m)

			err := svc.Subscribe("C123", "sales", "T123")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_leaderboardService_Unsubscribe(t *testing.T) {
	m, svc := newServiceTestMock(t)

	m.mockChannelRepo.EXPECT().
		GetBySlackID("C123").
		Return(&entity.Channel{ID: 1, SlackChannelID: "C123", IsActive: true}, nil).Times(1)
	m.mockChannelRepo.EXPECT().
		SetActive("C123", false).
		Return(nil).Times(1)

	require.NoError(t, svc.Unsubscribe("C123"))

	// Unknown channels are a no-op.
	m.mockChannelRepo.EXPECT().
		GetBySlackID("C999").
		Return(nil, nil).Times(1)

	require.NoError(t, svc.Unsubscribe("C999"))
}

func Test_leaderboardService_IsSubscribed(t *testing.T) {
	m, svc := newServiceTestMock(t)

	m.mockChannelRepo.EXPECT().
		GetBySlackID("C123").
		Return(&entity.Channel{ID: 1, SlackChannelID: "C123", IsActive: true}, nil).Times(1)

	subscribed, err := svc.IsSubscribed("C123")
	require.NoError(t, err)
	assert.True(t, subscribed)

	m.mockChannelRepo.EXPECT().
		GetBySlackID("C999").
		Return(nil, nil).Times(1)

	subscribed, err = svc.IsSubscribed("C999")
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func Test_leaderboardService_PostScheduledBoards(t *testing.T) {
	m, svc := newServiceTestMock(t)

	m.mockChannelRepo.EXPECT().
		GetActiveChannels().
		Return([]*entity.Channel{{ID: 1, SlackChannelID: "C_SUB", IsActive: true}}, nil).Times(1)

	// The first activity's fetch fails; the remaining four still run.
	failed := m.mockSheetSource.EXPECT().
		FetchRecords(gomock.Any()).
		Return(nil, errors.New("sheet down")).Times(1)
	m.mockSheetSource.EXPECT().
		FetchRecords(gomock.Any()).
		Return(weekRecords(), nil).Times(4).After(failed)

	// Doorknocks and appointments have positive scores; posting to the
	// subscribed channel fails but must not stop anything else.
	m.mockSlackClient.EXPECT().
		PostMessage("C_DEFAULT", gomock.Any(), gomock.Any()).
		Return("", "", nil).Times(2)
	m.mockSlackClient.EXPECT().
		PostMessage("C_SUB", gomock.Any(), gomock.Any()).
		Return("", "", errors.New("channel_not_found")).Times(2)

	svc.PostScheduledBoards(context.Background())
}

func Test_leaderboardService_PostScheduledBoards_RepoFailureDegradesToDefaultChannel(t *testing.T) {
	m, svc := newServiceTestMock(t)

	m.mockChannelRepo.EXPECT().
		GetActiveChannels().
		Return(nil, errors.New("db locked")).Times(1)

	m.mockSheetSource.EXPECT().
		FetchRecords(gomock.Any()).
		Return(weekRecords(), nil).Times(5)

	// dials, doorknocks and appointments have positive totals.
	m.mockSlackClient.EXPECT().
		PostMessage("C_DEFAULT", gomock.Any(), gomock.Any()).
		Return("", "", nil).Times(3)

	svc.PostScheduledBoards(context.Background())
}

func Test_leaderboardService_PostReminder(t *testing.T) {
	m, svc := newServiceTestMock(t)

	m.mockSlackClient.EXPECT().
		PostMessage("C_REMIND", gomock.Any(), gomock.Any()).
		Return("", "", nil).Times(1)

	require.NoError(t, svc.PostReminder(context.Background()))

	m.mockSlackClient.EXPECT().
		PostMessage("C_REMIND", gomock.Any(), gomock.Any()).
		Return("", "", errors.New("not_in_channel")).Times(1)

	err := svc.PostReminder(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send reminder")
}
