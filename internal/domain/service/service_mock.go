package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agnikas07/HustleBot/internal/config"
	"github.com/agnikas07/HustleBot/mocks"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockChannelRepo *mocks.MockChannelRepo
	mockSlackClient *mocks.MockSlackClient
	mockSheetSource *mocks.MockSheetSource
}

func testConfig() *config.Config {
	return &config.Config{
		DateColumn:          "Date",
		NameColumn:          "Name",
		DialsColumn:         "Dials",
		DoorknocksColumn:    "Door Knocks",
		AppointmentsColumn:  "Appointments",
		PresentationsColumn: "Presentations",
		RecruitingColumn:    "Recruiting Interviews",

		SheetDateLayout: "01/02/2006",
		Timezone:        "UTC",
		Location:        time.UTC,

		LeaderboardChannelID: "C_DEFAULT",
		ReminderChannelID:    "C_REMIND",

		TopN:    9,
		CTALink: "Log your numbers: https://example.com/sheet",

		PostHour:     17,
		PostMinute:   0,
		ReminderHour: 19,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newServiceTestMock(t *testing.T) (m allMocks, svc *leaderboardService) {
	t.Helper()

	ctrl := gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)
	sheetSource := mocks.NewMockSheetSource(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockChannelRepo: channelRepo,
		mockSlackClient: slackClient,
		mockSheetSource: sheetSource,
	}

	svc = newLeaderboard(dm, slackClient, sheetSource, testConfig(), testLogger())
	require.NotNil(t, svc)

	// Pin "now" to Wednesday June 4, 2025 so the window is June 2-8.
	svc.now = func() time.Time { return time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC) }

	return
}
