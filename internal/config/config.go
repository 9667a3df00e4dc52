package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/agnikas07/HustleBot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	Port               string
	DatabasePath       string

	GoogleCredentialsFile string
	SpreadsheetID         string
	WorksheetName         string

	DateColumn          string
	NameColumn          string
	DialsColumn         string
	DoorknocksColumn    string
	AppointmentsColumn  string
	PresentationsColumn string
	RecruitingColumn    string

	// SheetDateLayout is a Go time layout, e.g. 01/02/2006 for MM/DD/YYYY.
	SheetDateLayout string

	Timezone string
	Location *time.Location

	LeaderboardChannelID string
	ReminderChannelID    string

	TopN    int
	CTALink string

	PostTime     string // HH:MM, local to Timezone
	ReminderTime string // HH:MM, local to Timezone

	PostHour       int
	PostMinute     int
	ReminderHour   int
	ReminderMinute int
}

// Load reads configuration from the environment. Missing required settings
// or unparseable values return an error; the process must not serve
// commands with a partial configuration.
func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:      os.Getenv("SLACK_BOT_TOKEN"),
		SlackSigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		Port:               getEnv("PORT", "3000"),
		DatabasePath:       getEnv("DATABASE_PATH", "./hustlebot.db"),

		GoogleCredentialsFile: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_FILE"),
		SpreadsheetID:         os.Getenv("GOOGLE_SHEET_ID"),
		WorksheetName:         os.Getenv("WORKSHEET_NAME"),

		DateColumn:          os.Getenv("DATE_COLUMN_NAME"),
		NameColumn:          os.Getenv("NAME_COLUMN_NAME"),
		DialsColumn:         os.Getenv("DIALS_COLUMN_NAME"),
		DoorknocksColumn:    os.Getenv("DOORKNOCKS_COLUMN_NAME"),
		AppointmentsColumn:  os.Getenv("APPOINTMENTS_COLUMN_NAME"),
		PresentationsColumn: os.Getenv("PRESENTATIONS_COLUMN_NAME"),
		RecruitingColumn:    os.Getenv("RECRUITING_INTERVIEWS_COLUMN_NAME"),

		SheetDateLayout: getEnv("SHEET_DATE_FORMAT", "01/02/2006"),
		Timezone:        getEnv("TIMEZONE", "America/New_York"),

		LeaderboardChannelID: os.Getenv("LEADERBOARD_CHANNEL_ID"),
		ReminderChannelID:    os.Getenv("REMINDER_CHANNEL_ID"),

		CTALink: os.Getenv("CTA_LINK"),

		PostTime:     getEnv("POST_TIME", "17:00"),
		ReminderTime: getEnv("REMINDER_TIME", "19:00"),
	}

	required := map[string]string{
		"SLACK_BOT_TOKEN":                   cfg.SlackBotToken,
		"SLACK_SIGNING_SECRET":              cfg.SlackSigningSecret,
		"GOOGLE_SHEETS_CREDENTIALS_FILE":    cfg.GoogleCredentialsFile,
		"GOOGLE_SHEET_ID":                   cfg.SpreadsheetID,
		"WORKSHEET_NAME":                    cfg.WorksheetName,
		"DATE_COLUMN_NAME":                  cfg.DateColumn,
		"NAME_COLUMN_NAME":                  cfg.NameColumn,
		"DIALS_COLUMN_NAME":                 cfg.DialsColumn,
		"DOORKNOCKS_COLUMN_NAME":            cfg.DoorknocksColumn,
		"APPOINTMENTS_COLUMN_NAME":          cfg.AppointmentsColumn,
		"PRESENTATIONS_COLUMN_NAME":         cfg.PresentationsColumn,
		"RECRUITING_INTERVIEWS_COLUMN_NAME": cfg.RecruitingColumn,
		"LEADERBOARD_CHANNEL_ID":            cfg.LeaderboardChannelID,
	}
	var missing []string
	for key, value := range required {
		if value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.ReminderChannelID == "" {
		cfg.ReminderChannelID = cfg.LeaderboardChannelID
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = location

	topN := getEnv("TOP_N", strconv.Itoa(domain.DefaultTopN))
	cfg.TopN, err = strconv.Atoi(topN)
	if err != nil || cfg.TopN <= 0 {
		return nil, fmt.Errorf("invalid TOP_N %q: must be a positive integer", topN)
	}

	cfg.PostHour, cfg.PostMinute, err = parseClock(cfg.PostTime)
	if err != nil {
		return nil, fmt.Errorf("invalid POST_TIME: %w", err)
	}

	cfg.ReminderHour, cfg.ReminderMinute, err = parseClock(cfg.ReminderTime)
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_TIME: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseClock parses an HH:MM wall-clock time.
func parseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q is not in HH:MM format", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%q has an invalid hour", value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%q has an invalid minute", value)
	}

	return hour, minute, nil
}
