package leaderboard

import (
	"time"

	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

// CurrentWeek returns the Monday through Sunday window containing now,
// evaluated in now's location. The bounds are normalized to UTC midnight so
// they compare directly with dates parsed from the sheet.
func CurrentWeek(now time.Time) entity.WeekWindow {
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	// time.Weekday has Sunday=0; shift so Monday=0.
	offset := (int(today.Weekday()) + 6) % 7
	start := today.AddDate(0, 0, -offset)

	return entity.WeekWindow{Start: start, End: start.AddDate(0, 0, 6)}
}
