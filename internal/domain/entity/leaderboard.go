package entity

import "time"

// RawRecord is one spreadsheet row as delivered by the sheet client: an
// untyped mapping from header name to cell text. Columns can be missing,
// reordered or renamed by the people editing the sheet, so all access goes
// through Get and its presence flag.
type RawRecord map[string]string

// Get returns the cell text for a column and whether the column exists at
// all. A present column with an empty value returns ("", true).
func (r RawRecord) Get(column string) (string, bool) {
	value, ok := r[column]
	return value, ok
}

// ValidatedEntry is a single usable row: who did the activity, on which
// calendar day, and how many times.
type ValidatedEntry struct {
	Person     string
	OccurredOn time.Time
	Amount     int
}

// WeekWindow is the Monday through Sunday date range (inclusive on both
// ends) used to keep only the current week's rows. Both bounds are dates at
// UTC midnight so they compare cleanly with parsed sheet dates.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls inside the window, bounds included.
func (w WeekWindow) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

// Stats summarizes one aggregation run. It feeds logging only, never
// control flow.
type Stats struct {
	Processed   int
	Skipped     int
	OutOfWindow int
	Persons     int
}

// RankedEntry is one line of the final leaderboard.
type RankedEntry struct {
	Rank       int
	Person     string
	Score      int
	Decoration string
}

// LeaderboardField is one name/value pair of the rendered board.
type LeaderboardField struct {
	Name  string
	Value string
}

// Leaderboard is the rendered, transport-agnostic board ready for the Slack
// layer to format into a message.
type Leaderboard struct {
	Title    string
	Subtitle string
	Fields   []LeaderboardField
	Footer   string
}
