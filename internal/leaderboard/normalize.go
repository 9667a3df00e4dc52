package leaderboard

import (
	"strconv"
	"strings"
	"time"

	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

// RejectReason classifies why a row could not be used as-is.
type RejectReason string

const (
	ReasonMissingColumn RejectReason = "missing_column"
	ReasonEmptyField    RejectReason = "empty_field"
	ReasonBadDate       RejectReason = "bad_date"
	ReasonBadValue      RejectReason = "bad_value"
)

// Rejection explains why a row was rejected and which column caused it.
// A ReasonBadValue rejection still comes with a usable entry whose amount
// was coerced to zero; every other reason discards the row.
type Rejection struct {
	Reason RejectReason
	Column string
	Detail string
}

// Columns names the cells a row must carry to be scored.
type Columns struct {
	Date     string
	Name     string
	Activity string
}

// Normalize validates one raw row against the configured columns and date
// layout. It is a pure function; all diagnostics are returned to the caller.
func Normalize(record entity.RawRecord, cols Columns, dateLayout string) (entity.ValidatedEntry, *Rejection) {
	for _, column := range []string{cols.Date, cols.Name, cols.Activity} {
		if _, ok := record.Get(column); !ok {
			return entity.ValidatedEntry{}, &Rejection{Reason: ReasonMissingColumn, Column: column}
		}
	}

	dateStr, _ := record.Get(cols.Date)
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return entity.ValidatedEntry{}, &Rejection{Reason: ReasonEmptyField, Column: cols.Date}
	}

	name, _ := record.Get(cols.Name)
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.ValidatedEntry{}, &Rejection{Reason: ReasonEmptyField, Column: cols.Name}
	}

	occurredOn, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return entity.ValidatedEntry{}, &Rejection{Reason: ReasonBadDate, Column: cols.Date, Detail: dateStr}
	}

	entry := entity.ValidatedEntry{Person: name, OccurredOn: occurredOn}

	raw, _ := record.Get(cols.Activity)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		// An empty activity cell counts as zero, not as an error.
		return entry, nil
	}

	amount, err := strconv.Atoi(raw)
	if err != nil || amount < 0 {
		return entry, &Rejection{Reason: ReasonBadValue, Column: cols.Activity, Detail: raw}
	}

	entry.Amount = amount
	return entry, nil
}
