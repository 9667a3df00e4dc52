package leaderboard

import (
	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

// PersonScore is one accumulated entry of a board.
type PersonScore struct {
	Person string
	Score  int
}

// Board accumulates per-person scores while remembering the order in which
// each person first appeared. That order is what makes ranking ties
// deterministic.
type Board struct {
	scores map[string]int
	order  []string
}

// NewBoard returns an empty board. Boards are built fresh per run and never
// shared between invocations.
func NewBoard() *Board {
	return &Board{scores: make(map[string]int)}
}

// Add accumulates amount onto person's score.
func (b *Board) Add(person string, amount int) {
	if _, seen := b.scores[person]; !seen {
		b.order = append(b.order, person)
	}
	b.scores[person] += amount
}

// Len returns the number of distinct persons on the board.
func (b *Board) Len() int {
	return len(b.order)
}

// Score returns a person's accumulated score.
func (b *Board) Score(person string) (int, bool) {
	score, ok := b.scores[person]
	return score, ok
}

// Scores returns the board entries in first-seen order.
func (b *Board) Scores() []PersonScore {
	out := make([]PersonScore, 0, len(b.order))
	for _, person := range b.order {
		out = append(out, PersonScore{Person: person, Score: b.scores[person]})
	}
	return out
}

// Aggregate folds every record into a fresh board, restricted to one
// activity column and the given week window. Malformed rows are skipped
// (bad values are coerced to zero instead) and never abort the run; rows
// outside the window are excluded without counting as errors.
func Aggregate(records []entity.RawRecord, cols Columns, window entity.WeekWindow, dateLayout string, diag *Diagnostics) (*Board, entity.Stats) {
	if diag == nil {
		diag = NewDiagnostics(nil)
	}

	board := NewBoard()
	var stats entity.Stats

	for _, record := range records {
		entry, rej := Normalize(record, cols, dateLayout)
		if rej != nil {
			diag.Report(rej)
			if rej.Reason != ReasonBadValue {
				stats.Skipped++
				continue
			}
			// Bad value: the row still counts, it just contributes zero.
		}

		if !window.Contains(entry.OccurredOn) {
			stats.OutOfWindow++
			continue
		}

		board.Add(entry.Person, entry.Amount)
		stats.Processed++
	}

	stats.Persons = board.Len()
	return board, stats
}
