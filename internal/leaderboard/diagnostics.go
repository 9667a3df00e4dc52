package leaderboard

import (
	"io"
	"log/slog"
)

type diagKey struct {
	reason RejectReason
	column string
}

// Diagnostics records row-level problems for one aggregation run. The first
// occurrence of each (reason, column) pair is logged; repeats are only
// counted, so a sheet full of identical mistakes cannot flood the log.
type Diagnostics struct {
	logger *slog.Logger
	counts map[diagKey]int
}

// NewDiagnostics creates a collector for a single run. A nil logger
// discards output.
func NewDiagnostics(logger *slog.Logger) *Diagnostics {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Diagnostics{
		logger: logger,
		counts: make(map[diagKey]int),
	}
}

// Report counts a rejection and logs it if it is the first of its kind in
// this run.
func (d *Diagnostics) Report(rej *Rejection) {
	key := diagKey{reason: rej.Reason, column: rej.Column}
	d.counts[key]++
	if d.counts[key] > 1 {
		return
	}

	d.logger.Warn("row rejected, repeats suppressed",
		slog.String("reason", string(rej.Reason)),
		slog.String("column", rej.Column),
		slog.String("detail", rej.Detail),
	)
}

// Count returns how many times a (reason, column) pair occurred.
func (d *Diagnostics) Count(reason RejectReason, column string) int {
	return d.counts[diagKey{reason: reason, column: column}]
}

// Total returns the number of recorded rejections across all keys.
func (d *Diagnostics) Total() int {
	total := 0
	for _, n := range d.counts {
		total += n
	}
	return total
}
