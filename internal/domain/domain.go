package domain

import "errors"

// ErrUnknownActivity is returned when a board is requested for an activity
// key that is not in the registry.
var ErrUnknownActivity = errors.New("unknown activity")

// DefaultTopN is how many ranked entries a leaderboard shows unless
// configured otherwise.
const DefaultTopN = 9
