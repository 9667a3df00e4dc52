package leaderboard

import "strings"

// Activity keys accepted by the board command, in display order.
const (
	ActivityDials         = "dials"
	ActivityDoorknocks    = "doorknocks"
	ActivityAppointments  = "appointments"
	ActivityPresentations = "presentations"
	ActivityRecruiting    = "recruiting_interviews"
)

// Binding ties an activity key to the spreadsheet column holding its counts.
type Binding struct {
	Key    string
	Column string
}

// Registry is the fixed activity-key to column-name mapping. It is built
// once at startup from configuration and never changes afterwards.
type Registry struct {
	keys    []string
	columns map[string]string
}

// NewRegistry builds a registry from ordered bindings. Bindings with an
// empty column and duplicate keys are ignored.
func NewRegistry(bindings []Binding) *Registry {
	r := &Registry{columns: make(map[string]string, len(bindings))}
	for _, b := range bindings {
		if b.Column == "" {
			continue
		}
		if _, dup := r.columns[b.Key]; dup {
			continue
		}
		r.keys = append(r.keys, b.Key)
		r.columns[b.Key] = b.Column
	}
	return r
}

// Keys returns the activity keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Column returns the spreadsheet column bound to an activity key.
func (r *Registry) Column(key string) (string, bool) {
	column, ok := r.columns[key]
	return column, ok
}

// Label turns an activity key into its display form, e.g.
// "recruiting_interviews" becomes "Recruiting Interviews".
func (r *Registry) Label(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
