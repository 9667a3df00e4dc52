package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agnikas07/HustleBot/internal/domain/entity"
)

var testCols = Columns{Date: "Date", Name: "Name", Activity: "Dials"}

const testLayout = "01/02/2006"

func TestNormalize_ValidRow(t *testing.T) {
	record := entity.RawRecord{"Date": "06/02/2025", "Name": "Alice", "Dials": "7"}

	entry, rej := Normalize(record, testCols, testLayout)
	require.Nil(t, rej)

	assert.Equal(t, "Alice", entry.Person)
	assert.Equal(t, 7, entry.Amount)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), entry.OccurredOn)
}

func TestNormalize_TrimsName(t *testing.T) {
	record := entity.RawRecord{"Date": "06/02/2025", "Name": "  Alice  ", "Dials": "1"}

	entry, rej := Normalize(record, testCols, testLayout)
	require.Nil(t, rej)
	assert.Equal(t, "Alice", entry.Person)
}

func TestNormalize_MissingColumns(t *testing.T) {
	tests := []struct {
		name       string
		record     entity.RawRecord
		wantColumn string
	}{
		{
			name:       "missing date column",
			record:     entity.RawRecord{"Name": "Alice", "Dials": "3"},
			wantColumn: "Date",
		},
		{
			name:       "missing name column",
			record:     entity.RawRecord{"Date": "06/02/2025", "Dials": "3"},
			wantColumn: "Name",
		},
		{
			name:       "missing activity column",
			record:     entity.RawRecord{"Date": "06/02/2025", "Name": "Alice"},
			wantColumn: "Dials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rej := Normalize(tt.record, testCols, testLayout)
			require.NotNil(t, rej)
			assert.Equal(t, ReasonMissingColumn, rej.Reason)
			assert.Equal(t, tt.wantColumn, rej.Column)
		})
	}
}

func TestNormalize_PresentButEmptyColumnIsNotMissing(t *testing.T) {
	// The key exists with an empty value: that is an empty field, not a
	// missing column.
	record := entity.RawRecord{"Date": "", "Name": "Alice", "Dials": "3"}

	_, rej := Normalize(record, testCols, testLayout)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonEmptyField, rej.Reason)
	assert.Equal(t, "Date", rej.Column)
}

func TestNormalize_EmptyName(t *testing.T) {
	record := entity.RawRecord{"Date": "06/02/2025", "Name": "   ", "Dials": "3"}

	_, rej := Normalize(record, testCols, testLayout)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonEmptyField, rej.Reason)
	assert.Equal(t, "Name", rej.Column)
}

func TestNormalize_BadDate(t *testing.T) {
	record := entity.RawRecord{"Date": "2025-06-02", "Name": "Alice", "Dials": "3"}

	_, rej := Normalize(record, testCols, testLayout)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonBadDate, rej.Reason)
}

func TestNormalize_EmptyValueIsZero(t *testing.T) {
	record := entity.RawRecord{"Date": "06/02/2025", "Name": "Alice", "Dials": "  "}

	entry, rej := Normalize(record, testCols, testLayout)
	require.Nil(t, rej)
	assert.Equal(t, 0, entry.Amount)
}

func TestNormalize_BadValueCoercedToZero(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "letters", value: "abc"},
		{name: "decimal", value: "3.5"},
		{name: "thousands separator", value: "1,000"},
		{name: "negative", value: "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := entity.RawRecord{"Date": "06/02/2025", "Name": "Alice", "Dials": tt.value}

			entry, rej := Normalize(record, testCols, testLayout)
			require.NotNil(t, rej)
			assert.Equal(t, ReasonBadValue, rej.Reason)
			assert.Equal(t, "Dials", rej.Column)

			// The entry is still usable, it just contributes zero.
			assert.Equal(t, "Alice", entry.Person)
			assert.Equal(t, 0, entry.Amount)
		})
	}
}
