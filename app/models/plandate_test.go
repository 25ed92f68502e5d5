package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlanDateFormats(t *testing.T) {
	want := NewPlanDate(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name  string
		input string
	}{
		{"slash format", "01/02/2026"},
		{"iso format", "2026-02-01"},
		{"rfc3339", "2026-02-01T00:00:00Z"},
		{"padded", "  01/02/2026 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePlanDate(tt.input)
			require.True(t, got.Valid())
			assert.Equal(t, want, got)
		})
	}
}

func TestParsePlanDateMalformed(t *testing.T) {
	for _, input := range []string{"", "N/A", "31/02/2026", "not a date", "2026-13-01", "01-02-2026"} {
		got := ParsePlanDate(input)
		assert.False(t, got.Valid(), "input %q should parse to an unset date", input)
		assert.Equal(t, "N/A", got.String())
	}
}

func TestPlanDateCanonicalFormat(t *testing.T) {
	d := ParsePlanDate("2026-02-01")
	assert.Equal(t, "01/02/2026", d.String())

	blob, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"01/02/2026"`, string(blob))
}

func TestPlanDateJSONRoundTrip(t *testing.T) {
	original := ParsePlanDate("17/04/2026")

	blob, err := json.Marshal(original)
	require.NoError(t, err)

	var parsed PlanDate
	require.NoError(t, json.Unmarshal(blob, &parsed))
	assert.Equal(t, original, parsed)
}

func TestPlanDateJSONNull(t *testing.T) {
	blob, err := json.Marshal(PlanDate{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(blob))

	var parsed PlanDate
	require.NoError(t, json.Unmarshal([]byte("null"), &parsed))
	assert.False(t, parsed.Valid())

	// Malformed wire values degrade to "no date" instead of failing.
	require.NoError(t, json.Unmarshal([]byte(`"99/99/9999"`), &parsed))
	assert.False(t, parsed.Valid())
}

func TestPlanDateMonthArithmetic(t *testing.T) {
	start := ParsePlanDate("02/03/2026")

	// +1 calendar month, then +15 days: the "1.5 months" realization.
	got := start.AddMonthsDays(1, 15)
	assert.Equal(t, "17/04/2026", got.String())

	// Calendar-aware, not fixed 45 days.
	assert.NotEqual(t, start.AddDays(45), got)
}

func TestPlanDateDaysUntil(t *testing.T) {
	a := ParsePlanDate("01/02/2026")
	b := ParsePlanDate("01/03/2026")
	assert.Equal(t, 28, a.DaysUntil(b))
	assert.Equal(t, -28, b.DaysUntil(a))
}
