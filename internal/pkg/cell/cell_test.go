package cell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUsable(t *testing.T) {
	assert.False(t, Unsupported().IsUsable())
	assert.False(t, Text("").IsUsable())
	assert.False(t, Text("   ").IsUsable())
	assert.True(t, Text("Alice").IsUsable())
	assert.True(t, Numeric(0).IsUsable())
	assert.True(t, DateTime(time.Now()).IsUsable())
}

func TestParseDateText(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2024-01-15", "2024-01-15"},
		{"1/15/2024", "2024-01-15"},
		{"01/15/2024", "2024-01-15"},
		{"2024/01/15", "2024-01-15"},
		{"Jan 15, 2024", "2024-01-15"},
		{"15 Jan 2024", "2024-01-15"},
		{"2024-02-29", "2024-02-29"},
	}
	for _, c := range cases {
		got, ok := ParseDate(Text(c.input))
		require.True(t, ok, "ParseDate(%q)", c.input)
		assert.Equal(t, c.want, got.Format("2006-01-02"), "ParseDate(%q)", c.input)
	}

	_, ok := ParseDate(Text("not a date"))
	assert.False(t, ok)
	_, ok = ParseDate(Text(""))
	assert.False(t, ok)
	_, ok = ParseDate(Unsupported())
	assert.False(t, ok)
}

func TestParseDateSerial(t *testing.T) {
	// Serial 45000 lands in 2023 under the 1899-12-30 anchor.
	got, ok := ParseDate(Numeric(45000))
	require.True(t, ok)
	assert.Equal(t, 2023, got.Year())
	assert.Equal(t, "2023-03-15", got.Format("2006-01-02"))

	// Fractional part is time of day and does not shift the date.
	got, ok = ParseDate(Numeric(45000.75))
	require.True(t, ok)
	assert.Equal(t, "2023-03-15", got.Format("2006-01-02"))
}

func TestParseDateNative(t *testing.T) {
	native := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	got, ok := ParseDate(DateTime(native))
	require.True(t, ok)
	assert.Equal(t, native, got)
}

func TestParseTimeClockText(t *testing.T) {
	cases := []struct {
		input  string
		hour   int
		minute int
	}{
		{"10:00", 10, 0},
		{"10:00 AM", 10, 0},
		{"10:00 am", 10, 0},
		{"2:30 PM", 14, 30},
		{"2:30pm", 14, 30},
		{"12:00 AM", 0, 0},
		{"12:15 PM", 12, 15},
		{"23:45", 23, 45},
		{"18:30", 18, 30},
	}
	for _, c := range cases {
		got, ok := ParseTime(Text(c.input))
		require.True(t, ok, "ParseTime(%q)", c.input)
		assert.Equal(t, c.hour, got.Hour(), "ParseTime(%q) hour", c.input)
		assert.Equal(t, c.minute, got.Minute(), "ParseTime(%q) minute", c.input)
	}

	for _, bad := range []string{"", "25:00", "10:75", "noon", "AM"} {
		_, ok := ParseTime(Text(bad))
		assert.False(t, ok, "ParseTime(%q)", bad)
	}
}

func TestParseTimeFraction(t *testing.T) {
	got, ok := ParseTime(Numeric(0.5))
	require.True(t, ok)
	assert.Equal(t, 12, got.Hour())
	assert.Equal(t, 0, got.Minute())

	got, ok = ParseTime(Numeric(0.4375)) // 10:30
	require.True(t, ok)
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestParseTimeRejectsUnsupported(t *testing.T) {
	_, ok := ParseTime(Unsupported())
	assert.False(t, ok)
}

func TestCombine(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	clock, ok := ParseTime(Text("10:00 AM"))
	require.True(t, ok)

	got := Combine(date, clock)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), got)
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2024, 1, 15, 18, 30, 12, 99, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Midnight(ts))
}
