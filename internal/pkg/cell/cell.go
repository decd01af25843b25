package cell

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the closed set of raw cell value shapes the pipeline
// accepts. Anything else (booleans, formula errors, nils) is Unsupported and
// causes the owning row to be skipped.
type Kind int

const (
	KindUnsupported Kind = iota
	KindText
	KindNumeric
	KindDateTime
)

// Value is a tagged union over the raw content of one spreadsheet or CSV
// cell. Exactly one of Text/Number/Time is meaningful, selected by Kind.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
	Time   time.Time
}

func Text(s string) Value        { return Value{Kind: KindText, Text: s} }
func Numeric(n float64) Value    { return Value{Kind: KindNumeric, Number: n} }
func DateTime(t time.Time) Value { return Value{Kind: KindDateTime, Time: t} }
func Unsupported() Value         { return Value{Kind: KindUnsupported} }

// IsUsable reports whether the value carries content the parsers can work
// with. Unsupported values and blank text are not usable.
func (v Value) IsUsable() bool {
	switch v.Kind {
	case KindText:
		return strings.TrimSpace(v.Text) != ""
	case KindNumeric, KindDateTime:
		return true
	default:
		return false
	}
}

// Spreadsheet serial numbers count days from 1899-12-30. The anchor keeps
// the historical lotus leap-year quirk instead of true calendar counting.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// serialToTime converts a day-count serial (fractional part = time of day)
// into a timestamp.
func serialToTime(serial float64) time.Time {
	return serialEpoch.Add(time.Duration(serial * 24 * float64(time.Hour)))
}

// Free-form date layouts tried in order for text cells. ISO first, then the
// locale formats that show up in real exports.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
}

// ParseDate resolves a cell value to a timestamp whose date portion is
// meaningful. Returns false when the value cannot be read as a date.
func ParseDate(v Value) (time.Time, bool) {
	switch v.Kind {
	case KindDateTime:
		return v.Time, true
	case KindNumeric:
		return serialToTime(v.Number), true
	case KindText:
		s := strings.TrimSpace(v.Text)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?$`)

// Text time layouts tried when the H:MM pattern does not match.
var timeLayouts = []string{
	"15:04:05",
	"3:04:05 PM",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseTime resolves a cell value to a timestamp whose clock portion is
// meaningful. Numeric cells are a fraction of a 24h day under the serial
// epoch (0.5 = noon). Text cells match H:MM with optional meridiem; 12-hour
// values convert to 24-hour (12 AM -> 0, PM adds 12 except for 12 PM).
func ParseTime(v Value) (time.Time, bool) {
	switch v.Kind {
	case KindDateTime:
		return v.Time, true
	case KindNumeric:
		return serialToTime(v.Number), true
	case KindText:
		s := strings.TrimSpace(v.Text)
		if s == "" {
			return time.Time{}, false
		}
		if m := clockRegex.FindStringSubmatch(s); m != nil {
			hour, _ := strconv.Atoi(m[1])
			minute, _ := strconv.Atoi(m[2])
			if hour > 23 || minute > 59 {
				return time.Time{}, false
			}
			switch strings.ToUpper(m[3]) {
			case "PM":
				if hour != 12 {
					hour += 12
				}
			case "AM":
				if hour == 12 {
					hour = 0
				}
			}
			if hour > 23 {
				return time.Time{}, false
			}
			return time.Date(1899, time.December, 30, hour, minute, 0, 0, time.UTC), true
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// Combine builds a timestamp from date's year/month/day and clock's
// hour/minute/second/nanosecond.
func Combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(),
		time.UTC,
	)
}

// Midnight drops the time-of-day portion. The result is the canonical
// per-day key used for de-duplication and monthly grouping.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
