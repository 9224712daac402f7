package utils

import (
	"regexp"
	"time"
)

// DateKeyLayout is the canonical day bucket format.
const DateKeyLayout = "2006-01-02"

var dateKeyPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// location of the bar; date keys are computed in this zone
var location = time.UTC

// SetLocation changes the zone used for date keys. A nil loc resets to UTC.
func SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	location = loc
}

func Location() *time.Location {
	return location
}

// DateKey returns the "YYYY-MM-DD" bucket of t.
func DateKey(t time.Time) string {
	return t.In(location).Format(DateKeyLayout)
}

// ToDateKey normalizes user input to a date key. A leading "YYYY-MM-DD" is
// taken verbatim (so full ISO timestamps keep their own day); anything else
// means today.
func ToDateKey(input string, now time.Time) string {
	if dateKeyPrefix.MatchString(input) {
		return input[:len(DateKeyLayout)]
	}
	return DateKey(now)
}

// ParseDateKey parses a normalized key into midnight of that day in the bar zone.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, location)
}
