package revision

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey truncates an instant to its calendar day in the given timezone.
// Every session is keyed and deduplicated by this value.
func DayKey(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(dayKeyLayout)
}

// DaySeed derives the shuffle seed from a day key: the YYYYMMDD digits as an
// integer, so the same day always seeds the same permutation.
func DaySeed(dayKey string) int64 {
	t, err := time.Parse(dayKeyLayout, dayKey)
	if err != nil {
		return 0
	}
	return int64(t.Year())*10000 + int64(t.Month())*100 + int64(t.Day())
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
