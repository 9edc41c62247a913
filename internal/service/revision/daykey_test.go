package revision

import (
	"testing"
	"time"
)

func TestDayKey_ReferenceTimezone(t *testing.T) {
	t.Parallel()

	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 20:00 UTC on the 28th is already 01:30 on the 29th in Kolkata.
	instant := time.Date(2026, time.August, 28, 20, 0, 0, 0, time.UTC)

	if got := DayKey(instant, time.UTC); got != "2026-08-28" {
		t.Errorf("UTC day key: got %q, want 2026-08-28", got)
	}
	if got := DayKey(instant, kolkata); got != "2026-08-29" {
		t.Errorf("Kolkata day key: got %q, want 2026-08-29", got)
	}
}

func TestDaySeed(t *testing.T) {
	t.Parallel()

	if got := DaySeed("2026-08-29"); got != 20260829 {
		t.Errorf("seed: got %d, want 20260829", got)
	}
	if got := DaySeed("not-a-date"); got != 0 {
		t.Errorf("invalid day key seed: got %d, want 0", got)
	}
}

func TestParseTimezone_FallsBackToUTC(t *testing.T) {
	t.Parallel()

	if got := ParseTimezone("Asia/Kolkata"); got.String() != "Asia/Kolkata" {
		t.Errorf("location: got %q", got.String())
	}
	if got := ParseTimezone("Not/AZone"); got != time.UTC {
		t.Errorf("fallback: got %q, want UTC", got.String())
	}
}
