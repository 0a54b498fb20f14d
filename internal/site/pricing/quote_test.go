package pricing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestForDatesFullPeriod(t *testing.T) {
	got := ForDates(date(2025, time.March, 1), date(2025, time.March, 5), 400)

	if got.Days != 4 {
		t.Fatalf("expected 4 days, got %d", got.Days)
	}
	if got.Total != 1600 {
		t.Fatalf("expected total 1600, got %v", got.Total)
	}
}

func TestForDatesSameDayBillsOneDay(t *testing.T) {
	day := date(2025, time.March, 1)
	got := ForDates(day, day, 300)

	if got.Days != 1 {
		t.Fatalf("expected 1 day, got %d", got.Days)
	}
	if got.Total != 300 {
		t.Fatalf("expected total 300, got %v", got.Total)
	}
}

func TestForDatesPartialDayRoundsUp(t *testing.T) {
	pickup := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	ret := time.Date(2025, time.March, 3, 18, 0, 0, 0, time.UTC)

	got := ForDates(&pickup, &ret, 300)

	if got.Days != 3 {
		t.Fatalf("expected 3 days, got %d", got.Days)
	}
	if got.Total != 900 {
		t.Fatalf("expected total 900, got %v", got.Total)
	}
}

func TestForDatesMissingDates(t *testing.T) {
	day := date(2025, time.March, 1)

	for name, q := range map[string]Quote{
		"nil pickup": ForDates(nil, day, 300),
		"nil return": ForDates(day, nil, 300),
		"both nil":   ForDates(nil, nil, 300),
	} {
		if q.Days != 0 || q.Total != 0 {
			t.Fatalf("%s: expected zero quote, got %+v", name, q)
		}
	}
}

func TestForDatesThreeDaysAtRate(t *testing.T) {
	pickup := date(2025, time.June, 10)
	ret := date(2025, time.June, 13)

	got := ForDates(pickup, ret, 300)

	if got.Days != 3 || got.Total != 900 {
		t.Fatalf("expected {3 900}, got %+v", got)
	}
}
