package domain

import (
	"testing"
	"time"
)

func TestNewPeriodSelectionLabel(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	sel := NewPeriodSelection("", start, end)
	if sel.Label != "01/03/2026 to 07/03/2026" {
		t.Errorf("label = %q", sel.Label)
	}

	named := NewPeriodSelection("March week", start, end)
	if named.Label != "March week" {
		t.Errorf("label = %q, want March week", named.Label)
	}
}

func TestDayDropsZoneAndClock(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	aware := time.Date(2026, 3, 1, 23, 30, 0, 0, zone)
	naive := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	if !Day(aware).Equal(Day(naive)) {
		t.Errorf("Day(%v) = %v, Day(%v) = %v", aware, Day(aware), naive, Day(naive))
	}
	if got := Day(aware); got.Location() != time.UTC {
		t.Errorf("Day result not UTC: %v", got)
	}
}

func TestDefaultPeriods(t *testing.T) {
	now := time.Date(2026, 4, 15, 10, 30, 0, 0, time.UTC)

	periods := DefaultPeriods(now)
	if len(periods) != 3 {
		t.Fatalf("periods = %d, want 3", len(periods))
	}

	wantEnd := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	wantDays := []int{7, 30, 90}
	for i, p := range periods {
		if !p.End.Equal(wantEnd) {
			t.Errorf("period %d end = %v, want %v", i, p.End, wantEnd)
		}
		if got := wantEnd.Sub(p.Start).Hours() / 24; int(got) != wantDays[i] {
			t.Errorf("period %d spans %v days, want %d", i, got, wantDays[i])
		}
	}
}

func TestEquipmentStatErrorRate(t *testing.T) {
	cases := []struct {
		name    string
		stat    EquipmentStat
		rate    float64
		problem bool
	}{
		{"healthy", EquipmentStat{Operations: 1000, Errors: 10}, 0.01, false},
		{"at threshold", EquipmentStat{Operations: 1000, Errors: 20}, 0.02, false},
		{"problematic", EquipmentStat{Operations: 1000, Errors: 30}, 0.03, true},
		{"no operations", EquipmentStat{Operations: 0, Errors: 5}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.stat.ErrorRate(); got != tc.rate {
				t.Errorf("ErrorRate() = %v, want %v", got, tc.rate)
			}
			if got := tc.stat.IsProblem(); got != tc.problem {
				t.Errorf("IsProblem() = %v, want %v", got, tc.problem)
			}
		})
	}
}

func TestPeriodDatasetIsEmpty(t *testing.T) {
	full := &PeriodDataset{
		Daily:     []DailyActivity{{}},
		Equipment: []EquipmentStat{{}},
		Hourly:    []HourlyBucket{{}},
	}
	if full.IsEmpty() {
		t.Error("populated dataset reported empty")
	}

	noHourly := &PeriodDataset{
		Daily:     []DailyActivity{{}},
		Equipment: []EquipmentStat{{}},
	}
	if !noHourly.IsEmpty() {
		t.Error("dataset without hourly buckets should report empty")
	}
}
