package domain

import "time"

type Hour = int

// DateFormat is the day-precision wire format used in share links and CSV files.
const DateFormat = "2006-01-02"

// LabelDateFormat is the human-facing date format used in period labels.
const LabelDateFormat = "02/01/2006"

// PeriodSelection is an analysis window. Immutable once built; Start <= End.
type PeriodSelection struct {
	Label string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewPeriodSelection(label string, start, end time.Time) PeriodSelection {
	start = Day(start)
	end = Day(end)
	if label == "" {
		label = start.Format(LabelDateFormat) + " to " + end.Format(LabelDateFormat)
	}

	return PeriodSelection{Label: label, Start: start, End: end}
}

// Day truncates a timestamp to its calendar day, dropping the timezone
// offset so dates from differently-zoned sources compare equal.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DefaultPeriods returns the named quick-select ranges ending today.
func DefaultPeriods(now time.Time) []PeriodSelection {
	end := Day(now)
	return []PeriodSelection{
		NewPeriodSelection("Last 7 days", end.AddDate(0, 0, -7), end),
		NewPeriodSelection("Last 30 days", end.AddDate(0, 0, -30), end),
		NewPeriodSelection("Last 90 days", end.AddDate(0, 0, -90), end),
	}
}

type DailyActivity struct {
	Date        time.Time `json:"date" db:"date"`
	Operations  int       `json:"operations" db:"operations"`
	AvgDuration float64   `json:"avg_duration" db:"avg_duration"`
	Urgent      int       `json:"urgent" db:"urgent"`
	Errors      int       `json:"errors" db:"errors"`
}

type EquipmentStat struct {
	Equipment   string  `json:"equipment" db:"equipment"`
	Operations  int     `json:"operations" db:"operations"`
	Errors      int     `json:"errors" db:"errors"`
	AvgDuration float64 `json:"avg_duration" db:"avg_duration"`
}

// ErrorRate is a read-time projection; it is never stored back onto the
// dataset.
func (e EquipmentStat) ErrorRate() float64 {
	if e.Operations == 0 {
		return 0
	}
	return float64(e.Errors) / float64(e.Operations)
}

// ProblemErrorRate is the canonical threshold above which a piece of
// equipment is flagged as problematic.
const ProblemErrorRate = 0.02

func (e EquipmentStat) IsProblem() bool {
	return e.ErrorRate() > ProblemErrorRate
}

type HourlyBucket struct {
	Hour       Hour `json:"hour"`
	Operations int  `json:"operations"`
}

type OperationType string

const (
	OperationLoading   OperationType = "LOADING"
	OperationUnloading OperationType = "UNLOADING"
	OperationInspect   OperationType = "INSPECTION"
)

type Zone string

const (
	ZoneQuay1   Zone = "QUAY_1"
	ZoneQuay2   Zone = "QUAY_2_ROAD"
	ZoneStorage Zone = "STORAGE_AREA"
	ZoneCustoms Zone = "CUSTOMS_CONTROL"
)

type RecentOperation struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      OperationType `json:"type"`
	Zone      Zone          `json:"zone"`
	Equipment string        `json:"equipment"`
	Duration  float64       `json:"duration_minutes"`
	Urgent    bool          `json:"urgent"`
	Error     bool          `json:"error"`
}

// PeriodDataset is the full operational picture for one period. Built once
// per load and never mutated afterwards.
type PeriodDataset struct {
	Selection PeriodSelection   `json:"selection"`
	Daily     []DailyActivity   `json:"daily"`
	Equipment []EquipmentStat   `json:"equipment"`
	Hourly    []HourlyBucket    `json:"hourly"`
	Recent    []RecentOperation `json:"recent"`
}

// IsEmpty reports whether any required sub-collection is missing.
func (d *PeriodDataset) IsEmpty() bool {
	return len(d.Daily) == 0 || len(d.Equipment) == 0 || len(d.Hourly) == 0
}
