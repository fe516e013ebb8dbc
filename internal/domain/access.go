package domain

import "time"

// AccessRecord is one row of the append-only shared-link access log.
type AccessRecord struct {
	ID          int64     `json:"id" db:"id"`
	Timestamp   time.Time `json:"timestamp" db:"ts"`
	LinkID      string    `json:"link_id" db:"link_id"`
	RemoteAddr  string    `json:"remote_addr" db:"remote_addr"`
	PeriodLabel string    `json:"period_label" db:"period_label"`
}
