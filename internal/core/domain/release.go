package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Release is one work period of a user on one calendar date: a start and
// end time, a free-text description and the computed hour total. The
// Holiday flag records whether the date was a declared holiday at the
// time the entry was written.
type Release struct {
	ReleaseID   string          `json:"releaseID"`
	UserID      string          `json:"userID"`
	Date        time.Time       `json:"date"`
	StartHour   time.Time       `json:"startHour"`
	EndHour     time.Time       `json:"endHour"`
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
	Holiday     bool            `json:"holiday"`
	AuditFields
}
