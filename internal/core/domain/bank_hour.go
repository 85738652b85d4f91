package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankHour is a user's compensatory-hours ledger: a single row per user
// holding the running signed balance plus the date and description of the
// most recent adjustment. Adjustments accrue into Hours; no per-adjustment
// history is kept.
type BankHour struct {
	BankHourID  string          `json:"bankHourID"`
	UserID      string          `json:"userID"`
	Date        time.Time       `json:"date"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
}
