package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the immutable closure snapshot of one (user, year, month):
// the accumulated hours, the monetary total, the hourly rate used and the
// bank-hours balance at closure time. At most one payment exists per key;
// once written it is never updated.
type Payment struct {
	PaymentID       string          `json:"paymentID"`
	UserID          string          `json:"userID"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	TotalHours      decimal.Decimal `json:"totalHours"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	HourValue       decimal.Decimal `json:"hourValue"`
	PaymentDate     time.Time       `json:"paymentDate"`
	CurrentTimeBank decimal.Decimal `json:"currentTimeBank"`
}
