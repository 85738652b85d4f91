package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an employee of the company in the domain.
type User struct {
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	PasswordHash  string          `json:"-"`
	Team          string          `json:"team"`
	HourValue     decimal.Decimal `json:"hourValue"`
	HasBankHours  bool            `json:"hasBankHours"`
	ContractTotal decimal.Decimal `json:"contractTotal"`
	GroupID       string          `json:"groupID"`
	StartDate     time.Time       `json:"startDate"`
	AuditFields
}

// RecoverPassword is a pending password-recovery request. The record ID
// doubles as the opaque hash handed to the user, and Code is the 5-digit
// confirmation code they must echo back.
type RecoverPassword struct {
	ID     string
	UserID string
	Code   string
}
