package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pontualize/timesheet_app/internal/core/domain"
)

// CreateUserRequest defines the payload for creating a user.
type CreateUserRequest struct {
	Name          string          `json:"name" binding:"required"`
	Email         string          `json:"email" binding:"required,email"`
	Password      string          `json:"password" binding:"required,min=8"`
	Team          string          `json:"team" binding:"required"`
	HourValue     decimal.Decimal `json:"hourValue"`
	HasBankHours  bool            `json:"hasBankHours"`
	ContractTotal decimal.Decimal `json:"contractTotal"`
	GroupID       string          `json:"groupId" binding:"required,uuid"`
	StartDate     time.Time       `json:"startDate" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name          *string          `json:"name"`
	Email         *string          `json:"email" binding:"omitempty,email"`
	Team          *string          `json:"team"`
	HourValue     *decimal.Decimal `json:"hourValue"`
	HasBankHours  *bool            `json:"hasBankHours"`
	ContractTotal *decimal.Decimal `json:"contractTotal"`
	GroupID       *string          `json:"groupId" binding:"omitempty,uuid"`
	StartDate     *time.Time       `json:"startDate"`
}

// ChangeUserPasswordRequest carries the replacement password for the
// administrative password change.
type ChangeUserPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=32"`
}

// BankHourAdjustmentRequest is a signed adjustment to a user's bank-hours ledger.
type BankHourAdjustmentRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Balance     decimal.Decimal `json:"balance" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// UserResponse is the outward projection of a user.
type UserResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Team           string          `json:"team"`
	HourValue      decimal.Decimal `json:"hourValue"`
	HasBankHours   bool            `json:"hasBankHours"`
	TotalBankHours decimal.Decimal `json:"totalBankHours"`
	ContractTotal  decimal.Decimal `json:"contractTotal"`
	GroupID        string          `json:"groupId"`
	GroupName      string          `json:"groupName"`
	StartDate      time.Time       `json:"startDate"`
}

// ToUserResponse converts a domain.User plus its resolved group name and
// bank-hours balance to the response DTO.
func ToUserResponse(user *domain.User, groupName string, bankHours decimal.Decimal) UserResponse {
	return UserResponse{
		ID:             user.UserID,
		Name:           user.Name,
		Email:          user.Email,
		Team:           user.Team,
		HourValue:      user.HourValue,
		HasBankHours:   user.HasBankHours,
		TotalBankHours: bankHours,
		ContractTotal:  user.ContractTotal,
		GroupID:        user.GroupID,
		GroupName:      groupName,
		StartDate:      user.StartDate,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}
