package types

import (
	"strconv"

	"github.com/google/uuid"
)

// AlertID represents an alert identifier
type AlertID int64

// String returns the string representation
func (id AlertID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// TicketID represents a ticket identifier
type TicketID int64

// String returns the string representation
func (id TicketID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ReportID represents a report identifier
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID
func NewReportID() ReportID {
	return ReportID(uuid.New().String())
}

// CompanyID identifies the tenant whose records a user may see
type CompanyID int64

// String returns the string representation
func (id CompanyID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Int64 returns the int64 representation
func (id CompanyID) Int64() int64 {
	return int64(id)
}

// Username represents a login name
type Username string

// String returns the string representation
func (u Username) String() string {
	return string(u)
}

// Role is the role granted to a user
type Role string

const (
	RoleManager  Role = "manager"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the role is known
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleOperator, RoleViewer:
		return true
	default:
		return false
	}
}

// TokenID is the unique identifier (jti) of an access token
type TokenID string

// String returns the string representation
func (id TokenID) String() string {
	return string(id)
}

// NewTokenID creates a new TokenID using UUID v7
func NewTokenID() (TokenID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return TokenID(id.String()), nil
}
