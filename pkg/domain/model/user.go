package model

import (
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// User is a dashboard user loaded from the users file
type User struct {
	Username     types.Username  `yaml:"username" json:"username"`
	PasswordHash string          `yaml:"password_hash" json:"-"`
	CompanyID    types.CompanyID `yaml:"company_id" json:"company_id"`
	Role         types.Role      `yaml:"role" json:"role"`
}

// Public returns a copy safe to return from the API
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	return &User{
		Username:  u.Username,
		CompanyID: u.CompanyID,
		Role:      u.Role,
	}
}
