package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

// UsersConfig represents the users file
type UsersConfig struct {
	Users []User `yaml:"users"`
}

// Validate validates the users configuration
func (c *UsersConfig) Validate() error {
	if len(c.Users) == 0 {
		return goerr.New("at least one user is required")
	}

	seen := make(map[types.Username]bool)
	for i := range c.Users {
		u := &c.Users[i]
		if err := u.Validate(); err != nil {
			return goerr.Wrap(err, "invalid user at index",
				goerr.V("index", i),
				goerr.V("username", u.Username))
		}

		if seen[u.Username] {
			return goerr.New("duplicate username",
				goerr.V("username", u.Username))
		}
		seen[u.Username] = true
	}

	return nil
}

// FindUser finds a user by name
func (c *UsersConfig) FindUser(name types.Username) *User {
	for _, u := range c.Users {
		if u.Username == name {
			result := u
			return &result
		}
	}
	return nil
}

// Validate validates a single user entry. An empty role defaults to viewer.
func (u *User) Validate() error {
	if u.Username == "" {
		return goerr.New("username is required")
	}
	if !strings.HasPrefix(u.PasswordHash, "$2") {
		return goerr.New("password_hash must be a bcrypt hash")
	}
	if u.CompanyID <= 0 {
		return goerr.New("company_id must be positive",
			goerr.V("company_id", u.CompanyID))
	}
	if u.Role == "" {
		u.Role = types.RoleViewer
	}
	if !u.Role.IsValid() {
		return goerr.New("invalid role", goerr.V("role", u.Role))
	}
	return nil
}
