package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opsnexus/opsnexus/pkg/domain/model"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

const testHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3D.qK3pG8YtFfSCt6lq6a5e"

// getTestUsers returns users for testing purposes
func getTestUsers() *model.UsersConfig {
	return &model.UsersConfig{
		Users: []model.User{
			{
				Username:     "admin",
				PasswordHash: testHash,
				CompanyID:    1,
				Role:         types.RoleManager,
			},
			{
				Username:     "manager1",
				PasswordHash: testHash,
				CompanyID:    101,
				Role:         types.RoleManager,
			},
		},
	}
}

func TestUsersConfigValidate(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		gt.NoError(t, getTestUsers().Validate())
	})

	t.Run("empty users", func(t *testing.T) {
		cfg := &model.UsersConfig{}
		gt.Error(t, cfg.Validate())
	})

	t.Run("duplicate username", func(t *testing.T) {
		cfg := getTestUsers()
		cfg.Users[1].Username = "admin"
		err := cfg.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("duplicate username")
	})

	t.Run("plaintext password rejected", func(t *testing.T) {
		cfg := getTestUsers()
		cfg.Users[0].PasswordHash = "password123"
		gt.Error(t, cfg.Validate())
	})

	t.Run("company must be positive", func(t *testing.T) {
		cfg := getTestUsers()
		cfg.Users[0].CompanyID = 0
		gt.Error(t, cfg.Validate())
	})

	t.Run("invalid role", func(t *testing.T) {
		cfg := getTestUsers()
		cfg.Users[0].Role = "root"
		gt.Error(t, cfg.Validate())
	})

	t.Run("empty role defaults to viewer", func(t *testing.T) {
		cfg := getTestUsers()
		cfg.Users[1].Role = ""
		gt.NoError(t, cfg.Validate())
		gt.Equal(t, types.RoleViewer, cfg.Users[1].Role)
	})
}

func TestUsersConfigFindUser(t *testing.T) {
	cfg := getTestUsers()

	u := cfg.FindUser("manager1")
	gt.V(t, u).NotNil()
	gt.Equal(t, types.CompanyID(101), u.CompanyID)

	// returned user is a copy
	u.CompanyID = 5
	gt.Equal(t, types.CompanyID(101), cfg.FindUser("manager1").CompanyID)

	gt.V(t, cfg.FindUser("nobody")).Nil()
}

func TestUserPublic(t *testing.T) {
	u := getTestUsers().FindUser("admin")
	pub := u.Public()
	gt.Equal(t, "", pub.PasswordHash)
	gt.Equal(t, u.Username, pub.Username)
	gt.Equal(t, u.CompanyID, pub.CompanyID)
}
