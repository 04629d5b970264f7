package types_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/opsnexus/opsnexus/pkg/domain/types"
)

func TestRoleValidation(t *testing.T) {
	tests := []struct {
		name     string
		role     types.Role
		expected bool
	}{
		{"Valid manager", types.RoleManager, true},
		{"Valid operator", types.RoleOperator, true},
		{"Valid viewer", types.RoleViewer, true},
		{"Invalid empty", types.Role(""), false},
		{"Invalid mixed case", types.Role("Manager"), false},
		{"Invalid unknown", types.Role("admin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.role.IsValid()
			if result != tt.expected {
				t.Errorf("Role(%q).IsValid() = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestIDString(t *testing.T) {
	if got := types.AlertID(1234).String(); got != "1234" {
		t.Errorf("AlertID.String() = %q", got)
	}
	if got := types.TicketID(98765).String(); got != "98765" {
		t.Errorf("TicketID.String() = %q", got)
	}
	if got := types.CompanyID(101).String(); got != "101" {
		t.Errorf("CompanyID.String() = %q", got)
	}
}

func TestNewTokenID(t *testing.T) {
	id1, err := types.NewTokenID()
	if err != nil {
		t.Fatal(err)
	}
	id2, err := types.NewTokenID()
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Error("token IDs must be unique")
	}

	parsed, err := uuid.Parse(id1.String())
	if err != nil {
		t.Fatalf("token ID is not a UUID: %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("token ID version = %d, want 7", parsed.Version())
	}
}
