package rbac_test

import (
	"testing"

	"restropay/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestRBACService_Enforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"staff reads estimations", rbac.RoleStaff, "estimation", "read", true},
		{"staff cannot record payments", rbac.RoleStaff, "payment", "create", false},
		{"staff cannot delete employees", rbac.RoleStaff, "employee", "delete", false},
		{"manager records payments", rbac.RoleManager, "payment", "create", true},
		{"manager inherits staff reads", rbac.RoleManager, "absence", "read", true},
		{"manager cannot delete employees", rbac.RoleManager, "employee", "delete", false},
		{"owner deletes employees", rbac.RoleOwner, "employee", "delete", true},
		{"owner inherits manager writes", rbac.RoleOwner, "absence", "create", true},
		{"unknown role denied", "COOK", "employee", "read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(rbac.EnforceRequest{
				Role:     tt.role,
				Resource: tt.resource,
				Action:   tt.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}
