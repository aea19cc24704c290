package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/config"
	"github.com/spec-kit/employee-directory/internal/domain"
)

func TestPolicyDecide(t *testing.T) {
	policy := auth.NewPolicy(config.PolicyConfig{VisitorView: true})

	cases := []struct {
		name     string
		role     domain.Role
		action   auth.Action
		allowed  bool
		redirect string
	}{
		{"admin views employees", domain.RoleAdmin, auth.ActionViewEmployees, true, ""},
		{"admin manages employees", domain.RoleAdmin, auth.ActionManageEmployees, true, ""},
		{"admin views dashboard", domain.RoleAdmin, auth.ActionViewDashboard, true, ""},
		{"admin views visitor log", domain.RoleAdmin, auth.ActionViewVisitorLog, true, ""},
		{"visitor views employees", domain.RoleVisitor, auth.ActionViewEmployees, true, ""},
		{"visitor manages employees", domain.RoleVisitor, auth.ActionManageEmployees, false, "/employees"},
		{"visitor views dashboard", domain.RoleVisitor, auth.ActionViewDashboard, false, "/employees"},
		{"visitor views visitor log", domain.RoleVisitor, auth.ActionViewVisitorLog, false, "/employees"},
		{"anonymous views employees", domain.RoleAnonymous, auth.ActionViewEmployees, false, "/login"},
		{"anonymous manages employees", domain.RoleAnonymous, auth.ActionManageEmployees, false, "/login"},
		{"anonymous views dashboard", domain.RoleAnonymous, auth.ActionViewDashboard, false, "/login"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := policy.Decide(tc.role, tc.action)
			assert.Equal(t, tc.allowed, decision.Allowed)
			if !tc.allowed {
				assert.Equal(t, tc.redirect, decision.Redirect)
			}
		})
	}
}

func TestPolicyNonAdminDenialCarriesNotice(t *testing.T) {
	policy := auth.NewPolicy(config.PolicyConfig{VisitorView: true})

	decision := policy.Decide(domain.RoleVisitor, auth.ActionViewDashboard)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "Admin access required.", decision.Notice)
}

func TestPolicyVisitorViewDisabled(t *testing.T) {
	policy := auth.NewPolicy(config.PolicyConfig{VisitorView: false})

	decision := policy.Decide(domain.RoleVisitor, auth.ActionViewEmployees)
	assert.False(t, decision.Allowed)
	assert.Equal(t, "/login", decision.Redirect)

	decision = policy.Decide(domain.RoleAdmin, auth.ActionViewEmployees)
	assert.True(t, decision.Allowed)
}
