package auth

import (
	"github.com/spec-kit/employee-directory/internal/config"
	"github.com/spec-kit/employee-directory/internal/domain"
)

// Action enumerates the guarded operations.
type Action string

const (
	ActionViewEmployees   Action = "view_employees"
	ActionManageEmployees Action = "manage_employees"
	ActionViewDashboard   Action = "view_dashboard"
	ActionViewVisitorLog  Action = "view_visitor_log"
)

// Decision is the outcome of an access check. When not allowed, Redirect
// names the view the caller is sent to and Notice carries the user-visible
// message, if any.
type Decision struct {
	Allowed  bool
	Redirect string
	Notice   string
}

// Policy is the single access-control decision point. Every guarded route
// consults it before the handler runs.
type Policy struct {
	visitorView bool
}

// NewPolicy builds the policy from configuration.
func NewPolicy(cfg config.PolicyConfig) Policy {
	return Policy{visitorView: cfg.VisitorView}
}

// Decide maps the session role and attempted action to an allow/deny
// decision. Anonymous callers are sent to the login entry point; an
// authenticated non-admin attempting an admin action is sent back to the
// employee listing with a notice.
func (p Policy) Decide(role domain.Role, action Action) Decision {
	if role == domain.RoleAdmin {
		return Decision{Allowed: true}
	}

	if role == domain.RoleVisitor {
		if action == ActionViewEmployees {
			if p.visitorView {
				return Decision{Allowed: true}
			}
			return Decision{Redirect: "/login", Notice: "Admin access required."}
		}
		return Decision{Redirect: "/employees", Notice: "Admin access required."}
	}

	return Decision{Redirect: "/login"}
}
