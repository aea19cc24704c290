package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/domain"
)

const principalKey = "auth_principal"

// SessionCookie is the cookie holding the signed session token.
const SessionCookie = "session_token"

// Principal represents the caller for the duration of one request. A request
// without a valid session is an anonymous principal, not an error.
type Principal struct {
	Role    domain.Role
	Session *domain.Session
}

// SessionMiddleware resolves the session cookie into a Principal.
type SessionMiddleware struct {
	tokens *TokenManager
	store  SessionStore
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager, store SessionStore) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, store: store}
}

// Handle loads the principal for every request. Missing, malformed, or
// expired sessions degrade to anonymous; the policy guard decides what
// anonymous may reach.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	principal := &Principal{Role: domain.RoleAnonymous}
	c.Locals(principalKey, principal)

	cookie := c.Cookies(SessionCookie)
	if cookie == "" {
		return c.Next()
	}

	sessionID, err := m.tokens.ParseToken(cookie)
	if err != nil {
		return c.Next()
	}

	session, err := m.store.Get(c.Context(), sessionID)
	if err != nil {
		return c.Next()
	}

	principal.Role = session.Role
	principal.Session = session
	return c.Next()
}

// PrincipalFromContext retrieves the caller loaded by SessionMiddleware.
func PrincipalFromContext(c *fiber.Ctx) *Principal {
	if val := c.Locals(principalKey); val != nil {
		if principal, ok := val.(*Principal); ok {
			return principal
		}
	}
	return &Principal{Role: domain.RoleAnonymous}
}

// Require gates a route on the policy decision for the given action. Denied
// requests are redirected before the handler or any store operation runs.
func Require(policy Policy, action Action, store SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := PrincipalFromContext(c)
		decision := policy.Decide(principal.Role, action)
		if decision.Allowed {
			return c.Next()
		}

		if decision.Notice != "" && principal.Session != nil {
			_ = store.PutFlash(c.Context(), principal.Session.ID, decision.Notice)
		}
		return c.Redirect(decision.Redirect, fiber.StatusFound)
	}
}
