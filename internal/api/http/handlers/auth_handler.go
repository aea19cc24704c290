package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/dto"
	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/service"
)

// AuthHandler exposes login, visitor registration, and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// LoginPrompt handles GET /login, the entry point anonymous callers are
// redirected to.
func (h *AuthHandler) LoginPrompt(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "authentication required; POST /login to sign in or POST /visit to register as a visitor",
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	_, token, err := h.auth.Login(c.Context(), req.Email, req.Password, req.Phone)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.Redirect("/employees", fiber.StatusFound)
}

// RegisterVisitor handles POST /visit.
func (h *AuthHandler) RegisterVisitor(c *fiber.Ctx) error {
	var req dto.VisitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	_, token, err := h.auth.RegisterVisitor(c.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.Redirect("/employees", fiber.StatusFound)
}

// Logout handles POST /logout. It always lands on the login prompt.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal := auth.PrincipalFromContext(c)
	if principal.Session != nil {
		if err := h.auth.Logout(c.Context(), principal.Session.ID); err != nil {
			return err
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/login", fiber.StatusFound)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
