package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gbgescom/supermarche-api/internal/application/auth"
	"github.com/gbgescom/supermarche-api/internal/application/dto"
	"github.com/gbgescom/supermarche-api/internal/domain"
	"github.com/gbgescom/supermarche-api/pkg/token"
)

// AuthHandler maneja login, logout y el eco de identidad del dashboard.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	secret string
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, secret string) *AuthHandler {
	return &AuthHandler{uc: uc, secret: secret}
}

// Login procesa el formulario de credenciales. El mensaje de fallo es el
// mismo para usuario inexistente y password incorrecto.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: domain.ErrInvalidCredentials.Error()})
	}
	session, err := h.uc.Authenticate(c.Context(), in.Username, in.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: domain.ErrInvalidCredentials.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	signed, err := token.Sign(h.secret, session.ID, h.uc.TTL())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	setSessionCookie(c, signed, h.uc.TTL())
	return c.Redirect("/dashboard")
}

// Logout destruye la sesión (idempotente) y limpia la cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if raw := c.Cookies(SessionCookie); raw != "" {
		if sessionID, err := token.Parse(h.secret, raw); err == nil {
			if err := h.uc.Logout(c.Context(), sessionID); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
			}
		}
	}
	clearSessionCookie(c)
	return c.Redirect("/login")
}

// Dashboard eco de la identidad de la sesión activa.
func (h *AuthHandler) Dashboard(c *fiber.Ctx) error {
	session := GetSession(c)
	return c.JSON(dto.SessionResponse{
		UserID:     session.UserID,
		Username:   session.Username,
		NomComplet: session.NomComplet,
		Role:       session.Role,
		ExpiresAt:  session.ExpiresAt,
	})
}
