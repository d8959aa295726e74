package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gbgescom/supermarche-api/internal/application/auth"
	"github.com/gbgescom/supermarche-api/internal/domain/entity"
	"github.com/gbgescom/supermarche-api/pkg/token"
)

// SessionCookie nombre de la cookie que sostiene el token de sesión firmado.
const SessionCookie = "session_token"

// LocalSession clave de c.Locals donde el middleware deja la sesión cargada.
const LocalSession = "session"

// SessionMiddleware valida el token de la cookie, carga la sesión desde el
// store y la deja en c.Locals. Toda falta de autenticación redirige al
// login (nunca al aviso de privilegios): el orden autenticación-antes-que-
// autorización se garantiza encadenando este middleware antes de RequireAdmin.
func SessionMiddleware(secret string, authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(SessionCookie)
		if raw == "" {
			return c.Redirect("/login")
		}
		sessionID, err := token.Parse(secret, raw)
		if err != nil {
			clearSessionCookie(c)
			return c.Redirect("/login")
		}
		session, err := authUC.Resolve(c.Context(), sessionID)
		if err != nil {
			return fiber.ErrInternalServerError
		}
		if err := authUC.Authorize(session, ""); err != nil {
			// Sesión expirada o destruida en el store
			clearSessionCookie(c)
			return c.Redirect("/login")
		}
		c.Locals(LocalSession, session)
		return c.Next()
	}
}

// RequireAdmin autoriza por rol después del SessionMiddleware. Un usuario
// autenticado sin privilegios vuelve al dashboard (no al login): es una
// falla de "no puedes hacer eso", no de "quién eres".
func RequireAdmin(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := GetSession(c)
		if err := authUC.Authorize(session, entity.RoleAdmin); err != nil {
			return c.Redirect("/dashboard?erreur=acces-refuse")
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del middleware).
func GetSession(c *fiber.Ctx) *entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*entity.Session)
	return s
}

func setSessionCookie(c *fiber.Ctx, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
