package entity

import "time"

// Session contexto de autenticación por cliente. Vive solo en el Session
// Store (Redis), nunca en la base relacional. Los campos son un snapshot
// tomado al hacer login; Role no se refresca hasta el próximo login.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	NomComplet string    `json:"nom_complet"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// IsAdmin indica si la sesión pertenece a una cuenta administradora.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
