package dto

import "time"

// LoginRequest credenciales crudas del formulario de login.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// SessionResponse identidad de la sesión activa (sin datos sensibles).
type SessionResponse struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	NomComplet string    `json:"nom_complet"`
	Role       string    `json:"role"`
	ExpiresAt  time.Time `json:"expires_at"`
}
