package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleUtilisateur = "utilisateur"
)

// User representa una cuenta del back-office.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	NomComplet   string
	Role         string // admin, utilisateur
	DateCreation time.Time
}
