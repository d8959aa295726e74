package auth

import (
	"context"
	"time"

	"github.com/gbgescom/supermarche-api/internal/domain"
	"github.com/gbgescom/supermarche-api/internal/domain/entity"
	"github.com/gbgescom/supermarche-api/internal/domain/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase puerta de autenticación/autorización: valida credenciales,
// crea y destruye sesiones, y decide el acceso por rol.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions repository.SessionStore
	ttl      time.Duration
}

// NewAuthUseCase construye la puerta de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions repository.SessionStore, ttl time.Duration) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, ttl: ttl}
}

// Authenticate verifica username/password y crea la sesión en el store.
// Usuario inexistente y password incorrecto retornan exactamente el mismo
// error (sin señal de enumeración de usuarios). Solo se muta el Session
// Store, nunca la base relacional.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*entity.Session, error) {
	user, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	now := time.Now()
	session := &entity.Session{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		Username:   user.Username,
		NomComplet: user.NomComplet,
		Role:       user.Role, // snapshot: no se refresca hasta el próximo login
		CreatedAt:  now,
		ExpiresAt:  now.Add(uc.ttl),
	}
	if err := uc.sessions.Put(ctx, session, uc.ttl); err != nil {
		return nil, err
	}
	return session, nil
}

// Authorize decide el acceso. El orden importa: primero autenticación
// (sesión presente), después autorización (rol requerido). Una sesión
// ausente retorna siempre ErrNotAuthenticated, nunca ErrForbidden.
func (uc *AuthUseCase) Authorize(session *entity.Session, requiredRole string) error {
	if session == nil {
		return domain.ErrNotAuthenticated
	}
	if requiredRole != "" && session.Role != requiredRole {
		return domain.ErrForbidden
	}
	return nil
}

// Resolve carga la sesión asociada a un ID; (nil, nil) si no existe o expiró.
func (uc *AuthUseCase) Resolve(ctx context.Context, sessionID string) (*entity.Session, error) {
	return uc.sessions.Get(ctx, sessionID)
}

// Logout destruye la sesión en el store. Idempotente: destruir una sesión
// ya ausente no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

// TTL duración de vida configurada para sesiones nuevas.
func (uc *AuthUseCase) TTL() time.Duration {
	return uc.ttl
}
