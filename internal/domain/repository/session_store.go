package repository

import (
	"context"
	"time"

	"github.com/gbgescom/supermarche-api/internal/domain/entity"
)

// SessionStore define el puerto del almacén de sesiones (Redis en
// producción, fake en memoria en tests). Las sesiones expiran por TTL.
type SessionStore interface {
	Put(ctx context.Context, session *entity.Session, ttl time.Duration) error
	// Get retorna (nil, nil) si la sesión no existe o expiró.
	Get(ctx context.Context, id string) (*entity.Session, error)
	// Delete es idempotente: borrar una sesión ausente no es error.
	Delete(ctx context.Context, id string) error
}
