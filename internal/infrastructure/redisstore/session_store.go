// Package redisstore implementa el Session Store sobre Redis: un blob JSON
// por sesión bajo la clave session:<id>, con expiración delegada al TTL de
// Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gbgescom/supermarche-api/internal/domain/entity"
	"github.com/gbgescom/supermarche-api/internal/domain/repository"
	"github.com/gbgescom/supermarche-api/pkg/config"
)

var _ repository.SessionStore = (*SessionStore)(nil)

const keyPrefix = "session:"

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// SessionStore adaptador Redis del puerto SessionStore.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore construye el adaptador.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Put guarda la sesión serializada con el TTL indicado.
func (s *SessionStore) Put(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+session.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Get carga una sesión; (nil, nil) si no existe o ya expiró.
func (s *SessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("deserializar sesión: %w", err)
	}
	return &session, nil
}

// Delete destruye la sesión. Borrar una clave ausente no es error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
