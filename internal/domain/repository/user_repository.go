package repository

import "github.com/gbgescom/supermarche-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
	FindByID(id string) (*entity.User, error)
	Count() (int64, error)
}
