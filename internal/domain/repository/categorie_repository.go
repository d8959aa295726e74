package repository

import "github.com/gbgescom/supermarche-api/internal/domain/entity"

// CategorieRepository define el puerto de persistencia para Categorie (DIP).
type CategorieRepository interface {
	Create(categorie *entity.Categorie) error
	List() ([]*entity.Categorie, error)
	Count() (int64, error)
}
