package postgres

import (
	"context"
	"fmt"

	"github.com/gbgescom/supermarche-api/internal/domain/entity"
	"github.com/gbgescom/supermarche-api/internal/domain/repository"
)

var _ repository.CategorieRepository = (*CategorieRepo)(nil)

// CategorieRepo implementación del puerto CategorieRepository sobre PostgreSQL.
type CategorieRepo struct {
	q Querier
}

// NewCategorieRepository construye el adaptador de persistencia para categorías.
func NewCategorieRepository(q Querier) *CategorieRepo {
	return &CategorieRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategorieRepo) Create(cat *entity.Categorie) error {
	query := `INSERT INTO categories (id, nom, date_creation) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, cat.ID, cat.Nom, cat.DateCreation)
	if err != nil {
		return fmt.Errorf("insert categorie: %w", err)
	}
	return nil
}

// List devuelve todas las categorías en orden de inserción.
func (r *CategorieRepo) List() ([]*entity.Categorie, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nom, date_creation FROM categories ORDER BY date_creation ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categorie
	for rows.Next() {
		var c entity.Categorie
		if err := rows.Scan(&c.ID, &c.Nom, &c.DateCreation); err != nil {
			return nil, fmt.Errorf("scan categorie: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count total de categorías (usado por el seeder).
func (r *CategorieRepo) Count() (int64, error) {
	var count int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}
