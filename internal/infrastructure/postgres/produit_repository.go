package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/gbgescom/supermarche-api/internal/domain"
	"github.com/gbgescom/supermarche-api/internal/domain/entity"
	"github.com/gbgescom/supermarche-api/internal/domain/repository"
)

var _ repository.ProduitRepository = (*ProduitRepo)(nil)

const produitColumns = `id, code, designation, famille, unite,
	prix_total, prix_boutique, prix_magasin1, prix_magasin2, prix_magasin3,
	stock_affiche, stock_minimal, stock_revient, categorie_id, date_creation`

// ProduitRepo implementación del puerto ProduitRepository sobre PostgreSQL
// (usable con pool o tx).
type ProduitRepo struct {
	q Querier
}

// NewProduitRepository construye el adaptador de persistencia para
// productos. Pasar pool o tx (Querier).
func NewProduitRepository(q Querier) *ProduitRepo {
	return &ProduitRepo{q: q}
}

// Create persiste un nuevo producto. Un code duplicado retorna ErrDuplicate.
func (r *ProduitRepo) Create(p *entity.Produit) error {
	query := `
		INSERT INTO produits (id, code, designation, famille, unite,
			prix_total, prix_boutique, prix_magasin1, prix_magasin2, prix_magasin3,
			stock_affiche, stock_minimal, stock_revient, categorie_id, date_creation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14, ''), $15)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Code, p.Designation, p.Famille, p.Unite,
		p.PrixTotal, p.PrixBoutique, p.PrixMagasin1, p.PrixMagasin2, p.PrixMagasin3,
		p.StockAffiche, p.StockMinimal, p.StockRevient, p.CategorieID, p.DateCreation,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produit: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProduitRepo) GetByID(id string) (*entity.Produit, error) {
	query := `SELECT ` + produitColumns + ` FROM produits WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get produit")
}

// GetByCode obtiene un producto por su clave de negocio; (nil, nil) si no existe.
func (r *ProduitRepo) GetByCode(code string) (*entity.Produit, error) {
	query := `SELECT ` + produitColumns + ` FROM produits WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get produit by code")
}

// Update reemplaza los campos editables de la fila. Un code duplicado
// retorna ErrDuplicate; una fila ausente retorna ErrNotFound.
func (r *ProduitRepo) Update(p *entity.Produit) error {
	query := `
		UPDATE produits SET code = $2, designation = $3, famille = $4, unite = $5,
			prix_total = $6, prix_boutique = $7, prix_magasin1 = $8, prix_magasin2 = $9, prix_magasin3 = $10,
			stock_affiche = $11, stock_minimal = $12, stock_revient = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Code, p.Designation, p.Famille, p.Unite,
		p.PrixTotal, p.PrixBoutique, p.PrixMagasin1, p.PrixMagasin2, p.PrixMagasin3,
		p.StockAffiche, p.StockMinimal, p.StockRevient,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update produit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List aplica los filtros con AND y devuelve el conjunto completo en orden
// de inserción (date_creation ASC, id ASC).
func (r *ProduitRepo) List(filter repository.ProduitFilter) ([]*entity.Produit, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Search != "" {
		n := arg("%" + filter.Search + "%")
		where = append(where, fmt.Sprintf("(code ILIKE %s OR designation ILIKE %s)", n, n))
	}
	if filter.Famille != "" {
		where = append(where, "famille = "+arg(filter.Famille))
	}
	switch filter.StockFilter {
	case entity.StockFilterEnStock:
		where = append(where, "stock_affiche > 0")
	case entity.StockFilterRupture:
		where = append(where, "stock_affiche <= stock_minimal")
	}

	query := `SELECT ` + produitColumns + ` FROM produits`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date_creation ASC, id ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produits: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// DistinctFamilles valores de famille presentes en los datos vivos.
func (r *ProduitRepo) DistinctFamilles() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT famille FROM produits ORDER BY famille`)
	if err != nil {
		return nil, fmt.Errorf("distinct familles: %w", err)
	}
	defer rows.Close()
	var familles []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("scan famille: %w", err)
		}
		familles = append(familles, f)
	}
	return familles, rows.Err()
}

// ListLowStock productos en o bajo el umbral, orden estable por
// stock_affiche ASC, id ASC. limit <= 0 lista todo.
func (r *ProduitRepo) ListLowStock(limit int) ([]*entity.Produit, error) {
	query := `SELECT ` + produitColumns + ` FROM produits
		WHERE stock_affiche <= stock_minimal
		ORDER BY stock_affiche ASC, id ASC`
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.q.Query(context.Background(), query+" LIMIT $1", limit)
	} else {
		rows, err = r.q.Query(context.Background(), query)
	}
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Stats agregados del reporte. COALESCE garantiza valorización 0 (nunca
// NULL) con catálogo vacío.
func (r *ProduitRepo) Stats() (*repository.RapportStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE stock_affiche <= stock_minimal),
		       COALESCE(SUM(prix_total * stock_affiche), 0)
		FROM produits`
	var stats repository.RapportStats
	err := r.q.QueryRow(context.Background(), query).Scan(
		&stats.TotalProduits, &stats.ProduitsRupture, &stats.ValeurStock,
	)
	if err != nil {
		return nil, fmt.Errorf("stats produits: %w", err)
	}
	return &stats, nil
}

// Delete elimina una fila; ErrNotFound si no existía.
func (r *ProduitRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM produits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll vacía la tabla y retorna cuántas filas borró.
func (r *ProduitRepo) DeleteAll() (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM produits`)
	if err != nil {
		return 0, fmt.Errorf("delete all produits: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *ProduitRepo) scanOne(row pgx.Row, op string) (*entity.Produit, error) {
	var (
		p           entity.Produit
		categorieID *string
	)
	err := row.Scan(
		&p.ID, &p.Code, &p.Designation, &p.Famille, &p.Unite,
		&p.PrixTotal, &p.PrixBoutique, &p.PrixMagasin1, &p.PrixMagasin2, &p.PrixMagasin3,
		&p.StockAffiche, &p.StockMinimal, &p.StockRevient, &categorieID, &p.DateCreation,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if categorieID != nil {
		p.CategorieID = *categorieID
	}
	return &p, nil
}

func (r *ProduitRepo) scanAll(rows pgx.Rows) ([]*entity.Produit, error) {
	var list []*entity.Produit
	for rows.Next() {
		var (
			p           entity.Produit
			categorieID *string
		)
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Designation, &p.Famille, &p.Unite,
			&p.PrixTotal, &p.PrixBoutique, &p.PrixMagasin1, &p.PrixMagasin2, &p.PrixMagasin3,
			&p.StockAffiche, &p.StockMinimal, &p.StockRevient, &categorieID, &p.DateCreation,
		); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		if categorieID != nil {
			p.CategorieID = *categorieID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
