package repository

import (
	"github.com/gbgescom/supermarche-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProduitFilter criterios de listado. Los tres filtros componen con AND;
// un campo vacío no filtra.
type ProduitFilter struct {
	Search      string // substring (insensible a mayúsculas) sobre code O designation
	Famille     string // igualdad exacta sobre famille
	StockFilter string // "", "en_stock", "rupture" (ver entity.StockFilter*)
}

// RapportStats agregados para el reporte de administración.
type RapportStats struct {
	TotalProduits   int64
	ProduitsRupture int64
	ValeurStock     decimal.Decimal // suma de prix_total * stock_affiche
}

// ProduitRepository define el puerto de persistencia para Produit (DIP).
type ProduitRepository interface {
	Create(produit *entity.Produit) error
	GetByID(id string) (*entity.Produit, error)
	GetByCode(code string) (*entity.Produit, error)
	Update(produit *entity.Produit) error
	// List devuelve el conjunto completo que cumple el filtro, ordenado por
	// date_creation ASC, id ASC (orden de inserción, determinista).
	List(filter ProduitFilter) ([]*entity.Produit, error)
	// DistinctFamilles refleja los datos vivos, nunca un snapshot cacheado.
	DistinctFamilles() ([]string, error)
	// ListLowStock devuelve productos con stock_affiche <= stock_minimal,
	// ordenados por stock_affiche ASC, id ASC. limit <= 0 significa sin límite.
	ListLowStock(limit int) ([]*entity.Produit, error)
	// Stats calcula los agregados del reporte; con catálogo vacío la
	// valorización es decimal cero, nunca null.
	Stats() (*RapportStats, error)
	// Delete retorna domain.ErrNotFound si la fila no existe.
	Delete(id string) error
	// DeleteAll elimina todo el catálogo y retorna cuántas filas borró.
	DeleteAll() (int64, error)
}
