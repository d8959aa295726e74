package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockFilter valores reconocidos para el filtro de stock del listado.
const (
	StockFilterNone    = ""
	StockFilterEnStock = "en_stock"
	StockFilterRupture = "rupture"
)

// Produit representa un artículo del catálogo del supermercado.
// Code es la clave de negocio (única); Famille es una etiqueta libre,
// distinta de la relación formal con Categorie.
type Produit struct {
	ID           string
	Code         string // clave de negocio, única
	Designation  string
	Famille      string
	Unite        string
	PrixTotal    decimal.Decimal
	PrixBoutique decimal.Decimal
	PrixMagasin1 decimal.Decimal
	PrixMagasin2 decimal.Decimal
	PrixMagasin3 decimal.Decimal
	StockAffiche int
	StockMinimal int
	StockRevient int
	CategorieID  string // vacío si no tiene categoría asignada
	DateCreation time.Time
}

// EnRupture indica si el stock mostrado está en o bajo el umbral de reposición.
func (p *Produit) EnRupture() bool {
	return p.StockAffiche <= p.StockMinimal
}
