package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProduitForm campos del formulario de creación/modificación tal como
// llegan del cliente: los nueve campos son obligatorios en cada envío y
// los numéricos viajan como texto (el use case los parsea; un parse
// fallido aborta la mutación completa).
type ProduitForm struct {
	Code         string `form:"code" json:"code"`
	Designation  string `form:"designation" json:"designation"`
	Famille      string `form:"famille" json:"famille"`
	Unite        string `form:"unite" json:"unite"`
	PrixTotal    string `form:"prix_total" json:"prix_total"`
	PrixBoutique string `form:"prix_boutique" json:"prix_boutique"`
	PrixMagasin1 string `form:"prix_magasin1" json:"prix_magasin1"`
	PrixMagasin2 string `form:"prix_magasin2" json:"prix_magasin2"`
	PrixMagasin3 string `form:"prix_magasin3" json:"prix_magasin3"`
	StockAffiche string `form:"stock_affiche" json:"stock_affiche"`
	StockMinimal string `form:"stock_minimal" json:"stock_minimal"`
	StockRevient string `form:"stock_revient" json:"stock_revient"`
}

// ProduitResponse salida de un producto.
type ProduitResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Designation  string          `json:"designation"`
	Famille      string          `json:"famille"`
	Unite        string          `json:"unite"`
	PrixTotal    decimal.Decimal `json:"prix_total"`
	PrixBoutique decimal.Decimal `json:"prix_boutique"`
	PrixMagasin1 decimal.Decimal `json:"prix_magasin1"`
	PrixMagasin2 decimal.Decimal `json:"prix_magasin2"`
	PrixMagasin3 decimal.Decimal `json:"prix_magasin3"`
	StockAffiche int             `json:"stock_affiche"`
	StockMinimal int             `json:"stock_minimal"`
	StockRevient int             `json:"stock_revient"`
	CategorieID  string          `json:"categorie_id,omitempty"`
	DateCreation time.Time       `json:"date_creation"`
}

// ProduitListResponse listado filtrado con eco de los filtros aplicados y
// las familles disponibles para poblar el selector.
type ProduitListResponse struct {
	Produits    []ProduitResponse `json:"produits"`
	Familles    []string          `json:"familles"`
	Search      string            `json:"search"`
	Famille     string            `json:"famille"`
	StockFilter string            `json:"stock_filter"`
}

// AlerteStock entrada del endpoint JSON de alertas (máximo 5).
type AlerteStock struct {
	Code         string `json:"code"`
	Designation  string `json:"designation"`
	StockAffiche int    `json:"stock_affiche"`
	StockMinimal int    `json:"stock_minimal"`
}

// RapportResponse agregados del reporte de administración.
type RapportResponse struct {
	TotalProduits   int64           `json:"total_produits"`
	ProduitsRupture int64           `json:"produits_rupture"`
	ValeurStock     decimal.Decimal `json:"valeur_stock"`
}
