package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/gbgescom/supermarche-api/internal/application/dto"
	"github.com/gbgescom/supermarche-api/internal/domain"
	"github.com/gbgescom/supermarche-api/internal/domain/entity"
	"github.com/gbgescom/supermarche-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta fn con un repositorio atado a una transacción: un solo
// commit para todo el lote, rollback completo ante cualquier fallo.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.ProduitRepository) error) error
}

// ProduitUseCase motor de consultas y mutaciones del catálogo.
type ProduitUseCase struct {
	repo repository.ProduitRepository
	tx   TxRunner
}

// NewProduitUseCase construye el caso de uso.
func NewProduitUseCase(repo repository.ProduitRepository, tx TxRunner) *ProduitUseCase {
	return &ProduitUseCase{repo: repo, tx: tx}
}

// ── Consultas ─────────────────────────────────────────────────────────────────

// List devuelve el listado filtrado (sin paginación) junto con las familles
// vivas y el eco de los filtros, listo para poblar la vista.
func (uc *ProduitUseCase) List(filter repository.ProduitFilter) (*dto.ProduitListResponse, error) {
	produits, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	familles, err := uc.repo.DistinctFamilles()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProduitResponse, 0, len(produits))
	for _, p := range produits {
		items = append(items, *toProduitResponse(p))
	}
	return &dto.ProduitListResponse{
		Produits:    items,
		Familles:    familles,
		Search:      filter.Search,
		Famille:     filter.Famille,
		StockFilter: filter.StockFilter,
	}, nil
}

// LowStock productos con stock_affiche <= stock_minimal. limit <= 0 lista
// todo (vista de stock); el endpoint de alertas pasa 5.
func (uc *ProduitUseCase) LowStock(limit int) ([]dto.ProduitResponse, error) {
	produits, err := uc.repo.ListLowStock(limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProduitResponse, 0, len(produits))
	for _, p := range produits {
		items = append(items, *toProduitResponse(p))
	}
	return items, nil
}

// AlertesStock versión acotada para el endpoint JSON: máximo 5 entradas.
func (uc *ProduitUseCase) AlertesStock() ([]dto.AlerteStock, error) {
	produits, err := uc.repo.ListLowStock(5)
	if err != nil {
		return nil, err
	}
	alertes := make([]dto.AlerteStock, 0, len(produits))
	for _, p := range produits {
		alertes = append(alertes, dto.AlerteStock{
			Code:         p.Code,
			Designation:  p.Designation,
			StockAffiche: p.StockAffiche,
			StockMinimal: p.StockMinimal,
		})
	}
	return alertes, nil
}

// Rapport agregados del reporte: con catálogo vacío retorna {0, 0, 0}.
func (uc *ProduitUseCase) Rapport() (*dto.RapportResponse, error) {
	stats, err := uc.repo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.RapportResponse{
		TotalProduits:   stats.TotalProduits,
		ProduitsRupture: stats.ProduitsRupture,
		ValeurStock:     stats.ValeurStock,
	}, nil
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

// Create parsea el formulario y persiste el producto. Un parse fallido
// aborta sin persistir nada; un code duplicado retorna ErrDuplicate sin
// estado parcial.
func (uc *ProduitUseCase) Create(in dto.ProduitForm) (*dto.ProduitResponse, error) {
	if in.Code == "" || in.Designation == "" {
		return nil, domain.ErrInvalidInput
	}
	produit := &entity.Produit{
		ID:           uuid.New().String(),
		DateCreation: time.Now(),
	}
	if err := applyForm(produit, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(produit); err != nil {
		return nil, err
	}
	return toProduitResponse(produit), nil
}

// Update muta los nueve campos editables en su totalidad (sin patch
// parcial). ErrNotFound corta antes de tocar nada: un update a un id
// inexistente jamás crea una fila.
func (uc *ProduitUseCase) Update(id string, in dto.ProduitForm) (*dto.ProduitResponse, error) {
	produit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code == "" || in.Designation == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := applyForm(produit, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(produit); err != nil {
		return nil, err
	}
	return toProduitResponse(produit), nil
}

// Delete borra una fila; ErrNotFound si no existe (el caller debe saberlo).
func (uc *ProduitUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// DeleteAll vacía el catálogo y retorna cuántas filas se borraron.
func (uc *ProduitUseCase) DeleteAll() (int64, error) {
	return uc.repo.DeleteAll()
}

// DeleteSelected borra los ids indicados en una sola transacción: ids que
// no resuelven a una fila se saltan en silencio, el resto comparte un solo
// commit (un fallo en cualquier punto revierte el lote completo). Una
// selección vacía falla con ErrNoSelection antes de tocar el store.
func (uc *ProduitUseCase) DeleteSelected(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.ErrNoSelection
	}
	var deleted int64
	err := uc.tx.Run(ctx, func(repo repository.ProduitRepository) error {
		for _, id := range ids {
			produit, err := repo.GetByID(id)
			if err != nil {
				return err
			}
			if produit == nil {
				continue
			}
			if err := repo.Delete(produit.ID); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// applyForm vuelca los doce campos del formulario sobre la entidad. Los
// numéricos llegan como texto; primero se parsean todos en locales y solo
// si los doce son válidos se escribe sobre la entidad: un valor no
// parseable retorna ErrInvalidInput dejando la entidad intacta (el caller
// puede sostener una referencia viva del repositorio).
func applyForm(p *entity.Produit, in dto.ProduitForm) error {
	rawPrix := [...]string{in.PrixTotal, in.PrixBoutique, in.PrixMagasin1, in.PrixMagasin2, in.PrixMagasin3}
	var prix [len(rawPrix)]decimal.Decimal
	for i, raw := range rawPrix {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.ErrInvalidInput
		}
		prix[i] = v
	}
	rawStocks := [...]string{in.StockAffiche, in.StockMinimal, in.StockRevient}
	var stocks [len(rawStocks)]int
	for i, raw := range rawStocks {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ErrInvalidInput
		}
		stocks[i] = v
	}
	p.Code = in.Code
	p.Designation = in.Designation
	p.Famille = in.Famille
	p.Unite = in.Unite
	p.PrixTotal = prix[0]
	p.PrixBoutique = prix[1]
	p.PrixMagasin1 = prix[2]
	p.PrixMagasin2 = prix[3]
	p.PrixMagasin3 = prix[4]
	p.StockAffiche = stocks[0]
	p.StockMinimal = stocks[1]
	p.StockRevient = stocks[2]
	return nil
}

func toProduitResponse(p *entity.Produit) *dto.ProduitResponse {
	if p == nil {
		return nil
	}
	return &dto.ProduitResponse{
		ID:           p.ID,
		Code:         p.Code,
		Designation:  p.Designation,
		Famille:      p.Famille,
		Unite:        p.Unite,
		PrixTotal:    p.PrixTotal,
		PrixBoutique: p.PrixBoutique,
		PrixMagasin1: p.PrixMagasin1,
		PrixMagasin2: p.PrixMagasin2,
		PrixMagasin3: p.PrixMagasin3,
		StockAffiche: p.StockAffiche,
		StockMinimal: p.StockMinimal,
		StockRevient: p.StockRevient,
		CategorieID:  p.CategorieID,
		DateCreation: p.DateCreation,
	}
}
