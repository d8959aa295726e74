package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbgescom/supermarche-api/internal/application/dto"
	"github.com/gbgescom/supermarche-api/internal/application/usecase"
	"github.com/gbgescom/supermarche-api/internal/domain"
	"github.com/gbgescom/supermarche-api/internal/domain/entity"
	"github.com/gbgescom/supermarche-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de productos
// ──────────────────────────────────────────────────────────────────────────────

var errStoreDown = errors.New("persistencia caída")

type fakeProduitRepo struct {
	produits []*entity.Produit // orden de inserción
	touched  bool              // alguna operación llegó al store
	failOnID string            // simular fallo de persistencia al borrar este ID
}

var _ repository.ProduitRepository = (*fakeProduitRepo)(nil)

func newFakeProduitRepo() *fakeProduitRepo {
	return &fakeProduitRepo{}
}

func (r *fakeProduitRepo) Create(p *entity.Produit) error {
	r.touched = true
	for _, existing := range r.produits {
		if existing.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	r.produits = append(r.produits, p)
	return nil
}

func (r *fakeProduitRepo) GetByID(id string) (*entity.Produit, error) {
	r.touched = true
	for _, p := range r.produits {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProduitRepo) GetByCode(code string) (*entity.Produit, error) {
	r.touched = true
	for _, p := range r.produits {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProduitRepo) Update(p *entity.Produit) error {
	r.touched = true
	for _, existing := range r.produits {
		if existing.Code == p.Code && existing.ID != p.ID {
			return domain.ErrDuplicate
		}
	}
	for i, existing := range r.produits {
		if existing.ID == p.ID {
			r.produits[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProduitRepo) List(filter repository.ProduitFilter) ([]*entity.Produit, error) {
	r.touched = true
	var out []*entity.Produit
	for _, p := range r.produits {
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Code), needle) &&
				!strings.Contains(strings.ToLower(p.Designation), needle) {
				continue
			}
		}
		if filter.Famille != "" && p.Famille != filter.Famille {
			continue
		}
		switch filter.StockFilter {
		case entity.StockFilterEnStock:
			if p.StockAffiche <= 0 {
				continue
			}
		case entity.StockFilterRupture:
			if !p.EnRupture() {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProduitRepo) DistinctFamilles() ([]string, error) {
	r.touched = true
	seen := make(map[string]bool)
	var familles []string
	for _, p := range r.produits {
		if !seen[p.Famille] {
			seen[p.Famille] = true
			familles = append(familles, p.Famille)
		}
	}
	sort.Strings(familles)
	return familles, nil
}

func (r *fakeProduitRepo) ListLowStock(limit int) ([]*entity.Produit, error) {
	r.touched = true
	var out []*entity.Produit
	for _, p := range r.produits {
		if p.EnRupture() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StockAffiche < out[j].StockAffiche
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProduitRepo) Stats() (*repository.RapportStats, error) {
	r.touched = true
	stats := &repository.RapportStats{ValeurStock: decimal.Zero}
	for _, p := range r.produits {
		stats.TotalProduits++
		if p.EnRupture() {
			stats.ProduitsRupture++
		}
		stats.ValeurStock = stats.ValeurStock.Add(
			p.PrixTotal.Mul(decimal.NewFromInt(int64(p.StockAffiche))))
	}
	return stats, nil
}

func (r *fakeProduitRepo) Delete(id string) error {
	r.touched = true
	if r.failOnID != "" && r.failOnID == id {
		return errStoreDown
	}
	for i, p := range r.produits {
		if p.ID == id {
			r.produits = append(r.produits[:i], r.produits[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProduitRepo) DeleteAll() (int64, error) {
	r.touched = true
	count := int64(len(r.produits))
	r.produits = nil
	return count, nil
}

// fakeTxRunner ejecuta el callback contra el mismo fake y restaura el
// snapshot si fn falla (simula el rollback del lote completo).
type fakeTxRunner struct {
	repo *fakeProduitRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repo repository.ProduitRepository) error) error {
	snapshot := make([]*entity.Produit, len(t.repo.produits))
	copy(snapshot, t.repo.produits)
	if err := fn(t.repo); err != nil {
		t.repo.produits = snapshot
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildProduitUC() (*usecase.ProduitUseCase, *fakeProduitRepo) {
	repo := newFakeProduitRepo()
	return usecase.NewProduitUseCase(repo, &fakeTxRunner{repo: repo}), repo
}

func validForm(code string) dto.ProduitForm {
	return dto.ProduitForm{
		Code:         code,
		Designation:  "Ampoule LED 60W",
		Famille:      "ELECTRICITE",
		Unite:        "piece",
		PrixTotal:    "12.50",
		PrixBoutique: "11.00",
		PrixMagasin1: "10.00",
		PrixMagasin2: "9.50",
		PrixMagasin3: "9.00",
		StockAffiche: "20",
		StockMinimal: "5",
		StockRevient: "8",
	}
}

func seedProduit(t *testing.T, repo *fakeProduitRepo, id, code, designation, famille string, prixTotal float64, stockAffiche, stockMinimal int) *entity.Produit {
	t.Helper()
	p := &entity.Produit{
		ID:           id,
		Code:         code,
		Designation:  designation,
		Famille:      famille,
		Unite:        "piece",
		PrixTotal:    decimal.NewFromFloat(prixTotal),
		StockAffiche: stockAffiche,
		StockMinimal: stockMinimal,
		DateCreation: time.Now(),
	}
	require.NoError(t, repo.Create(p))
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Motor de consultas
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: A en rupture (5 <= 10), B no (20 > 5).
func TestList_FiltroRupture(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "A001", "Produit A", "MENAGE", 10, 5, 10)
	seedProduit(t, repo, "b", "B001", "Produit B", "MENAGE", 10, 20, 5)

	out, err := uc.List(repository.ProduitFilter{StockFilter: entity.StockFilterRupture})
	require.NoError(t, err)
	require.Len(t, out.Produits, 1, "solo A está en rupture")
	assert.Equal(t, "A001", out.Produits[0].Code)

	rapport, err := uc.Rapport()
	require.NoError(t, err)
	assert.Equal(t, int64(1), rapport.ProduitsRupture)
}

// Un producto con stock igual al mínimo cuenta como rupture (<=, no <).
func TestList_RuptureIncluyeStockIgualAlMinimo(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "A001", "Produit A", "MENAGE", 10, 10, 10)

	out, err := uc.List(repository.ProduitFilter{StockFilter: entity.StockFilterRupture})
	require.NoError(t, err)
	assert.Len(t, out.Produits, 1)
}

func TestList_FiltroEnStock(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "A001", "Produit A", "MENAGE", 10, 0, 0)
	seedProduit(t, repo, "b", "B001", "Produit B", "MENAGE", 10, 3, 5)

	out, err := uc.List(repository.ProduitFilter{StockFilter: entity.StockFilterEnStock})
	require.NoError(t, err)
	require.Len(t, out.Produits, 1, "en_stock exige stock_affiche > 0")
	assert.Equal(t, "B001", out.Produits[0].Code)
}

func TestList_BusquedaSobreCodeODesignation(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "ELC-100", "Ampoule", "ELECTRICITE", 5, 10, 2)
	seedProduit(t, repo, "b", "MNG-200", "Balai elc pro", "MENAGE", 5, 10, 2)
	seedProduit(t, repo, "c", "PLB-300", "Tuyau", "PLOMBERIE", 5, 10, 2)

	// "elc" matchea el code del primero y la designation del segundo (OR,
	// insensible a mayúsculas).
	out, err := uc.List(repository.ProduitFilter{Search: "elc"})
	require.NoError(t, err)
	require.Len(t, out.Produits, 2)
	assert.Equal(t, "ELC-100", out.Produits[0].Code)
	assert.Equal(t, "MNG-200", out.Produits[1].Code)
}

func TestList_FiltrosComponenConAND(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "ELC-100", "Ampoule", "ELECTRICITE", 5, 10, 2)
	seedProduit(t, repo, "b", "ELC-200", "Cable", "ELECTRICITE", 5, 0, 2)
	seedProduit(t, repo, "c", "MNG-100", "Ampoule deco", "MENAGE", 5, 10, 2)

	out, err := uc.List(repository.ProduitFilter{
		Search:      "ampoule",
		Famille:     "ELECTRICITE",
		StockFilter: entity.StockFilterEnStock,
	})
	require.NoError(t, err)
	require.Len(t, out.Produits, 1)
	assert.Equal(t, "ELC-100", out.Produits[0].Code)
}

func TestList_EcoDeFiltrosYFamilles(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "A001", "Produit A", "MENAGE", 10, 5, 10)
	seedProduit(t, repo, "b", "B001", "Produit B", "ELECTRICITE", 10, 20, 5)

	out, err := uc.List(repository.ProduitFilter{Famille: "MENAGE"})
	require.NoError(t, err)
	assert.Equal(t, "MENAGE", out.Famille, "la respuesta debe ecoar el filtro aplicado")
	assert.Equal(t, []string{"ELECTRICITE", "MENAGE"}, out.Familles,
		"las familles deben reflejar los datos vivos, no solo el conjunto filtrado")
}

func TestAlertesStock_MaximoCinco(t *testing.T) {
	uc, repo := buildProduitUC()
	for i := 0; i < 7; i++ {
		seedProduit(t, repo, fmt.Sprintf("p%d", i), fmt.Sprintf("C%03d", i), "Produit", "MENAGE", 10, i, 10)
	}

	alertes, err := uc.AlertesStock()
	require.NoError(t, err)
	assert.Len(t, alertes, 5, "el endpoint de alertas retorna como máximo 5 entradas")
	// Orden estable: stock más bajo primero.
	assert.Equal(t, 0, alertes[0].StockAffiche)
	assert.Equal(t, "C000", alertes[0].Code)
}

func TestLowStock_SinLimiteListaTodo(t *testing.T) {
	uc, repo := buildProduitUC()
	for i := 0; i < 7; i++ {
		seedProduit(t, repo, fmt.Sprintf("p%d", i), fmt.Sprintf("C%03d", i), "Produit", "MENAGE", 10, i, 10)
	}

	produits, err := uc.LowStock(0)
	require.NoError(t, err)
	assert.Len(t, produits, 7)
}

func TestRapport_CatalogoVacioEsCeroExacto(t *testing.T) {
	uc, _ := buildProduitUC()

	rapport, err := uc.Rapport()
	require.NoError(t, err)
	assert.Equal(t, int64(0), rapport.TotalProduits)
	assert.Equal(t, int64(0), rapport.ProduitsRupture)
	assert.True(t, rapport.ValeurStock.IsZero(),
		"la valorización con catálogo vacío debe ser 0, nunca null")
}

func TestRapport_ValeurStock(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "A001", "Produit A", "MENAGE", 12.50, 4, 1) // 50.00
	seedProduit(t, repo, "b", "B001", "Produit B", "MENAGE", 3.00, 10, 1) // 30.00

	rapport, err := uc.Rapport()
	require.NoError(t, err)
	assert.Equal(t, int64(2), rapport.TotalProduits)
	assert.True(t, rapport.ValeurStock.Equal(decimal.NewFromFloat(80.00)),
		"valeur_stock = suma de prix_total * stock_affiche, obtuve %s", rapport.ValeurStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Exito(t *testing.T) {
	uc, repo := buildProduitUC()

	out, err := uc.Create(validForm("ELC-100"))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 20, out.StockAffiche)
	assert.True(t, out.PrixTotal.Equal(decimal.NewFromFloat(12.50)))
	assert.Len(t, repo.produits, 1)
}

func TestCreate_NumericoInvalidoAbortaSinPersistir(t *testing.T) {
	uc, repo := buildProduitUC()

	form := validForm("ELC-100")
	form.PrixTotal = "doce cincuenta"
	out, err := uc.Create(form)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.produits, "un parse fallido no debe dejar fila parcial")

	form = validForm("ELC-100")
	form.StockAffiche = "3.5" // los stocks son enteros
	_, err = uc.Create(form)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.produits)
}

func TestCreate_CodeDuplicado(t *testing.T) {
	uc, repo := buildProduitUC()

	_, err := uc.Create(validForm("ELC-100"))
	require.NoError(t, err)

	out, err := uc.Create(validForm("ELC-100"))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.produits, 1, "el conteo no debe cambiar tras el duplicado")
}

func TestUpdate_Exito(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "A001", "Produit A", "MENAGE", 10, 5, 10)

	form := validForm("A001")
	form.Designation = "Produit A v2"
	form.StockAffiche = "42"
	out, err := uc.Update("a", form)
	require.NoError(t, err)
	assert.Equal(t, "Produit A v2", out.Designation)
	assert.Equal(t, 42, out.StockAffiche)
}

func TestUpdate_IdInexistente_NoCreaFila(t *testing.T) {
	uc, repo := buildProduitUC()

	out, err := uc.Update("fantasma", validForm("ELC-100"))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.produits,
		"un update a un id inexistente jamás debe crear la fila")
}

func TestUpdate_NumericoInvalidoNoMuta(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "A001", "Produit A", "MENAGE", 10, 5, 10)

	// El campo inválido va al final del formulario: los campos que parsean
	// antes tampoco deben quedar escritos sobre la entidad compartida.
	form := validForm("A001")
	form.StockMinimal = "basura"
	_, err := uc.Update("a", form)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := repo.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, 5, stored.StockAffiche, "la fila no debe mutar tras un parse fallido")
	assert.True(t, stored.PrixTotal.Equal(decimal.NewFromFloat(10)),
		"ni siquiera los campos parseados antes del fallo deben escribirse")
	assert.Equal(t, "Produit A", stored.Designation)
}

func TestDelete_IdInexistente(t *testing.T) {
	uc, _ := buildProduitUC()
	assert.ErrorIs(t, uc.Delete("fantasma"), domain.ErrNotFound,
		"borrar un id ausente informa al caller, no es un no-op")
}

func TestDeleteAll_RetornaConteo(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "A001", "Produit A", "MENAGE", 10, 5, 10)
	seedProduit(t, repo, "b", "B001", "Produit B", "MENAGE", 10, 5, 10)

	count, err := uc.DeleteAll()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Empty(t, repo.produits)
}

func TestDeleteSelected_SeleccionVacia_NoTocaElStore(t *testing.T) {
	uc, repo := buildProduitUC()

	count, err := uc.DeleteSelected(context.Background(), nil)
	assert.Zero(t, count)
	assert.ErrorIs(t, err, domain.ErrNoSelection)
	assert.False(t, repo.touched, "la validación de selección vacía ocurre antes de tocar el store")
}

func TestDeleteSelected_SaltaIdsInexistentes(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "A001", "Produit A", "MENAGE", 10, 5, 10)

	count, err := uc.DeleteSelected(context.Background(), []string{"a", "fantasma"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "los ids que no resuelven se saltan sin abortar el lote")
	assert.Empty(t, repo.produits)
}

// Semántica de lote atómico: un fallo en el elemento N descarta también los
// borrados ya aplicados de 1..N-1.
func TestDeleteSelected_FalloRevierteLoteCompleto(t *testing.T) {
	uc, repo := buildProduitUC()
	seedProduit(t, repo, "a", "A001", "Produit A", "MENAGE", 10, 5, 10)
	seedProduit(t, repo, "b", "B001", "Produit B", "MENAGE", 10, 5, 10)
	repo.failOnID = "b"

	count, err := uc.DeleteSelected(context.Background(), []string{"a", "b"})
	assert.Zero(t, count)
	require.Error(t, err)
	assert.Len(t, repo.produits, 2, "el rollback debe restaurar los borrados previos del lote")
}
