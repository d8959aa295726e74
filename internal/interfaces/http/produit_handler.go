package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gbgescom/supermarche-api/internal/application/dto"
	"github.com/gbgescom/supermarche-api/internal/application/usecase"
	"github.com/gbgescom/supermarche-api/internal/domain"
	"github.com/gbgescom/supermarche-api/internal/domain/repository"
)

// ProduitHandler maneja el listado y las mutaciones del catálogo (protegido).
type ProduitHandler struct {
	uc *usecase.ProduitUseCase
}

// NewProduitHandler construye el handler.
func NewProduitHandler(uc *usecase.ProduitUseCase) *ProduitHandler {
	return &ProduitHandler{uc: uc}
}

// selectionForm checkboxes del listado (varios valores del mismo campo).
type selectionForm struct {
	IDs []string `form:"produits_selection" json:"produits_selection"`
}

// List GET /produits: listado filtrado con eco de filtros y familles vivas.
func (h *ProduitHandler) List(c *fiber.Ctx) error {
	filter := repository.ProduitFilter{
		Search:      c.Query("search"),
		Famille:     c.Query("famille"),
		StockFilter: c.Query("stock_filter"),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create POST /produit/nouveau.
func (h *ProduitHandler) Create(c *fiber.Ctx) error {
	var in dto.ProduitForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.uc.Create(in); err != nil {
		return produitError(c, err)
	}
	return c.Redirect("/produits")
}

// Update POST /produit/:id/modifier. Un id inexistente es 404 duro: jamás
// crea la fila.
func (h *ProduitHandler) Update(c *fiber.Ctx) error {
	var in dto.ProduitForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.uc.Update(c.Params("id"), in); err != nil {
		return produitError(c, err)
	}
	return c.Redirect("/produits")
}

// Delete POST /produit/:id/supprimer.
func (h *ProduitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return produitError(c, err)
	}
	return c.Redirect("/produits")
}

// DeleteAll POST /produits/vider-tout: vacía el catálogo y comunica el
// conteo en la redirección.
func (h *ProduitHandler) DeleteAll(c *fiber.Ctx) error {
	count, err := h.uc.DeleteAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Redirect(fmt.Sprintf("/produits?supprimes=%d", count))
}

// DeleteSelected POST /produits/supprimer-selection: lote atómico; una
// selección vacía vuelve al listado con el aviso, sin tocar el store.
func (h *ProduitHandler) DeleteSelected(c *fiber.Ctx) error {
	var in selectionForm
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	count, err := h.uc.DeleteSelected(c.Context(), in.IDs)
	if err != nil {
		if err == domain.ErrNoSelection {
			return c.Redirect("/produits?erreur=aucune-selection")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Redirect(fmt.Sprintf("/produits?supprimes=%d", count))
}

// produitError traduce la taxonomía de dominio a HTTP.
func produitError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valores numéricos inválidos"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un producto con ese code"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
