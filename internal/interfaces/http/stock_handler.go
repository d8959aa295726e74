package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gbgescom/supermarche-api/internal/application/dto"
	"github.com/gbgescom/supermarche-api/internal/application/usecase"
)

// StockHandler vista de stock bajo y endpoint JSON de alertas.
type StockHandler struct {
	uc *usecase.ProduitUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.ProduitUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// LowStock GET /stock: todos los productos en o bajo el umbral, sin límite.
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	produits, err := h.uc.LowStock(0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"produits_faible_stock": produits})
}

// Alertes GET /api/alertes-stock: máximo 5 entradas, orden estable.
func (h *StockHandler) Alertes(c *fiber.Ctx) error {
	alertes, err := h.uc.AlertesStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(alertes)
}
