package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gbgescom/supermarche-api/internal/application/dto"
	"github.com/gbgescom/supermarche-api/internal/application/usecase"
)

// RapportHandler reporte de administración (solo rol admin).
type RapportHandler struct {
	uc *usecase.ProduitUseCase
}

// NewRapportHandler construye el handler.
func NewRapportHandler(uc *usecase.ProduitUseCase) *RapportHandler {
	return &RapportHandler{uc: uc}
}

// Stats GET /rapports: con catálogo vacío los tres agregados son cero.
func (h *RapportHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Rapport()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
