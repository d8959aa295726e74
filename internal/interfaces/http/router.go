package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gbgescom/supermarche-api/internal/application/auth"
	"github.com/gbgescom/supermarche-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProduitUC     *usecase.ProduitUseCase
	SessionSecret string
}

// Router registra las rutas de la aplicación. Toda ruta protegida pasa por
// SessionMiddleware antes de cualquier acceso a persistencia; /rapports
// añade RequireAdmin encima.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionSecret)
	produitHandler := NewProduitHandler(deps.ProduitUC)
	stockHandler := NewStockHandler(deps.ProduitUC)
	rapportHandler := NewRapportHandler(deps.ProduitUC)

	// Público
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Post("/logout", authHandler.Logout)

	// Protegido (sesión requerida)
	protected := app.Group("/", SessionMiddleware(deps.SessionSecret, deps.AuthUC))

	protected.Get("/dashboard", authHandler.Dashboard)

	protected.Get("/produits", produitHandler.List)
	protected.Post("/produit/nouveau", produitHandler.Create)
	protected.Post("/produit/:id/modifier", produitHandler.Update)
	protected.Post("/produit/:id/supprimer", produitHandler.Delete)
	protected.Post("/produits/vider-tout", produitHandler.DeleteAll)
	protected.Post("/produits/supprimer-selection", produitHandler.DeleteSelected)

	protected.Get("/stock", stockHandler.LowStock)
	protected.Get("/api/alertes-stock", stockHandler.Alertes)

	// Solo admin: un usuario autenticado sin el rol vuelve al dashboard
	protected.Get("/rapports", RequireAdmin(deps.AuthUC), rapportHandler.Stats)
}
