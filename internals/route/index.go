package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	escalaroute "minhaigreja_backend/internals/features/escalas/route"
	authctl "minhaigreja_backend/internals/features/users/auth/controller"
	middlewares "minhaigreja_backend/internals/middlewares"
	auth "minhaigreja_backend/internals/middlewares/auth"
)

var startTime = time.Now()

// SetupRoutes monta as três superfícies:
//
//	/escalas/:token...   → pública, sem login (o token É a credencial)
//	/api/auth/login      → emissão de JWT
//	/api/a/...           → administrativa, JWT + papel admin|lider
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// ===== Pública (voluntários) =====
	public := app.Group("/", middlewares.EnvioPublicoRateLimiter())
	escalaroute.EscalaPublicRoutes(public, db)

	// ===== Auth =====
	authController := authctl.NewAuthController(db)
	app.Post("/api/auth/login", middlewares.LoginRateLimiter(), authController.Login)

	// ===== Administrativa =====
	admin := app.Group("/api/a",
		middlewares.GlobalRateLimiter(),
		auth.AuthMiddleware(),
		auth.OnlyRoles("admin", "lider"),
	)
	escalaroute.EscalaAdminRoutes(admin, db)
}
