package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra a pilha global na ordem correta:
// recovery primeiro (pega panic de tudo que vem depois), depois
// CORS, logger e a conexão do banco no contexto.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(DBMiddleware(db))
}
