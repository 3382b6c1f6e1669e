// file: internals/features/escalas/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	escalactl "minhaigreja_backend/internals/features/escalas/controller"
	"minhaigreja_backend/internals/features/escalas/repository"
	"minhaigreja_backend/internals/features/escalas/service"
)

// EscalaPublicRoutes registra a superfície pública (token-gated, sem auth):
//
//	GET  /escalas/:token
//	POST /escalas/:token/disponibilidade
//	POST /escalas/:token/troca
func EscalaPublicRoutes(router fiber.Router, db *gorm.DB) {
	repo := repository.NewRepository(db)
	ctl := escalactl.NewPublicEscalaController(
		service.NewRegistryService(repo),
		service.NewAvailabilityService(repo),
		service.NewSwapService(repo),
	)

	grp := router.Group("/escalas")
	grp.Get("/:token", ctl.Detalhe)
	grp.Post("/:token/disponibilidade", ctl.EnviarDisponibilidade)
	grp.Post("/:token/troca", ctl.SolicitarTroca)
}
