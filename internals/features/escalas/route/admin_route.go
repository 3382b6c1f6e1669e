// file: internals/features/escalas/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/configs"
	escalactl "minhaigreja_backend/internals/features/escalas/controller"
	"minhaigreja_backend/internals/features/escalas/repository"
	"minhaigreja_backend/internals/features/escalas/service"
)

// EscalaAdminRoutes registra a superfície autenticada (montar sob grupo
// com AuthMiddleware):
//
//	POST /escalas
//	GET/POST /escalas/:id/publicada
//	GET/PUT  /escalas/:id/trocas
//	POST /escalas/:id/atribuicoes/reindexar
func EscalaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	repo := repository.NewRepository(db)

	var notificador service.Notificador = service.LogNotificador{}
	if url := configs.GetEnv("NOTIFY_WEBHOOK_URL"); url != "" {
		notificador = service.NewWebhookNotificador(url)
	}

	ctl := escalactl.NewAdminEscalaController(
		service.NewLinkService(repo),
		service.NewPublicationService(repo, notificador),
		service.NewSwapService(repo),
	)

	grp := admin.Group("/escalas")
	grp.Post("/", ctl.CriarLink)
	grp.Get("/:id/publicada", ctl.GetPublicada)
	grp.Post("/:id/publicada", ctl.SalvarPublicada)
	grp.Get("/:id/trocas", ctl.ListarTrocas)
	grp.Put("/:id/trocas", ctl.ResponderTroca)
	grp.Post("/:id/atribuicoes/reindexar", ctl.ReindexarAtribuicoes)
}
