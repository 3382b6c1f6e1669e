// file: internals/features/escalas/controller/admin_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/escalas/dto"
	"minhaigreja_backend/internals/features/escalas/model"
	"minhaigreja_backend/internals/features/escalas/service"
	helper "minhaigreja_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AdminEscalaController struct {
	Link       *service.LinkService
	Publicacao *service.PublicationService
	Troca      *service.SwapService
}

func NewAdminEscalaController(link *service.LinkService, pub *service.PublicationService, troca *service.SwapService) *AdminEscalaController {
	return &AdminEscalaController{Link: link, Publicacao: pub, Troca: troca}
}

func linkIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	return id, nil
}

/* =========================
   POST /api/a/escalas
   ========================= */

func (ctl *AdminEscalaController) CriarLink(c *fiber.Ctx) error {
	var req dto.CriarLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "body inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	link, slots, err := ctl.Link.Criar(c.UserContext(), &req)
	if err != nil {
		return erroServico(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Link criado", fiber.Map{
		"link":  link,
		"slots": slots,
	})
}

/* =========================
   GET /api/a/escalas/:id/publicada
   ========================= */

func (ctl *AdminEscalaController) GetPublicada(c *fiber.Ctx) error {
	linkID, err := linkIDParam(c)
	if err != nil {
		return err
	}
	doc, err := ctl.Publicacao.Documento(c.UserContext(), linkID)
	if err != nil {
		return erroServico(err)
	}
	return helper.Success(c, "Documento carregado", dto.DocumentoResponse{Documento: doc})
}

/* =========================
   POST /api/a/escalas/:id/publicada
   body: {status: rascunho|publicada, dados, alertas}
   ========================= */

func (ctl *AdminEscalaController) SalvarPublicada(c *fiber.Ctx) error {
	linkID, err := linkIDParam(c)
	if err != nil {
		return err
	}

	var req dto.SalvarPublicadaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "body inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	doc, err := ctl.Publicacao.SalvarOuPublicar(c.UserContext(), linkID, &req)
	if err != nil {
		return erroServico(err)
	}

	msg := "Rascunho salvo"
	if doc.EscalaDocumentoStatus == model.DocumentoPublicada {
		msg = "Escala publicada"
	}
	return helper.Success(c, msg, dto.DocumentoResponse{Documento: doc})
}

/* =========================
   GET /api/a/escalas/:id/trocas?status=pendente
   ========================= */

func (ctl *AdminEscalaController) ListarTrocas(c *fiber.Ctx) error {
	linkID, err := linkIDParam(c)
	if err != nil {
		return err
	}

	var status *model.TrocaStatus
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		switch model.TrocaStatus(s) {
		case model.TrocaPendente, model.TrocaAprovada, model.TrocaRejeitada:
			st := model.TrocaStatus(s)
			status = &st
		default:
			return fiber.NewError(fiber.StatusBadRequest, "status deve ser pendente|aprovada|rejeitada")
		}
	}

	p := helper.ParseFiber(c, "criado_em", "desc", helper.AdminOpts)
	trocas, err := ctl.Troca.ListarPorLink(c.UserContext(), linkID, status, p.Limit(), p.Offset())
	if err != nil {
		return erroServico(err)
	}
	return helper.Success(c, "Trocas carregadas", trocas)
}

/* =========================
   PUT /api/a/escalas/:id/trocas
   body: {troca_id, status: aprovada|rejeitada, resposta?}
   ========================= */

func (ctl *AdminEscalaController) ResponderTroca(c *fiber.Ctx) error {
	linkID, err := linkIDParam(c)
	if err != nil {
		return err
	}

	var req dto.ResponderTrocaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "body inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ctl.Troca.Responder(c.UserContext(), linkID, &req)
	if err != nil {
		return erroServico(err)
	}

	msg := "Troca respondida"
	if resp.Aviso != "" {
		msg = "Troca respondida com aviso"
	}
	return helper.Success(c, msg, resp)
}

/* =========================
   POST /api/a/escalas/:id/atribuicoes/reindexar
   Reparo idempotente do índice derivado.
   ========================= */

func (ctl *AdminEscalaController) ReindexarAtribuicoes(c *fiber.Ctx) error {
	linkID, err := linkIDParam(c)
	if err != nil {
		return err
	}
	if err := ctl.Publicacao.ReindexarAtribuicoes(c.UserContext(), linkID); err != nil {
		return erroServico(err)
	}
	return helper.Success(c, "Índice de atribuições reconstruído", nil)
}
