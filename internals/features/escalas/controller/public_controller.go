// file: internals/features/escalas/controller/public_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"minhaigreja_backend/internals/features/escalas/dto"
	"minhaigreja_backend/internals/features/escalas/service"
	helper "minhaigreja_backend/internals/helpers"
)

var validate = validator.New()

/* =========================
   Controller & Constructor
   ========================= */

// PublicEscalaController — superfície pública protegida só pelo token
// imprevisível do link (sem autenticação).
type PublicEscalaController struct {
	Registry        *service.RegistryService
	Disponibilidade *service.AvailabilityService
	Troca           *service.SwapService
}

func NewPublicEscalaController(reg *service.RegistryService, disp *service.AvailabilityService, troca *service.SwapService) *PublicEscalaController {
	return &PublicEscalaController{Registry: reg, Disponibilidade: disp, Troca: troca}
}

/* =========================
   GET /escalas/:token
   ========================= */

func (ctl *PublicEscalaController) Detalhe(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "token obrigatório")
	}

	detalhe, err := ctl.Registry.DetalheLink(c.UserContext(), token)
	if err != nil {
		return erroServico(err)
	}
	return helper.Success(c, "Link carregado", detalhe)
}

/* =========================
   POST /escalas/:token/disponibilidade
   ========================= */

func (ctl *PublicEscalaController) EnviarDisponibilidade(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))

	var req dto.EnviarDisponibilidadeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "body inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Disponibilidade.Enviar(c.UserContext(), token, &req); err != nil {
		return erroServico(err)
	}
	return helper.Success(c, "Disponibilidade registrada", fiber.Map{
		"slots_respondidos": len(req.Slots),
	})
}

/* =========================
   POST /escalas/:token/troca
   ========================= */

func (ctl *PublicEscalaController) SolicitarTroca(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Params("token"))

	var req dto.SolicitarTrocaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "body inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	troca, err := ctl.Troca.Solicitar(c.UserContext(), token, &req)
	if err != nil {
		// duplo envio: mostra a pendente existente em vez de criar outra
		if errors.Is(err, service.ErrTrocaPendenteDuplicada) && troca != nil {
			return helper.ErrorWithDetails(c, fiber.StatusConflict, err.Error(), fiber.Map{
				"troca_pendente": troca,
			})
		}
		return erroServico(err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Troca solicitada", troca)
}
