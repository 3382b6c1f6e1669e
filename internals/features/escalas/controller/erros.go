// file: internals/features/escalas/controller/erros.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"minhaigreja_backend/internals/features/escalas/service"
)

// statusDe traduz os erros recuperáveis do serviço para HTTP.
// Qualquer outro erro é infraestrutura → 500.
func statusDe(err error) int {
	switch {
	case errors.Is(err, service.ErrNaoEncontrado):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrLinkEncerrado):
		return fiber.StatusGone
	case errors.Is(err, service.ErrNaoElegivel),
		errors.Is(err, service.ErrNaoAtribuido):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrTrocaPendenteDuplicada),
		errors.Is(err, service.ErrJaRespondida),
		errors.Is(err, service.ErrDocumentoNaoPublicado),
		errors.Is(err, service.ErrEstadoInvalido),
		errors.Is(err, service.ErrConflitoVersao):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrValidacao):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func erroServico(err error) *fiber.Error {
	return fiber.NewError(statusDe(err), err.Error())
}
