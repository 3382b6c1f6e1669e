// file: internals/features/escalas/service/errors.go
package service

import "errors"

// Erros recuperáveis do motor de escalas, mapeados para HTTP nos
// controllers. Falha de storage passa direto (500).
var (
	ErrNaoEncontrado          = errors.New("registro não encontrado")
	ErrLinkEncerrado          = errors.New("link encerrado para envios")
	ErrNaoElegivel            = errors.New("voluntário não elegível para este link")
	ErrNaoAtribuido           = errors.New("solicitante não detém esta atribuição no documento atual")
	ErrTrocaPendenteDuplicada = errors.New("já existe uma troca pendente para esta atribuição")
	ErrJaRespondida           = errors.New("troca já respondida")
	ErrDocumentoNaoPublicado  = errors.New("a escala deste link ainda não foi publicada")
	ErrEstadoInvalido         = errors.New("transição de estado inválida")
	ErrConflitoVersao         = errors.New("documento alterado por outra operação; tente novamente")
	ErrValidacao              = errors.New("payload inválido")
)
