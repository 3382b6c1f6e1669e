// file: internals/features/escalas/service/swap_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/escalas/dto"
	"minhaigreja_backend/internals/features/escalas/model"
	"minhaigreja_backend/internals/features/escalas/repository"
)

// Tentativas de reescrita do documento quando o token de versão colide
// com outra aprovação concorrente.
const maxTentativasTroca = 3

/* =======================================================
   SwapService — fluxo de troca.
   pendente → aprovada | rejeitada (terminais).
   Solicitação só contra documento publicado; aprovação com
   substituto reescreve UMA atribuição do documento.
   ======================================================= */

type SwapService struct {
	repo *repository.Repository
}

func NewSwapService(repo *repository.Repository) *SwapService {
	return &SwapService{repo: repo}
}

// Solicitar cria a troca pendente. Nunca confia na atribuição alegada pelo
// cliente: relê o documento publicado na hora do pedido.
func (s *SwapService) Solicitar(ctx context.Context, token string, req *dto.SolicitarTrocaRequest) (*model.EscalaTrocaModel, error) {
	link, err := s.repo.Link.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("link: %w", ErrNaoEncontrado)
	}

	doc, err := s.repo.Documento.GetByLink(ctx, link.EscalaLinkID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.EscalaDocumentoStatus != model.DocumentoPublicada {
		return nil, ErrDocumentoNaoPublicado
	}

	dados, err := dto.ParseDocumentoDados(doc.EscalaDocumentoDados)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidacao, err)
	}
	if !dados.Detem(req.SlotID, req.SolicitanteID, req.Funcao) {
		return nil, ErrNaoAtribuido
	}

	// guarda de idempotência contra duplo envio: devolve a pendente
	// existente junto do erro para o caller exibir
	pendente, err := s.repo.Troca.BuscarPendente(ctx, link.EscalaLinkID, req.SlotID, req.Funcao, req.SolicitanteID)
	if err != nil {
		return nil, err
	}
	if pendente != nil {
		return pendente, ErrTrocaPendenteDuplicada
	}

	if req.SubstitutoID != nil {
		sub, err := s.repo.Voluntario.GetByID(ctx, *req.SubstitutoID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, fmt.Errorf("substituto: %w", ErrNaoEncontrado)
		}
		if err := verificarElegibilidade(link, sub); err != nil {
			return nil, fmt.Errorf("substituto: %w", err)
		}
	}

	troca := &model.EscalaTrocaModel{
		EscalaTrocaLinkID:        link.EscalaLinkID,
		EscalaTrocaSlotID:        req.SlotID,
		EscalaTrocaFuncao:        req.Funcao,
		EscalaTrocaSolicitanteID: req.SolicitanteID,
		EscalaTrocaSubstitutoID:  req.SubstitutoID,
		EscalaTrocaMensagem:      req.Mensagem,
		EscalaTrocaStatus:        model.TrocaPendente,
	}
	if err := s.repo.Troca.Create(ctx, troca); err != nil {
		return nil, err
	}
	return troca, nil
}

func (s *SwapService) ListarPorLink(ctx context.Context, linkID uuid.UUID, status *model.TrocaStatus, limit, offset int) ([]model.EscalaTrocaModel, error) {
	return s.repo.Troca.ListByLink(ctx, linkID, status, limit, offset)
}

// Responder aprova/rejeita. Status e reescrita do documento acontecem na
// MESMA transação; colisão de versão desfaz tudo e tenta de novo.
func (s *SwapService) Responder(ctx context.Context, linkID uuid.UUID, req *dto.ResponderTrocaRequest) (*dto.ResponderTrocaResponse, error) {
	troca, err := s.repo.Troca.GetByID(ctx, req.TrocaID)
	if err != nil {
		return nil, err
	}
	if troca == nil || troca.EscalaTrocaLinkID != linkID {
		return nil, fmt.Errorf("troca: %w", ErrNaoEncontrado)
	}

	novoStatus := model.TrocaStatus(req.Status)

	for tentativa := 0; tentativa < maxTentativasTroca; tentativa++ {
		resp := &dto.ResponderTrocaResponse{}
		agora := time.Now()

		err := s.repo.Atomico.Transaction(ctx, func(tr *repository.Repository) error {
			ok, err := tr.Troca.ResponderSePendente(ctx, troca.EscalaTrocaID, novoStatus, req.Resposta, agora)
			if err != nil {
				return err
			}
			if !ok {
				return ErrJaRespondida
			}

			if novoStatus != model.TrocaAprovada || troca.EscalaTrocaSubstitutoID == nil {
				// rejeição, ou aprovação sem substituto (libera o
				// solicitante; reatribuição fica manual): só o status muda
				return nil
			}
			return s.aplicarTrocaNoDocumento(ctx, tr, troca, resp)
		})

		if errors.Is(err, ErrConflitoVersao) {
			continue
		}
		if err != nil {
			return nil, err
		}

		troca.EscalaTrocaStatus = novoStatus
		troca.EscalaTrocaResposta = req.Resposta
		troca.EscalaTrocaRespondidoEm = &agora
		resp.Troca = troca
		return resp, nil
	}
	return nil, ErrConflitoVersao
}

// aplicarTrocaNoDocumento relê o documento dentro da transação, substitui a
// PRIMEIRA atribuição (slot, função, solicitante) pela identidade do
// substituto e regrava o documento inteiro condicionado à versão lida.
// O índice derivado é realinhado na mesma transação.
func (s *SwapService) aplicarTrocaNoDocumento(ctx context.Context, tr *repository.Repository, troca *model.EscalaTrocaModel, resp *dto.ResponderTrocaResponse) error {
	doc, err := tr.Documento.GetByLink(ctx, troca.EscalaTrocaLinkID)
	if err != nil {
		return err
	}
	if doc == nil || doc.EscalaDocumentoStatus != model.DocumentoPublicada {
		resp.Aviso = "documento não está mais publicado; atribuição não alterada"
		log.Printf("⚠️ troca %s aprovada sem documento publicado", troca.EscalaTrocaID)
		return nil
	}

	dados, err := dto.ParseDocumentoDados(doc.EscalaDocumentoDados)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidacao, err)
	}

	sub, err := tr.Voluntario.GetByID(ctx, *troca.EscalaTrocaSubstitutoID)
	if err != nil {
		return err
	}
	if sub == nil {
		return fmt.Errorf("substituto: %w", ErrNaoEncontrado)
	}

	if !dados.AplicarTroca(troca.EscalaTrocaSlotID, troca.EscalaTrocaSolicitanteID, troca.EscalaTrocaFuncao, sub.VoluntarioID, sub.VoluntarioNome) {
		// Documento mudou desde o pedido. A aprovação registra mesmo assim
		// (a liberação do solicitante segue sendo a intenção), mas o
		// desfecho volta explícito — nunca no-op silencioso.
		resp.Aviso = "atribuição original não encontrada no documento atual; nada foi alterado"
		log.Printf("⚠️ troca %s: atribuição (%s, %s) de %s não está mais no documento",
			troca.EscalaTrocaID, troca.EscalaTrocaSlotID, troca.EscalaTrocaFuncao, troca.EscalaTrocaSolicitanteID)
		return nil
	}

	raw, err := dados.ToJSON()
	if err != nil {
		return err
	}
	ok, err := tr.Documento.AtualizarDadosSeVersao(ctx, troca.EscalaTrocaLinkID, raw, doc.EscalaDocumentoVersao)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflitoVersao
	}

	if err := tr.Atribuicao.PatchVoluntario(ctx, troca.EscalaTrocaLinkID, troca.EscalaTrocaSlotID, troca.EscalaTrocaFuncao, troca.EscalaTrocaSolicitanteID, sub.VoluntarioID); err != nil {
		return err
	}
	resp.AtribuicaoAtualizada = true
	return nil
}
