// file: internals/features/escalas/service/publication_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/escalas/dto"
	"minhaigreja_backend/internals/features/escalas/model"
	"minhaigreja_backend/internals/features/escalas/repository"
)

/* =======================================================
   PublicationService — dono da transição rascunho → publicada.
   Publicar é porta de mão única por rodada: documento gravado,
   índice reconstruído e link encerrado numa ÚNICA transação;
   notificação dispara depois, fire-and-forget.
   ======================================================= */

type PublicationService struct {
	repo        *repository.Repository
	notificador Notificador
}

func NewPublicationService(repo *repository.Repository, notificador Notificador) *PublicationService {
	if notificador == nil {
		notificador = LogNotificador{}
	}
	return &PublicationService{repo: repo, notificador: notificador}
}

func (s *PublicationService) Documento(ctx context.Context, linkID uuid.UUID) (*model.EscalaDocumentoModel, error) {
	doc, err := s.repo.Documento.GetByLink(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("documento: %w", ErrNaoEncontrado)
	}
	return doc, nil
}

func (s *PublicationService) SalvarOuPublicar(ctx context.Context, linkID uuid.UUID, req *dto.SalvarPublicadaRequest) (*model.EscalaDocumentoModel, error) {
	link, err := s.repo.Link.GetByID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("link: %w", ErrNaoEncontrado)
	}

	// Porta de mão única: publicada nunca volta a aceitar substituição em
	// bloco (nem rascunho, nem re-publicação). Só a troca reescreve pontual.
	atual, err := s.repo.Documento.GetByLink(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if atual != nil && atual.EscalaDocumentoStatus == model.DocumentoPublicada {
		return nil, fmt.Errorf("%w: documento já publicado", ErrEstadoInvalido)
	}

	slots, err := s.repo.Link.ListSlots(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if err := req.Dados.Validar(slotSet(slots)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidacao, err)
	}

	dadosJSON, err := req.Dados.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidacao, err)
	}
	alertasJSON, err := dto.AlertasToJSON(req.Alertas)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidacao, err)
	}

	doc := &model.EscalaDocumentoModel{
		EscalaDocumentoLinkID:  linkID,
		EscalaDocumentoStatus:  model.DocumentoStatus(req.Status),
		EscalaDocumentoDados:   dadosJSON,
		EscalaDocumentoAlertas: alertasJSON,
	}
	if req.GeradoPor != nil {
		doc.EscalaDocumentoGeradoPor = req.GeradoPor
	}

	if doc.EscalaDocumentoStatus == model.DocumentoRascunho {
		// rascunho: só o passo 1 — grava o documento, mais nada
		if err := s.repo.Documento.Upsert(ctx, doc); err != nil {
			return nil, err
		}
		return s.repo.Documento.GetByLink(ctx, linkID)
	}

	agora := time.Now()
	doc.EscalaDocumentoPublicadoEm = &agora

	// Ordem obrigatória dentro da transação:
	// documento → índice (delete+insert) → link encerrado.
	err = s.repo.Atomico.Transaction(ctx, func(tr *repository.Repository) error {
		if err := tr.Documento.Upsert(ctx, doc); err != nil {
			return err
		}
		if err := reconstruirIndice(ctx, tr, linkID, req.Dados); err != nil {
			return err
		}
		return tr.Link.UpdateStatus(ctx, linkID, model.LinkEncerrado)
	})
	if err != nil {
		return nil, err
	}

	// Passo 4: fire-and-forget. Falha de notificação nunca falha o publish.
	go s.notificarPublicacao(link, req.Dados)

	return s.repo.Documento.GetByLink(ctx, linkID)
}

// ReindexarAtribuicoes é a operação de reparo: reconstrói o índice de um
// link já publicado. Delete+insert é naturalmente idempotente.
func (s *PublicationService) ReindexarAtribuicoes(ctx context.Context, linkID uuid.UUID) error {
	doc, err := s.repo.Documento.GetByLink(ctx, linkID)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("documento: %w", ErrNaoEncontrado)
	}
	if doc.EscalaDocumentoStatus != model.DocumentoPublicada {
		return ErrDocumentoNaoPublicado
	}
	dados, err := dto.ParseDocumentoDados(doc.EscalaDocumentoDados)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidacao, err)
	}
	return s.repo.Atomico.Transaction(ctx, func(tr *repository.Repository) error {
		return reconstruirIndice(ctx, tr, linkID, dados)
	})
}

// reconstruirIndice apaga tudo do link e insere uma linha por
// (slot, voluntário, função) do payload; vagas em aberto ficam de fora.
func reconstruirIndice(ctx context.Context, tr *repository.Repository, linkID uuid.UUID, dados *dto.DocumentoDados) error {
	if err := tr.Atribuicao.DeleteByLink(ctx, linkID); err != nil {
		return err
	}
	planas := dados.Achatar()
	rows := make([]model.EscalaAtribuicaoModel, 0, len(planas))
	for _, p := range planas {
		rows = append(rows, model.EscalaAtribuicaoModel{
			EscalaAtribuicaoLinkID:       linkID,
			EscalaAtribuicaoSlotID:       p.SlotID,
			EscalaAtribuicaoVoluntarioID: p.VoluntarioID,
			EscalaAtribuicaoFuncao:       p.Funcao,
		})
	}
	return tr.Atribuicao.BulkInsert(ctx, rows)
}

func (s *PublicationService) notificarPublicacao(link *model.EscalaLinkModel, dados *dto.DocumentoDados) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️ panic no disparo de notificação (ignorado): %v", r)
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// telefones dos voluntários do ministério para montar o contexto
	telefones := map[uuid.UUID]*string{}
	if vols, err := s.repo.Voluntario.ListByMinisterio(ctx, link.EscalaLinkMinisterio, link.EscalaLinkIgrejaID); err == nil {
		for _, v := range vols {
			telefones[v.VoluntarioID] = v.VoluntarioTelefone
		}
	} else {
		log.Printf("⚠️ não foi possível carregar telefones para notificação: %v", err)
	}

	msg := EscalaPublicadaNotificacao{
		LinkTitulo: link.EscalaLinkTitulo,
		Ministerio: link.EscalaLinkMinisterio,
		Mes:        link.EscalaLinkMes,
		Ano:        link.EscalaLinkAno,
	}
	for _, slot := range dados.Slots {
		for _, a := range slot.Atribuicoes {
			if a.VoluntarioID == nil {
				continue
			}
			msg.Escalados = append(msg.Escalados, NotificacaoEscalado{
				VoluntarioNome: a.VoluntarioNome,
				Telefone:       telefones[*a.VoluntarioID],
				SlotTitulo:     slot.Titulo,
				Data:           slot.Data,
				Hora:           slot.Hora,
				Funcao:         a.Funcao,
			})
		}
	}

	if err := s.notificador.EscalaPublicada(ctx, msg); err != nil {
		log.Printf("⚠️ falha no envio de notificações da escala %s (ignorada): %v", link.EscalaLinkID, err)
	}
}
