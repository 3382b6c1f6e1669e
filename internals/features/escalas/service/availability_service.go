// file: internals/features/escalas/service/availability_service.go
package service

import (
	"context"
	"fmt"

	"minhaigreja_backend/internals/features/escalas/dto"
	"minhaigreja_backend/internals/features/escalas/model"
	"minhaigreja_backend/internals/features/escalas/repository"
)

/* =======================================================
   AvailabilityService — envio de disponibilidade do voluntário.
   Upsert por (link, voluntário, slot); slots omitidos ficam como
   estão (sem "indisponível" implícito). Não toca no documento.
   ======================================================= */

type AvailabilityService struct {
	repo *repository.Repository
}

func NewAvailabilityService(repo *repository.Repository) *AvailabilityService {
	return &AvailabilityService{repo: repo}
}

func (s *AvailabilityService) Enviar(ctx context.Context, token string, req *dto.EnviarDisponibilidadeRequest) error {
	link, err := s.repo.Link.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if link == nil {
		return fmt.Errorf("link: %w", ErrNaoEncontrado)
	}
	if link.EscalaLinkStatus != model.LinkAtivo {
		return ErrLinkEncerrado
	}

	vol, err := s.repo.Voluntario.GetByID(ctx, req.VoluntarioID)
	if err != nil {
		return err
	}
	if vol == nil {
		return fmt.Errorf("voluntário: %w", ErrNaoEncontrado)
	}
	if err := verificarElegibilidade(link, vol); err != nil {
		return err
	}

	slots, err := s.repo.Link.ListSlots(ctx, link.EscalaLinkID)
	if err != nil {
		return err
	}
	validos := slotSet(slots)
	for _, resposta := range req.Slots {
		if !validos[resposta.SlotID] {
			return fmt.Errorf("%w: slot %s não pertence ao link", ErrValidacao, resposta.SlotID)
		}
	}

	return s.repo.Atomico.Transaction(ctx, func(tr *repository.Repository) error {
		for _, resposta := range req.Slots {
			disponivel := true // omitido = disponível
			if resposta.Disponivel != nil {
				disponivel = *resposta.Disponivel
			}
			row := model.EscalaDisponibilidadeModel{
				EscalaDisponibilidadeLinkID:       link.EscalaLinkID,
				EscalaDisponibilidadeVoluntarioID: vol.VoluntarioID,
				EscalaDisponibilidadeSlotID:       resposta.SlotID,
				EscalaDisponibilidadeDisponivel:   disponivel,
				EscalaDisponibilidadeObservacao:   resposta.Observacao,
			}
			if err := tr.Disponibilidade.Upsert(ctx, &row); err != nil {
				return err
			}
		}

		// funcoes presente = substituição integral do override do link E do
		// perfil global ("é assim que me descrevo daqui pra frente").
		if req.Funcoes != nil {
			return tr.Voluntario.SubstituirFuncoes(ctx, link.EscalaLinkID, vol.VoluntarioID, link.EscalaLinkMinisterio, req.Funcoes)
		}
		return nil
	})
}

// verificarElegibilidade: mesmo ministério sempre; mesma igreja quando o
// link tem escopo de igreja.
func verificarElegibilidade(link *model.EscalaLinkModel, vol *model.VoluntarioModel) error {
	if !vol.VoluntarioAtivo {
		return ErrNaoElegivel
	}
	if vol.VoluntarioMinisterio != link.EscalaLinkMinisterio {
		return ErrNaoElegivel
	}
	if link.EscalaLinkIgrejaID != nil {
		if vol.VoluntarioIgrejaID == nil || *vol.VoluntarioIgrejaID != *link.EscalaLinkIgrejaID {
			return ErrNaoElegivel
		}
	}
	return nil
}
