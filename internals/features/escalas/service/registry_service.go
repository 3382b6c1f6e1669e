// file: internals/features/escalas/service/registry_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/escalas/dto"
	"minhaigreja_backend/internals/features/escalas/model"
	"minhaigreja_backend/internals/features/escalas/repository"
)

/* =======================================================
   RegistryService — leitura de referência do link:
   metadados, slots, voluntários elegíveis com funções
   mescladas e respostas já enviadas.
   ======================================================= */

type RegistryService struct {
	repo *repository.Repository
}

func NewRegistryService(repo *repository.Repository) *RegistryService {
	return &RegistryService{repo: repo}
}

func (s *RegistryService) LinkPorToken(ctx context.Context, token string) (*model.EscalaLinkModel, error) {
	link, err := s.repo.Link.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("link: %w", ErrNaoEncontrado)
	}
	return link, nil
}

func (s *RegistryService) DetalheLink(ctx context.Context, token string) (*dto.DetalheLinkResponse, error) {
	link, err := s.LinkPorToken(ctx, token)
	if err != nil {
		return nil, err
	}

	slots, err := s.repo.Link.ListSlots(ctx, link.EscalaLinkID)
	if err != nil {
		return nil, err
	}

	voluntarios, err := s.VoluntariosElegiveis(ctx, link)
	if err != nil {
		return nil, err
	}

	respostas, err := s.repo.Disponibilidade.ListByLink(ctx, link.EscalaLinkID)
	if err != nil {
		return nil, err
	}
	disponibilidades := make([]dto.DisponibilidadeResposta, 0, len(respostas))
	for _, r := range respostas {
		disponibilidades = append(disponibilidades, dto.DisponibilidadeResposta{
			VoluntarioID: r.EscalaDisponibilidadeVoluntarioID,
			SlotID:       r.EscalaDisponibilidadeSlotID,
			Disponivel:   r.EscalaDisponibilidadeDisponivel,
			Observacao:   r.EscalaDisponibilidadeObservacao,
			EnviadoEm:    r.EscalaDisponibilidadeEnviadoEm,
		})
	}

	return &dto.DetalheLinkResponse{
		Link:               link,
		Slots:              slots,
		Voluntarios:        voluntarios,
		Disponibilidades:   disponibilidades,
		FuncoesNecessarias: uniaoFuncoes(slots),
	}, nil
}

// VoluntariosElegiveis mescla o perfil de funções: override do link
// prevalece sobre o perfil global do ministério.
func (s *RegistryService) VoluntariosElegiveis(ctx context.Context, link *model.EscalaLinkModel) ([]dto.VoluntarioElegivel, error) {
	vols, err := s.repo.Voluntario.ListByMinisterio(ctx, link.EscalaLinkMinisterio, link.EscalaLinkIgrejaID)
	if err != nil {
		return nil, err
	}
	globais, err := s.repo.Voluntario.FuncoesGlobais(ctx, link.EscalaLinkMinisterio)
	if err != nil {
		return nil, err
	}
	doLink, err := s.repo.Voluntario.FuncoesDoLink(ctx, link.EscalaLinkID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.VoluntarioElegivel, 0, len(vols))
	for _, v := range vols {
		funcoes, ok := doLink[v.VoluntarioID]
		if !ok {
			funcoes = globais[v.VoluntarioID]
		}
		if funcoes == nil {
			funcoes = []string{}
		}
		out = append(out, dto.VoluntarioElegivel{
			VoluntarioID: v.VoluntarioID,
			Nome:         v.VoluntarioNome,
			Telefone:     v.VoluntarioTelefone,
			Funcoes:      funcoes,
		})
	}
	return out, nil
}

// uniaoFuncoes devolve o conjunto (primeira aparição preserva a ordem)
// das funções exigidas por todos os slots.
func uniaoFuncoes(slots []model.EscalaSlotModel) []string {
	vistos := make(map[string]bool)
	var out []string
	for _, s := range slots {
		for _, f := range s.EscalaSlotFuncoes {
			if !vistos[f] {
				vistos[f] = true
				out = append(out, f)
			}
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// slotSet indexa os slots do link para validações de pertencimento.
func slotSet(slots []model.EscalaSlotModel) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(slots))
	for _, s := range slots {
		set[s.EscalaSlotID] = true
	}
	return set
}
