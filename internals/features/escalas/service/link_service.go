// file: internals/features/escalas/service/link_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/escalas/dto"
	"minhaigreja_backend/internals/features/escalas/model"
	"minhaigreja_backend/internals/features/escalas/repository"
)

/* =======================================================
   LinkService — criação administrativa da rodada: link com
   token público imprevisível + slots imutáveis da rodada.
   ======================================================= */

type LinkService struct {
	repo *repository.Repository
}

func NewLinkService(repo *repository.Repository) *LinkService {
	return &LinkService{repo: repo}
}

func (s *LinkService) Criar(ctx context.Context, req *dto.CriarLinkRequest) (*model.EscalaLinkModel, []model.EscalaSlotModel, error) {
	link := &model.EscalaLinkModel{
		EscalaLinkToken:      strings.ReplaceAll(uuid.NewString(), "-", ""),
		EscalaLinkIgrejaID:   req.IgrejaID,
		EscalaLinkMinisterio: req.Ministerio,
		EscalaLinkMes:        req.Mes,
		EscalaLinkAno:        req.Ano,
		EscalaLinkTitulo:     req.Titulo,
		EscalaLinkStatus:     model.LinkAtivo,
	}

	slots := make([]model.EscalaSlotModel, 0, len(req.Slots))
	for i, in := range req.Slots {
		data, err := time.Parse("2006-01-02", in.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: slots[%d].data inválida (YYYY-MM-DD)", ErrValidacao, i)
		}
		tipo := model.SlotTipo(in.Tipo)
		if tipo == "" {
			tipo = model.SlotCulto
		}
		ordem := in.Ordem
		if ordem == 0 {
			ordem = i
		}
		slots = append(slots, model.EscalaSlotModel{
			EscalaSlotTipo:    tipo,
			EscalaSlotTitulo:  in.Titulo,
			EscalaSlotData:    data,
			EscalaSlotHora:    in.Hora,
			EscalaSlotOrdem:   ordem,
			EscalaSlotFuncoes: in.Funcoes,
		})
	}

	if err := s.repo.Link.Create(ctx, link, slots); err != nil {
		return nil, nil, err
	}
	return link, slots, nil
}
