// file: internals/features/escalas/repository/troca_repo.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/escalas/model"
)

type trocaRepo struct {
	db *gorm.DB
}

func (r *trocaRepo) Create(ctx context.Context, troca *model.EscalaTrocaModel) error {
	return r.db.WithContext(ctx).Create(troca).Error
}

func (r *trocaRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.EscalaTrocaModel, error) {
	var troca model.EscalaTrocaModel
	err := r.db.WithContext(ctx).
		Where("escala_troca_id = ?", id).
		First(&troca).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &troca, nil
}

func (r *trocaRepo) BuscarPendente(ctx context.Context, linkID, slotID uuid.UUID, funcao string, solicitanteID uuid.UUID) (*model.EscalaTrocaModel, error) {
	var troca model.EscalaTrocaModel
	err := r.db.WithContext(ctx).
		Where("escala_troca_link_id = ? AND escala_troca_slot_id = ? AND escala_troca_funcao = ? AND escala_troca_solicitante_id = ? AND escala_troca_status = ?",
			linkID, slotID, funcao, solicitanteID, model.TrocaPendente).
		First(&troca).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &troca, nil
}

func (r *trocaRepo) ListByLink(ctx context.Context, linkID uuid.UUID, status *model.TrocaStatus, limit, offset int) ([]model.EscalaTrocaModel, error) {
	q := r.db.WithContext(ctx).Where("escala_troca_link_id = ?", linkID)
	if status != nil {
		q = q.Where("escala_troca_status = ?", *status)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var out []model.EscalaTrocaModel
	err := q.Order("escala_troca_criado_em DESC").Find(&out).Error
	return out, err
}

func (r *trocaRepo) ResponderSePendente(ctx context.Context, id uuid.UUID, status model.TrocaStatus, resposta *string, respondidoEm time.Time) (bool, error) {
	// Compare-and-swap: o WHERE por status serializa dois respondentes
	// simultâneos — só um vê RowsAffected=1.
	res := r.db.WithContext(ctx).
		Model(&model.EscalaTrocaModel{}).
		Where("escala_troca_id = ? AND escala_troca_status = ?", id, model.TrocaPendente).
		Updates(map[string]interface{}{
			"escala_troca_status":        status,
			"escala_troca_resposta":      resposta,
			"escala_troca_respondido_em": respondidoEm,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
