// file: internals/features/escalas/repository/atribuicao_repo.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/escalas/model"
)

type atribuicaoRepo struct {
	db *gorm.DB
}

func (r *atribuicaoRepo) DeleteByLink(ctx context.Context, linkID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("escala_atribuicao_link_id = ?", linkID).
		Delete(&model.EscalaAtribuicaoModel{}).Error
}

func (r *atribuicaoRepo) BulkInsert(ctx context.Context, rows []model.EscalaAtribuicaoModel) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&rows, 200).Error
}

func (r *atribuicaoRepo) ListByLink(ctx context.Context, linkID uuid.UUID) ([]model.EscalaAtribuicaoModel, error) {
	var out []model.EscalaAtribuicaoModel
	err := r.db.WithContext(ctx).
		Where("escala_atribuicao_link_id = ?", linkID).
		Find(&out).Error
	return out, err
}

func (r *atribuicaoRepo) PatchVoluntario(ctx context.Context, linkID, slotID uuid.UUID, funcao string, de, para uuid.UUID) error {
	// UPDATE sem LIMIT no Postgres: localiza UMA linha pelo PK e atualiza.
	var row model.EscalaAtribuicaoModel
	err := r.db.WithContext(ctx).
		Where("escala_atribuicao_link_id = ? AND escala_atribuicao_slot_id = ? AND escala_atribuicao_funcao = ? AND escala_atribuicao_voluntario_id = ?",
			linkID, slotID, funcao, de).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// índice pode estar defasado em relação ao documento; nada a fazer
		return nil
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&model.EscalaAtribuicaoModel{}).
		Where("escala_atribuicao_id = ?", row.EscalaAtribuicaoID).
		Update("escala_atribuicao_voluntario_id", para).Error
}
