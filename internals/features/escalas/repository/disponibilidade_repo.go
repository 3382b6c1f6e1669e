// file: internals/features/escalas/repository/disponibilidade_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minhaigreja_backend/internals/features/escalas/model"
)

type disponibilidadeRepo struct {
	db *gorm.DB
}

func (r *disponibilidadeRepo) Upsert(ctx context.Context, resp *model.EscalaDisponibilidadeModel) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "escala_disponibilidade_link_id"},
			{Name: "escala_disponibilidade_voluntario_id"},
			{Name: "escala_disponibilidade_slot_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"escala_disponibilidade_disponivel",
			"escala_disponibilidade_observacao",
			"escala_disponibilidade_enviado_em",
		}),
	}).Create(resp).Error
}

func (r *disponibilidadeRepo) ListByLink(ctx context.Context, linkID uuid.UUID) ([]model.EscalaDisponibilidadeModel, error) {
	var out []model.EscalaDisponibilidadeModel
	err := r.db.WithContext(ctx).
		Where("escala_disponibilidade_link_id = ?", linkID).
		Order("escala_disponibilidade_enviado_em ASC").
		Find(&out).Error
	return out, err
}
