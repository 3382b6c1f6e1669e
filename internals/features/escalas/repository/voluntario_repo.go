// file: internals/features/escalas/repository/voluntario_repo.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minhaigreja_backend/internals/features/escalas/model"
)

type voluntarioRepo struct {
	db *gorm.DB
}

func (r *voluntarioRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.VoluntarioModel, error) {
	var v model.VoluntarioModel
	err := r.db.WithContext(ctx).
		Where("voluntario_id = ?", id).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *voluntarioRepo) ListByMinisterio(ctx context.Context, ministerio string, igrejaID *uuid.UUID) ([]model.VoluntarioModel, error) {
	q := r.db.WithContext(ctx).
		Where("voluntario_ministerio = ? AND voluntario_ativo = TRUE", ministerio)
	if igrejaID != nil {
		q = q.Where("voluntario_igreja_id = ?", *igrejaID)
	}
	var out []model.VoluntarioModel
	err := q.Order("voluntario_nome ASC").Find(&out).Error
	return out, err
}

func (r *voluntarioRepo) FuncoesGlobais(ctx context.Context, ministerio string) (map[uuid.UUID][]string, error) {
	var rows []model.VoluntarioFuncaoModel
	err := r.db.WithContext(ctx).
		Where("voluntario_funcao_ministerio = ?", ministerio).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID][]string, len(rows))
	for _, row := range rows {
		out[row.VoluntarioFuncaoVoluntarioID] = row.VoluntarioFuncaoFuncoes
	}
	return out, nil
}

func (r *voluntarioRepo) FuncoesDoLink(ctx context.Context, linkID uuid.UUID) (map[uuid.UUID][]string, error) {
	var rows []model.EscalaVoluntarioFuncaoModel
	err := r.db.WithContext(ctx).
		Where("escala_voluntario_funcao_link_id = ?", linkID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID][]string, len(rows))
	for _, row := range rows {
		out[row.EscalaVoluntarioFuncaoVoluntarioID] = row.EscalaVoluntarioFuncaoFuncoes
	}
	return out, nil
}

func (r *voluntarioRepo) SubstituirFuncoes(ctx context.Context, linkID, voluntarioID uuid.UUID, ministerio string, funcoes []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// override do link
		linkRow := model.EscalaVoluntarioFuncaoModel{
			EscalaVoluntarioFuncaoLinkID:       linkID,
			EscalaVoluntarioFuncaoVoluntarioID: voluntarioID,
			EscalaVoluntarioFuncaoFuncoes:      funcoes,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "escala_voluntario_funcao_link_id"},
				{Name: "escala_voluntario_funcao_voluntario_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"escala_voluntario_funcao_funcoes",
				"escala_voluntario_funcao_updated_at",
			}),
		}).Create(&linkRow).Error; err != nil {
			return err
		}

		// perfil global do ministério ("é assim que me descrevo daqui pra frente")
		globalRow := model.VoluntarioFuncaoModel{
			VoluntarioFuncaoVoluntarioID: voluntarioID,
			VoluntarioFuncaoMinisterio:   ministerio,
			VoluntarioFuncaoFuncoes:      funcoes,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "voluntario_funcao_voluntario_id"},
				{Name: "voluntario_funcao_ministerio"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"voluntario_funcao_funcoes",
				"voluntario_funcao_updated_at",
			}),
		}).Create(&globalRow).Error
	})
}
