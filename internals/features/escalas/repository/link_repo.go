// file: internals/features/escalas/repository/link_repo.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/escalas/model"
)

type linkRepo struct {
	db *gorm.DB
}

func (r *linkRepo) GetByToken(ctx context.Context, token string) (*model.EscalaLinkModel, error) {
	var link model.EscalaLinkModel
	err := r.db.WithContext(ctx).
		Where("escala_link_token = ?", token).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.EscalaLinkModel, error) {
	var link model.EscalaLinkModel
	err := r.db.WithContext(ctx).
		Where("escala_link_id = ?", id).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepo) ListSlots(ctx context.Context, linkID uuid.UUID) ([]model.EscalaSlotModel, error) {
	var slots []model.EscalaSlotModel
	err := r.db.WithContext(ctx).
		Where("escala_slot_link_id = ?", linkID).
		Order("escala_slot_ordem ASC, escala_slot_data ASC, escala_slot_hora ASC").
		Find(&slots).Error
	return slots, err
}

func (r *linkRepo) Create(ctx context.Context, link *model.EscalaLinkModel, slots []model.EscalaSlotModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		for i := range slots {
			slots[i].EscalaSlotLinkID = link.EscalaLinkID
		}
		if len(slots) > 0 {
			if err := tx.Create(&slots).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *linkRepo) UpdateStatus(ctx context.Context, linkID uuid.UUID, status model.LinkStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.EscalaLinkModel{}).
		Where("escala_link_id = ?", linkID).
		Update("escala_link_status", status).Error
}
