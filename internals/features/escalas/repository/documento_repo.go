// file: internals/features/escalas/repository/documento_repo.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minhaigreja_backend/internals/features/escalas/model"
)

type documentoRepo struct {
	db *gorm.DB
}

func (r *documentoRepo) GetByLink(ctx context.Context, linkID uuid.UUID) (*model.EscalaDocumentoModel, error) {
	var doc model.EscalaDocumentoModel
	err := r.db.WithContext(ctx).
		Where("escala_documento_link_id = ?", linkID).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentoRepo) Upsert(ctx context.Context, doc *model.EscalaDocumentoModel) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "escala_documento_link_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"escala_documento_status":       doc.EscalaDocumentoStatus,
			"escala_documento_dados":        doc.EscalaDocumentoDados,
			"escala_documento_alertas":      doc.EscalaDocumentoAlertas,
			"escala_documento_gerado_por":   doc.EscalaDocumentoGeradoPor,
			"escala_documento_publicado_em": doc.EscalaDocumentoPublicadoEm,
			// cada substituição em bloco avança o token de versão
			"escala_documento_versao": gorm.Expr("escala_documentos.escala_documento_versao + 1"),
		}),
	}).Create(doc).Error
}

func (r *documentoRepo) AtualizarDadosSeVersao(ctx context.Context, linkID uuid.UUID, dados datatypes.JSON, versao int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.EscalaDocumentoModel{}).
		Where("escala_documento_link_id = ? AND escala_documento_versao = ?", linkID, versao).
		Updates(map[string]interface{}{
			"escala_documento_dados":  dados,
			"escala_documento_versao": gorm.Expr("escala_documento_versao + 1"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
