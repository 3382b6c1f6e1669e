// file: internals/features/escalas/model/documento_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   Enum de status do documento
   ======================================================= */

type DocumentoStatus string

const (
	DocumentoRascunho  DocumentoStatus = "rascunho"
	DocumentoPublicada DocumentoStatus = "publicada"
)

/* =======================================================
   EscalaDocumentoModel — fonte da verdade de "quem serve onde".
   Um por link (upsert por link_id). Depois de publicada, o payload
   só muda pela reescrita pontual do fluxo de troca.
   ======================================================= */

type EscalaDocumentoModel struct {
	EscalaDocumentoID     uuid.UUID       `json:"escala_documento_id" gorm:"type:uuid;primaryKey;column:escala_documento_id;default:gen_random_uuid()"`
	EscalaDocumentoLinkID uuid.UUID       `json:"escala_documento_link_id" gorm:"type:uuid;not null;uniqueIndex;column:escala_documento_link_id"`
	EscalaDocumentoStatus DocumentoStatus `json:"escala_documento_status" gorm:"type:text;not null;default:'rascunho';column:escala_documento_status"`

	// dados: slots → lista de atribuições (ver dto.DocumentoDados)
	EscalaDocumentoDados   datatypes.JSON `json:"escala_documento_dados" gorm:"type:jsonb;not null;default:'{}';column:escala_documento_dados"`
	EscalaDocumentoAlertas datatypes.JSON `json:"escala_documento_alertas" gorm:"type:jsonb;not null;default:'[]';column:escala_documento_alertas"`

	// token de concorrência otimista: toda reescrita condiciona em versao
	EscalaDocumentoVersao int `json:"escala_documento_versao" gorm:"type:int;not null;default:1;column:escala_documento_versao"`

	EscalaDocumentoGeradoPor   *string    `json:"escala_documento_gerado_por,omitempty" gorm:"type:text;column:escala_documento_gerado_por"`
	EscalaDocumentoGeradoEm    time.Time  `json:"escala_documento_gerado_em" gorm:"column:escala_documento_gerado_em;not null;autoCreateTime"`
	EscalaDocumentoPublicadoEm *time.Time `json:"escala_documento_publicado_em,omitempty" gorm:"column:escala_documento_publicado_em"`

	EscalaDocumentoUpdatedAt time.Time `json:"escala_documento_updated_at" gorm:"column:escala_documento_updated_at;not null;autoUpdateTime"`
}

func (EscalaDocumentoModel) TableName() string { return "escala_documentos" }

/* =======================================================
   EscalaAtribuicaoModel — índice achatado, derivado e descartável.
   Reconstruído inteiro (delete+insert) a cada publicação; existe
   só para consulta ("onde fulano serve este mês"). NUNCA é fonte
   da verdade.
   ======================================================= */

type EscalaAtribuicaoModel struct {
	EscalaAtribuicaoID           uuid.UUID `json:"escala_atribuicao_id" gorm:"type:uuid;primaryKey;column:escala_atribuicao_id;default:gen_random_uuid()"`
	EscalaAtribuicaoLinkID       uuid.UUID `json:"escala_atribuicao_link_id" gorm:"type:uuid;not null;index;column:escala_atribuicao_link_id"`
	EscalaAtribuicaoSlotID       uuid.UUID `json:"escala_atribuicao_slot_id" gorm:"type:uuid;not null;index;column:escala_atribuicao_slot_id"`
	EscalaAtribuicaoVoluntarioID uuid.UUID `json:"escala_atribuicao_voluntario_id" gorm:"type:uuid;not null;index;column:escala_atribuicao_voluntario_id"`
	EscalaAtribuicaoFuncao       string    `json:"escala_atribuicao_funcao" gorm:"type:text;not null;column:escala_atribuicao_funcao"`

	EscalaAtribuicaoCreatedAt time.Time `json:"escala_atribuicao_created_at" gorm:"column:escala_atribuicao_created_at;not null;autoCreateTime"`
}

func (EscalaAtribuicaoModel) TableName() string { return "escala_atribuicoes" }
