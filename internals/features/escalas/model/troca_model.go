// file: internals/features/escalas/model/troca_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Enum de status da troca
   pendente → aprovada | rejeitada (ambos terminais)
   ======================================================= */

type TrocaStatus string

const (
	TrocaPendente  TrocaStatus = "pendente"
	TrocaAprovada  TrocaStatus = "aprovada"
	TrocaRejeitada TrocaStatus = "rejeitada"
)

/* =======================================================
   EscalaTrocaModel — pedido de substituição de UMA atribuição
   (slot, função) de um documento publicado. Trilha de auditoria:
   registros nunca reabrem depois de respondidos.
   ======================================================= */

type EscalaTrocaModel struct {
	EscalaTrocaID     uuid.UUID `json:"escala_troca_id" gorm:"type:uuid;primaryKey;column:escala_troca_id;default:gen_random_uuid()"`
	EscalaTrocaLinkID uuid.UUID `json:"escala_troca_link_id" gorm:"type:uuid;not null;index;column:escala_troca_link_id"`
	EscalaTrocaSlotID uuid.UUID `json:"escala_troca_slot_id" gorm:"type:uuid;not null;column:escala_troca_slot_id"`
	EscalaTrocaFuncao string    `json:"escala_troca_funcao" gorm:"type:text;not null;column:escala_troca_funcao"`

	EscalaTrocaSolicitanteID uuid.UUID  `json:"escala_troca_solicitante_id" gorm:"type:uuid;not null;index;column:escala_troca_solicitante_id"`
	EscalaTrocaSubstitutoID  *uuid.UUID `json:"escala_troca_substituto_id,omitempty" gorm:"type:uuid;column:escala_troca_substituto_id"`

	EscalaTrocaMensagem *string     `json:"escala_troca_mensagem,omitempty" gorm:"type:text;column:escala_troca_mensagem"`
	EscalaTrocaStatus   TrocaStatus `json:"escala_troca_status" gorm:"type:text;not null;default:'pendente';column:escala_troca_status"`
	EscalaTrocaResposta *string     `json:"escala_troca_resposta,omitempty" gorm:"type:text;column:escala_troca_resposta"`

	EscalaTrocaCriadoEm     time.Time  `json:"escala_troca_criado_em" gorm:"column:escala_troca_criado_em;not null;autoCreateTime"`
	EscalaTrocaRespondidoEm *time.Time `json:"escala_troca_respondido_em,omitempty" gorm:"column:escala_troca_respondido_em"`
}

func (EscalaTrocaModel) TableName() string { return "escala_trocas" }
