// file: internals/features/escalas/model/link_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   Enums de status / tipo
   ======================================================= */

type LinkStatus string

const (
	LinkAtivo     LinkStatus = "ativo"
	LinkEncerrado LinkStatus = "encerrado"
)

type SlotTipo string

const (
	SlotCulto  SlotTipo = "culto"
	SlotArena  SlotTipo = "arena"
	SlotEvento SlotTipo = "evento"
)

/* =======================================================
   EscalaLinkModel — rodada de escala de um ministério
   (token público serve de acesso não-autenticado)
   ======================================================= */

type EscalaLinkModel struct {
	EscalaLinkID         uuid.UUID  `json:"escala_link_id" gorm:"type:uuid;primaryKey;column:escala_link_id;default:gen_random_uuid()"`
	EscalaLinkToken      string     `json:"escala_link_token" gorm:"type:text;not null;uniqueIndex;column:escala_link_token"`
	EscalaLinkIgrejaID   *uuid.UUID `json:"escala_link_igreja_id,omitempty" gorm:"type:uuid;column:escala_link_igreja_id"`
	EscalaLinkMinisterio string     `json:"escala_link_ministerio" gorm:"type:text;not null;column:escala_link_ministerio"`
	EscalaLinkMes        int        `json:"escala_link_mes" gorm:"type:int;not null;column:escala_link_mes"` // 1..12
	EscalaLinkAno        int        `json:"escala_link_ano" gorm:"type:int;not null;column:escala_link_ano"`
	EscalaLinkTitulo     string     `json:"escala_link_titulo" gorm:"type:text;not null;column:escala_link_titulo"`

	// encerrado apenas como efeito da publicação (ver publication_service)
	EscalaLinkStatus LinkStatus `json:"escala_link_status" gorm:"type:text;not null;default:'ativo';column:escala_link_status"`

	EscalaLinkCreatedAt time.Time      `json:"escala_link_created_at" gorm:"column:escala_link_created_at;not null;autoCreateTime"`
	EscalaLinkUpdatedAt time.Time      `json:"escala_link_updated_at" gorm:"column:escala_link_updated_at;not null;autoUpdateTime"`
	EscalaLinkDeletedAt gorm.DeletedAt `json:"escala_link_deleted_at,omitempty" gorm:"column:escala_link_deleted_at;index"`
}

func (EscalaLinkModel) TableName() string { return "escala_links" }

/* =======================================================
   EscalaSlotModel — uma ocorrência escalável do link
   ======================================================= */

type EscalaSlotModel struct {
	EscalaSlotID     uuid.UUID `json:"escala_slot_id" gorm:"type:uuid;primaryKey;column:escala_slot_id;default:gen_random_uuid()"`
	EscalaSlotLinkID uuid.UUID `json:"escala_slot_link_id" gorm:"type:uuid;not null;index;column:escala_slot_link_id"`

	EscalaSlotTipo   SlotTipo  `json:"escala_slot_tipo" gorm:"type:text;not null;default:'culto';column:escala_slot_tipo"`
	EscalaSlotTitulo string    `json:"escala_slot_titulo" gorm:"type:text;not null;column:escala_slot_titulo"`
	EscalaSlotData   time.Time `json:"escala_slot_data" gorm:"type:date;not null;column:escala_slot_data"`
	EscalaSlotHora   string    `json:"escala_slot_hora" gorm:"type:text;not null;column:escala_slot_hora"` // HH:MM
	EscalaSlotOrdem  int       `json:"escala_slot_ordem" gorm:"type:int;not null;default:0;column:escala_slot_ordem"`

	// Funções necessárias, em ordem, SEM deduplicar: a mesma função pode
	// aparecer N vezes quando o slot precisa de N pessoas nela.
	EscalaSlotFuncoes pq.StringArray `json:"escala_slot_funcoes" gorm:"type:text[];not null;column:escala_slot_funcoes"`

	EscalaSlotCreatedAt time.Time `json:"escala_slot_created_at" gorm:"column:escala_slot_created_at;not null;autoCreateTime"`
	EscalaSlotUpdatedAt time.Time `json:"escala_slot_updated_at" gorm:"column:escala_slot_updated_at;not null;autoUpdateTime"`
}

func (EscalaSlotModel) TableName() string { return "escala_slots" }
