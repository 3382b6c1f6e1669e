// file: internals/features/escalas/model/disponibilidade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   EscalaDisponibilidadeModel — resposta do voluntário
   Chave natural: (link, voluntário, slot); reenvio sobrescreve
   (sem histórico).
   ======================================================= */

type EscalaDisponibilidadeModel struct {
	EscalaDisponibilidadeID           uuid.UUID `json:"escala_disponibilidade_id" gorm:"type:uuid;primaryKey;column:escala_disponibilidade_id;default:gen_random_uuid()"`
	EscalaDisponibilidadeLinkID       uuid.UUID `json:"escala_disponibilidade_link_id" gorm:"type:uuid;not null;uniqueIndex:uq_escala_disponibilidade,priority:1;column:escala_disponibilidade_link_id"`
	EscalaDisponibilidadeVoluntarioID uuid.UUID `json:"escala_disponibilidade_voluntario_id" gorm:"type:uuid;not null;uniqueIndex:uq_escala_disponibilidade,priority:2;column:escala_disponibilidade_voluntario_id"`
	EscalaDisponibilidadeSlotID       uuid.UUID `json:"escala_disponibilidade_slot_id" gorm:"type:uuid;not null;uniqueIndex:uq_escala_disponibilidade,priority:3;column:escala_disponibilidade_slot_id"`

	EscalaDisponibilidadeDisponivel bool    `json:"escala_disponibilidade_disponivel" gorm:"not null;default:true;column:escala_disponibilidade_disponivel"`
	EscalaDisponibilidadeObservacao *string `json:"escala_disponibilidade_observacao,omitempty" gorm:"type:text;column:escala_disponibilidade_observacao"`

	EscalaDisponibilidadeEnviadoEm time.Time `json:"escala_disponibilidade_enviado_em" gorm:"column:escala_disponibilidade_enviado_em;not null;autoUpdateTime"`
}

func (EscalaDisponibilidadeModel) TableName() string { return "escala_disponibilidades" }
