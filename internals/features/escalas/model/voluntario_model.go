// file: internals/features/escalas/model/voluntario_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =======================================================
   VoluntarioModel — cadastro mínimo consumido pela escala
   (o CRUD completo de pessoas vive fora deste módulo)
   ======================================================= */

type VoluntarioModel struct {
	VoluntarioID         uuid.UUID  `json:"voluntario_id" gorm:"type:uuid;primaryKey;column:voluntario_id;default:gen_random_uuid()"`
	VoluntarioIgrejaID   *uuid.UUID `json:"voluntario_igreja_id,omitempty" gorm:"type:uuid;column:voluntario_igreja_id"`
	VoluntarioNome       string     `json:"voluntario_nome" gorm:"type:text;not null;column:voluntario_nome"`
	VoluntarioTelefone   *string    `json:"voluntario_telefone,omitempty" gorm:"type:text;column:voluntario_telefone"`
	VoluntarioMinisterio string     `json:"voluntario_ministerio" gorm:"type:text;not null;index;column:voluntario_ministerio"`
	VoluntarioAtivo      bool       `json:"voluntario_ativo" gorm:"not null;default:true;column:voluntario_ativo"`

	VoluntarioCreatedAt time.Time      `json:"voluntario_created_at" gorm:"column:voluntario_created_at;not null;autoCreateTime"`
	VoluntarioUpdatedAt time.Time      `json:"voluntario_updated_at" gorm:"column:voluntario_updated_at;not null;autoUpdateTime"`
	VoluntarioDeletedAt gorm.DeletedAt `json:"voluntario_deleted_at,omitempty" gorm:"column:voluntario_deleted_at;index"`
}

func (VoluntarioModel) TableName() string { return "voluntarios" }

/* =======================================================
   Perfil de funções — duas camadas:
   - global (voluntário ↔ ministério)
   - override por link (prevalece quando existe)
   Ambas substituídas por inteiro a cada envio com funções.
   ======================================================= */

type VoluntarioFuncaoModel struct {
	VoluntarioFuncaoID           uuid.UUID      `json:"voluntario_funcao_id" gorm:"type:uuid;primaryKey;column:voluntario_funcao_id;default:gen_random_uuid()"`
	VoluntarioFuncaoVoluntarioID uuid.UUID      `json:"voluntario_funcao_voluntario_id" gorm:"type:uuid;not null;uniqueIndex:uq_voluntario_funcao,priority:1;column:voluntario_funcao_voluntario_id"`
	VoluntarioFuncaoMinisterio   string         `json:"voluntario_funcao_ministerio" gorm:"type:text;not null;uniqueIndex:uq_voluntario_funcao,priority:2;column:voluntario_funcao_ministerio"`
	VoluntarioFuncaoFuncoes      pq.StringArray `json:"voluntario_funcao_funcoes" gorm:"type:text[];not null;column:voluntario_funcao_funcoes"`

	VoluntarioFuncaoUpdatedAt time.Time `json:"voluntario_funcao_updated_at" gorm:"column:voluntario_funcao_updated_at;not null;autoUpdateTime"`
}

func (VoluntarioFuncaoModel) TableName() string { return "voluntario_funcoes" }

type EscalaVoluntarioFuncaoModel struct {
	EscalaVoluntarioFuncaoID           uuid.UUID      `json:"escala_voluntario_funcao_id" gorm:"type:uuid;primaryKey;column:escala_voluntario_funcao_id;default:gen_random_uuid()"`
	EscalaVoluntarioFuncaoLinkID       uuid.UUID      `json:"escala_voluntario_funcao_link_id" gorm:"type:uuid;not null;uniqueIndex:uq_escala_voluntario_funcao,priority:1;column:escala_voluntario_funcao_link_id"`
	EscalaVoluntarioFuncaoVoluntarioID uuid.UUID      `json:"escala_voluntario_funcao_voluntario_id" gorm:"type:uuid;not null;uniqueIndex:uq_escala_voluntario_funcao,priority:2;column:escala_voluntario_funcao_voluntario_id"`
	EscalaVoluntarioFuncaoFuncoes      pq.StringArray `json:"escala_voluntario_funcao_funcoes" gorm:"type:text[];not null;column:escala_voluntario_funcao_funcoes"`

	EscalaVoluntarioFuncaoUpdatedAt time.Time `json:"escala_voluntario_funcao_updated_at" gorm:"column:escala_voluntario_funcao_updated_at;not null;autoUpdateTime"`
}

func (EscalaVoluntarioFuncaoModel) TableName() string { return "escala_voluntario_funcoes" }
