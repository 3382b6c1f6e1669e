// file: internals/features/users/auth/model/usuario_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   UsuarioModel — conta administrativa (login local).
   ======================================================= */

type UsuarioModel struct {
	UsuarioID    uuid.UUID `json:"usuario_id" gorm:"type:uuid;primaryKey;column:usuario_id;default:gen_random_uuid()"`
	UsuarioNome  string    `json:"usuario_nome" gorm:"type:text;not null;column:usuario_nome"`
	UsuarioEmail string    `json:"usuario_email" gorm:"type:text;not null;uniqueIndex;column:usuario_email"`
	UsuarioSenha string    `json:"-" gorm:"type:text;not null;column:usuario_senha"` // hash bcrypt
	UsuarioRole  string    `json:"usuario_role" gorm:"type:text;not null;default:'admin';column:usuario_role"`

	UsuarioCreatedAt time.Time      `json:"usuario_created_at" gorm:"column:usuario_created_at;not null;autoCreateTime"`
	UsuarioUpdatedAt time.Time      `json:"usuario_updated_at" gorm:"column:usuario_updated_at;not null;autoUpdateTime"`
	UsuarioDeletedAt gorm.DeletedAt `json:"usuario_deleted_at,omitempty" gorm:"column:usuario_deleted_at;index"`
}

func (UsuarioModel) TableName() string { return "usuarios" }
