package database

import (
	"log"

	"gorm.io/gorm"

	escalaModel "minhaigreja_backend/internals/features/escalas/model"
	userModel "minhaigreja_backend/internals/features/users/auth/model"
)

// AutoMigrate cria/atualiza as tabelas do motor de escalas.
// Ordem importa: tabelas referenciadas primeiro.
func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&userModel.UsuarioModel{},
		&escalaModel.VoluntarioModel{},
		&escalaModel.EscalaLinkModel{},
		&escalaModel.EscalaSlotModel{},
		&escalaModel.EscalaDisponibilidadeModel{},
		&escalaModel.VoluntarioFuncaoModel{},
		&escalaModel.EscalaVoluntarioFuncaoModel{},
		&escalaModel.EscalaDocumentoModel{},
		&escalaModel.EscalaAtribuicaoModel{},
		&escalaModel.EscalaTrocaModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate falhou: %v", err)
	}
	log.Println("✅ Migrações aplicadas.")
}
