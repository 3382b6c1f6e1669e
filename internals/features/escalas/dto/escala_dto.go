// file: internals/features/escalas/dto/escala_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"minhaigreja_backend/internals/features/escalas/model"
)

/* =======================================================
   Superfície pública (token-gated)
   ======================================================= */

// DisponibilidadeSlotRequest — resposta para UM slot.
// disponivel omitido = true.
type DisponibilidadeSlotRequest struct {
	SlotID     uuid.UUID `json:"slot_id" validate:"required"`
	Disponivel *bool     `json:"disponivel"`
	Observacao *string   `json:"observacao"`
}

type EnviarDisponibilidadeRequest struct {
	VoluntarioID uuid.UUID                    `json:"voluntario_id" validate:"required"`
	Slots        []DisponibilidadeSlotRequest `json:"slots" validate:"required,min=1,dive"`
	// Quando presente, substitui por inteiro o perfil de funções do
	// voluntário (override do link E perfil global do ministério).
	Funcoes []string `json:"funcoes,omitempty"`
}

type SolicitarTrocaRequest struct {
	SlotID        uuid.UUID  `json:"slot_id" validate:"required"`
	Funcao        string     `json:"funcao" validate:"required"`
	SolicitanteID uuid.UUID  `json:"solicitante_id" validate:"required"`
	SubstitutoID  *uuid.UUID `json:"substituto_id"`
	Mensagem      *string    `json:"mensagem"`
}

// VoluntarioElegivel — voluntário do ministério do link, com o perfil de
// funções já mesclado (override do link prevalece sobre o global).
type VoluntarioElegivel struct {
	VoluntarioID uuid.UUID `json:"voluntario_id"`
	Nome         string    `json:"nome"`
	Telefone     *string   `json:"telefone,omitempty"`
	Funcoes      []string  `json:"funcoes"`
}

type DisponibilidadeResposta struct {
	VoluntarioID uuid.UUID `json:"voluntario_id"`
	SlotID       uuid.UUID `json:"slot_id"`
	Disponivel   bool      `json:"disponivel"`
	Observacao   *string   `json:"observacao,omitempty"`
	EnviadoEm    time.Time `json:"enviado_em"`
}

type DetalheLinkResponse struct {
	Link             *model.EscalaLinkModel    `json:"link"`
	Slots            []model.EscalaSlotModel   `json:"slots"`
	Voluntarios      []VoluntarioElegivel      `json:"voluntarios"`
	Disponibilidades []DisponibilidadeResposta `json:"disponibilidades"`
	FuncoesNecessarias []string                `json:"funcoes_necessarias"` // união das funções de todos os slots
}

/* =======================================================
   Superfície admin
   ======================================================= */

type CriarSlotRequest struct {
	Tipo    string   `json:"tipo" validate:"omitempty,oneof=culto arena evento"`
	Titulo  string   `json:"titulo" validate:"required"`
	Data    string   `json:"data" validate:"required"` // YYYY-MM-DD
	Hora    string   `json:"hora" validate:"required"`
	Ordem   int      `json:"ordem"`
	Funcoes []string `json:"funcoes" validate:"required,min=1"`
}

type CriarLinkRequest struct {
	Ministerio string             `json:"ministerio" validate:"required"`
	Mes        int                `json:"mes" validate:"required,min=1,max=12"`
	Ano        int                `json:"ano" validate:"required,min=2000"`
	Titulo     string             `json:"titulo" validate:"required"`
	IgrejaID   *uuid.UUID         `json:"igreja_id"`
	Slots      []CriarSlotRequest `json:"slots" validate:"required,min=1,dive"`
}

type SalvarPublicadaRequest struct {
	Status    string          `json:"status" validate:"required,oneof=rascunho publicada"`
	Dados     *DocumentoDados `json:"dados" validate:"required"`
	Alertas   []string        `json:"alertas"`
	GeradoPor *string         `json:"gerado_por"`
}

type ResponderTrocaRequest struct {
	TrocaID  uuid.UUID `json:"troca_id" validate:"required"`
	Status   string    `json:"status" validate:"required,oneof=aprovada rejeitada"`
	Resposta *string   `json:"resposta"`
}

// ResponderTrocaResponse carrega o desfecho: quando a atribuição alvo não
// existe mais no documento, a aprovação registra mas Aviso explica (nunca
// um no-op silencioso).
type ResponderTrocaResponse struct {
	Troca                *model.EscalaTrocaModel `json:"troca"`
	AtribuicaoAtualizada bool                    `json:"atribuicao_atualizada"`
	Aviso                string                  `json:"aviso,omitempty"`
}

type DocumentoResponse struct {
	Documento *model.EscalaDocumentoModel `json:"documento"`
}

// AlertasToJSON serializa a lista de alertas de geração para jsonb.
func AlertasToJSON(alertas []string) (datatypes.JSON, error) {
	if alertas == nil {
		alertas = []string{}
	}
	b, err := json.Marshal(alertas)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
