// file: internals/features/escalas/dto/documento_dto.go
package dto

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   Payload do documento de escala (coluna jsonb
   escala_documentos.escala_documento_dados)
   ======================================================= */

type Atribuicao struct {
	VoluntarioID   *uuid.UUID `json:"voluntario_id"` // nil = vaga em aberto
	VoluntarioNome string     `json:"voluntario_nome,omitempty"`
	Funcao         string     `json:"funcao"`
	Trocado        bool       `json:"trocado,omitempty"`
}

type SlotEscalado struct {
	SlotID uuid.UUID `json:"slot_id"`
	// Denormalizados para exibição; o cadastro em escala_slots segue mandando.
	Titulo      string       `json:"titulo,omitempty"`
	Data        string       `json:"data,omitempty"` // YYYY-MM-DD
	Hora        string       `json:"hora,omitempty"`
	Tipo        string       `json:"tipo,omitempty"`
	Atribuicoes []Atribuicao `json:"atribuicoes"`
}

type DocumentoDados struct {
	Slots []SlotEscalado `json:"slots"`
}

// AtribuicaoPlana é uma linha achatada (slot, voluntário, função) do payload.
type AtribuicaoPlana struct {
	SlotID       uuid.UUID
	VoluntarioID uuid.UUID
	Funcao       string
}

/* =======================================================
   Parse / serialização
   ======================================================= */

func ParseDocumentoDados(raw datatypes.JSON) (*DocumentoDados, error) {
	var dados DocumentoDados
	if len(raw) == 0 {
		return &dados, nil
	}
	if err := json.Unmarshal(raw, &dados); err != nil {
		return nil, fmt.Errorf("dados do documento inválidos: %w", err)
	}
	return &dados, nil
}

func (d *DocumentoDados) ToJSON() (datatypes.JSON, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

/* =======================================================
   Validação estrutural (ver publication_service)
   ======================================================= */

// Validar confere a estrutura do payload contra os slots do link:
// todo slot do payload precisa de id, sem repetição, e precisa existir
// no cadastro do link; toda atribuição precisa de função não-vazia.
func (d *DocumentoDados) Validar(slotsDoLink map[uuid.UUID]bool) error {
	vistos := make(map[uuid.UUID]bool, len(d.Slots))
	for i, s := range d.Slots {
		if s.SlotID == uuid.Nil {
			return fmt.Errorf("slots[%d]: slot_id obrigatório", i)
		}
		if vistos[s.SlotID] {
			return fmt.Errorf("slots[%d]: slot_id %s repetido", i, s.SlotID)
		}
		vistos[s.SlotID] = true
		if slotsDoLink != nil && !slotsDoLink[s.SlotID] {
			return fmt.Errorf("slots[%d]: slot %s não pertence ao link", i, s.SlotID)
		}
		for j, a := range s.Atribuicoes {
			if a.Funcao == "" {
				return fmt.Errorf("slots[%d].atribuicoes[%d]: funcao obrigatória", i, j)
			}
		}
	}
	return nil
}

/* =======================================================
   Operações usadas pelo índice e pelo fluxo de troca
   ======================================================= */

// Achatar lista as atribuições com voluntário definido, na ordem do payload.
// Vagas em aberto (voluntario_id nulo) ficam de fora.
func (d *DocumentoDados) Achatar() []AtribuicaoPlana {
	var out []AtribuicaoPlana
	for _, s := range d.Slots {
		for _, a := range s.Atribuicoes {
			if a.VoluntarioID == nil {
				continue
			}
			out = append(out, AtribuicaoPlana{
				SlotID:       s.SlotID,
				VoluntarioID: *a.VoluntarioID,
				Funcao:       a.Funcao,
			})
		}
	}
	return out
}

// Detem informa se o voluntário segura exatamente a atribuição (slot, função).
func (d *DocumentoDados) Detem(slotID, voluntarioID uuid.UUID, funcao string) bool {
	for _, s := range d.Slots {
		if s.SlotID != slotID {
			continue
		}
		for _, a := range s.Atribuicoes {
			if a.Funcao == funcao && a.VoluntarioID != nil && *a.VoluntarioID == voluntarioID {
				return true
			}
		}
	}
	return false
}

// AplicarTroca substitui a PRIMEIRA atribuição (slot, função, solicitante)
// pela identidade do substituto e marca trocado=true. Retorna false quando a
// atribuição não existe mais (documento mudou desde o pedido).
func (d *DocumentoDados) AplicarTroca(slotID, solicitanteID uuid.UUID, funcao string, substitutoID uuid.UUID, substitutoNome string) bool {
	for si := range d.Slots {
		if d.Slots[si].SlotID != slotID {
			continue
		}
		for ai := range d.Slots[si].Atribuicoes {
			a := &d.Slots[si].Atribuicoes[ai]
			if a.Funcao == funcao && a.VoluntarioID != nil && *a.VoluntarioID == solicitanteID {
				sub := substitutoID
				a.VoluntarioID = &sub
				a.VoluntarioNome = substitutoNome
				a.Trocado = true
				return true
			}
		}
	}
	return false
}
