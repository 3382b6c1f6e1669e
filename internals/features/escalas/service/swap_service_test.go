// file: internals/features/escalas/service/swap_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minhaigreja_backend/internals/features/escalas/dto"
	"minhaigreja_backend/internals/features/escalas/model"
)

// cenário padrão: link publicado com um slot onde Ana e Beto seguram a
// MESMA função "som". A segunda linha existe para provar que a troca
// reescreve só a linha da Ana.
type cenarioTroca struct {
	f     *fixture
	link  *model.EscalaLinkModel
	slot  model.EscalaSlotModel
	ana   *model.VoluntarioModel
	beto  *model.VoluntarioModel
	carla *model.VoluntarioModel
	svc   *SwapService
}

func novoCenarioTroca(t *testing.T) *cenarioTroca {
	t.Helper()
	f := newFixture()
	link, slots := f.seedLink("tok-troca", "louvor", nil, 1)
	ana := f.seedVoluntario("Ana", "louvor", nil)
	beto := f.seedVoluntario("Beto", "louvor", nil)
	carla := f.seedVoluntario("Carla", "louvor", nil)

	dados := &dto.DocumentoDados{Slots: []dto.SlotEscalado{{
		SlotID: slots[0].EscalaSlotID,
		Atribuicoes: []dto.Atribuicao{
			{VoluntarioID: &ana.VoluntarioID, VoluntarioNome: "Ana", Funcao: "som"},
			{VoluntarioID: &beto.VoluntarioID, VoluntarioNome: "Beto", Funcao: "som"},
		},
	}}}
	f.seedDocumento(link.EscalaLinkID, model.DocumentoPublicada, dados)
	f.atribuicoes.rows = []model.EscalaAtribuicaoModel{
		{EscalaAtribuicaoID: uuid.New(), EscalaAtribuicaoLinkID: link.EscalaLinkID, EscalaAtribuicaoSlotID: slots[0].EscalaSlotID, EscalaAtribuicaoVoluntarioID: ana.VoluntarioID, EscalaAtribuicaoFuncao: "som"},
		{EscalaAtribuicaoID: uuid.New(), EscalaAtribuicaoLinkID: link.EscalaLinkID, EscalaAtribuicaoSlotID: slots[0].EscalaSlotID, EscalaAtribuicaoVoluntarioID: beto.VoluntarioID, EscalaAtribuicaoFuncao: "som"},
	}

	return &cenarioTroca{f: f, link: link, slot: slots[0], ana: ana, beto: beto, carla: carla, svc: NewSwapService(f.repo)}
}

func (c *cenarioTroca) solicitar(t *testing.T, substituto *uuid.UUID) *model.EscalaTrocaModel {
	t.Helper()
	troca, err := c.svc.Solicitar(context.Background(), c.link.EscalaLinkToken, &dto.SolicitarTrocaRequest{
		SlotID:        c.slot.EscalaSlotID,
		Funcao:        "som",
		SolicitanteID: c.ana.VoluntarioID,
		SubstitutoID:  substituto,
	})
	require.NoError(t, err)
	return troca
}

func (c *cenarioTroca) dadosAtuais(t *testing.T) *dto.DocumentoDados {
	t.Helper()
	doc, err := c.f.documentos.GetByLink(context.Background(), c.link.EscalaLinkID)
	require.NoError(t, err)
	dados, err := dto.ParseDocumentoDados(doc.EscalaDocumentoDados)
	require.NoError(t, err)
	return dados
}

func TestSolicitarExigeDocumentoPublicado(t *testing.T) {
	f := newFixture()
	link, slots := f.seedLink("tok-s1", "louvor", nil, 1)
	ana := f.seedVoluntario("Ana", "louvor", nil)
	f.seedDocumento(link.EscalaLinkID, model.DocumentoRascunho, &dto.DocumentoDados{})

	svc := NewSwapService(f.repo)
	_, err := svc.Solicitar(context.Background(), link.EscalaLinkToken, &dto.SolicitarTrocaRequest{
		SlotID: slots[0].EscalaSlotID, Funcao: "som", SolicitanteID: ana.VoluntarioID,
	})
	assert.ErrorIs(t, err, ErrDocumentoNaoPublicado)
}

func TestSolicitarExigeAtribuicaoNoDocumento(t *testing.T) {
	c := novoCenarioTroca(t)
	_, err := c.svc.Solicitar(context.Background(), c.link.EscalaLinkToken, &dto.SolicitarTrocaRequest{
		SlotID:        c.slot.EscalaSlotID,
		Funcao:        "projeção", // Ana não segura projeção
		SolicitanteID: c.ana.VoluntarioID,
	})
	assert.ErrorIs(t, err, ErrNaoAtribuido)
}

func TestSolicitarDuplicadaDevolveAPendenteExistente(t *testing.T) {
	c := novoCenarioTroca(t)
	primeira := c.solicitar(t, nil)

	segunda, err := c.svc.Solicitar(context.Background(), c.link.EscalaLinkToken, &dto.SolicitarTrocaRequest{
		SlotID:        c.slot.EscalaSlotID,
		Funcao:        "som",
		SolicitanteID: c.ana.VoluntarioID,
	})
	assert.ErrorIs(t, err, ErrTrocaPendenteDuplicada)
	require.NotNil(t, segunda)
	assert.Equal(t, primeira.EscalaTrocaID, segunda.EscalaTrocaID)
}

func TestSolicitarRejeitaSubstitutoDeOutroMinisterio(t *testing.T) {
	c := novoCenarioTroca(t)
	recepcao := c.f.seedVoluntario("Davi", "recepção", nil)

	_, err := c.svc.Solicitar(context.Background(), c.link.EscalaLinkToken, &dto.SolicitarTrocaRequest{
		SlotID:        c.slot.EscalaSlotID,
		Funcao:        "som",
		SolicitanteID: c.ana.VoluntarioID,
		SubstitutoID:  &recepcao.VoluntarioID,
	})
	assert.ErrorIs(t, err, ErrNaoElegivel)
}

func TestResponderAprovadaComSubstitutoReescreveUmaAtribuicao(t *testing.T) {
	c := novoCenarioTroca(t)
	troca := c.solicitar(t, &c.carla.VoluntarioID)
	versaoAntes := c.f.documentos.docs[c.link.EscalaLinkID].EscalaDocumentoVersao

	resp, err := c.svc.Responder(context.Background(), c.link.EscalaLinkID, &dto.ResponderTrocaRequest{
		TrocaID: troca.EscalaTrocaID,
		Status:  "aprovada",
	})
	require.NoError(t, err)
	assert.True(t, resp.AtribuicaoAtualizada)
	assert.Empty(t, resp.Aviso)
	assert.Equal(t, model.TrocaAprovada, resp.Troca.EscalaTrocaStatus)
	require.NotNil(t, resp.Troca.EscalaTrocaRespondidoEm)

	// só a linha da Ana muda; a do Beto (mesma função) fica intacta
	dados := c.dadosAtuais(t)
	atribs := dados.Slots[0].Atribuicoes
	require.Len(t, atribs, 2)
	assert.Equal(t, c.carla.VoluntarioID, *atribs[0].VoluntarioID)
	assert.Equal(t, "Carla", atribs[0].VoluntarioNome)
	assert.True(t, atribs[0].Trocado)
	assert.Equal(t, c.beto.VoluntarioID, *atribs[1].VoluntarioID)
	assert.False(t, atribs[1].Trocado)

	// versão avança, índice realinhado
	assert.Greater(t, c.f.documentos.docs[c.link.EscalaLinkID].EscalaDocumentoVersao, versaoAntes)
	rows, _ := c.f.atribuicoes.ListByLink(context.Background(), c.link.EscalaLinkID)
	vols := map[uuid.UUID]bool{}
	for _, r := range rows {
		vols[r.EscalaAtribuicaoVoluntarioID] = true
	}
	assert.True(t, vols[c.carla.VoluntarioID])
	assert.False(t, vols[c.ana.VoluntarioID])
}

func TestResponderAprovadaSemSubstitutoNaoTocaNoDocumento(t *testing.T) {
	c := novoCenarioTroca(t)
	troca := c.solicitar(t, nil)
	versaoAntes := c.f.documentos.docs[c.link.EscalaLinkID].EscalaDocumentoVersao

	resp, err := c.svc.Responder(context.Background(), c.link.EscalaLinkID, &dto.ResponderTrocaRequest{
		TrocaID: troca.EscalaTrocaID,
		Status:  "aprovada",
	})
	require.NoError(t, err)
	assert.False(t, resp.AtribuicaoAtualizada)
	assert.Equal(t, model.TrocaAprovada, resp.Troca.EscalaTrocaStatus)
	assert.Equal(t, versaoAntes, c.f.documentos.docs[c.link.EscalaLinkID].EscalaDocumentoVersao)

	dados := c.dadosAtuais(t)
	assert.Equal(t, c.ana.VoluntarioID, *dados.Slots[0].Atribuicoes[0].VoluntarioID)
}

func TestResponderRejeitada(t *testing.T) {
	c := novoCenarioTroca(t)
	troca := c.solicitar(t, &c.carla.VoluntarioID)

	resp, err := c.svc.Responder(context.Background(), c.link.EscalaLinkID, &dto.ResponderTrocaRequest{
		TrocaID:  troca.EscalaTrocaID,
		Status:   "rejeitada",
		Resposta: ptr("já temos gente suficiente"),
	})
	require.NoError(t, err)
	assert.False(t, resp.AtribuicaoAtualizada)
	assert.Equal(t, model.TrocaRejeitada, resp.Troca.EscalaTrocaStatus)

	dados := c.dadosAtuais(t)
	assert.Equal(t, c.ana.VoluntarioID, *dados.Slots[0].Atribuicoes[0].VoluntarioID)
}

func TestResponderJaRespondida(t *testing.T) {
	c := novoCenarioTroca(t)
	troca := c.solicitar(t, nil)

	_, err := c.svc.Responder(context.Background(), c.link.EscalaLinkID, &dto.ResponderTrocaRequest{
		TrocaID: troca.EscalaTrocaID, Status: "rejeitada",
	})
	require.NoError(t, err)

	_, err = c.svc.Responder(context.Background(), c.link.EscalaLinkID, &dto.ResponderTrocaRequest{
		TrocaID: troca.EscalaTrocaID, Status: "aprovada",
	})
	assert.ErrorIs(t, err, ErrJaRespondida)
}

func TestResponderTrocaDeOutroLink(t *testing.T) {
	c := novoCenarioTroca(t)
	troca := c.solicitar(t, nil)

	_, err := c.svc.Responder(context.Background(), uuid.New(), &dto.ResponderTrocaRequest{
		TrocaID: troca.EscalaTrocaID, Status: "aprovada",
	})
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestResponderComAtribuicaoQueSumiuAprovaComAviso(t *testing.T) {
	c := novoCenarioTroca(t)
	troca := c.solicitar(t, &c.carla.VoluntarioID)

	// o documento muda entre o pedido e a resposta: Ana sai da escala
	dados := c.dadosAtuais(t)
	dados.Slots[0].Atribuicoes = dados.Slots[0].Atribuicoes[1:] // só Beto
	raw, err := dados.ToJSON()
	require.NoError(t, err)
	c.f.documentos.docs[c.link.EscalaLinkID].EscalaDocumentoDados = raw

	resp, err := c.svc.Responder(context.Background(), c.link.EscalaLinkID, &dto.ResponderTrocaRequest{
		TrocaID: troca.EscalaTrocaID, Status: "aprovada",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TrocaAprovada, resp.Troca.EscalaTrocaStatus)
	assert.False(t, resp.AtribuicaoAtualizada)
	assert.NotEmpty(t, resp.Aviso, "desfecho precisa ser explícito, nunca no-op silencioso")

	depois := c.dadosAtuais(t)
	require.Len(t, depois.Slots[0].Atribuicoes, 1)
	assert.Equal(t, c.beto.VoluntarioID, *depois.Slots[0].Atribuicoes[0].VoluntarioID)
}

func TestResponderRetentaEmConflitoDeVersao(t *testing.T) {
	c := novoCenarioTroca(t)
	troca := c.solicitar(t, &c.carla.VoluntarioID)

	// escritor concorrente avança a versão logo após a primeira leitura
	colisoes := 0
	c.f.documentos.aposLer = func() {
		if colisoes == 0 {
			colisoes++
			c.f.documentos.docs[c.link.EscalaLinkID].EscalaDocumentoVersao++
		}
	}

	resp, err := c.svc.Responder(context.Background(), c.link.EscalaLinkID, &dto.ResponderTrocaRequest{
		TrocaID: troca.EscalaTrocaID, Status: "aprovada",
	})
	require.NoError(t, err)
	assert.True(t, resp.AtribuicaoAtualizada)
	assert.Equal(t, c.carla.VoluntarioID, *c.dadosAtuais(t).Slots[0].Atribuicoes[0].VoluntarioID)
}

func TestResponderDesisteDepoisDasTentativas(t *testing.T) {
	c := novoCenarioTroca(t)
	troca := c.solicitar(t, &c.carla.VoluntarioID)

	// colisão permanente: toda leitura fica imediatamente obsoleta
	c.f.documentos.aposLer = func() {
		c.f.documentos.docs[c.link.EscalaLinkID].EscalaDocumentoVersao++
	}

	_, err := c.svc.Responder(context.Background(), c.link.EscalaLinkID, &dto.ResponderTrocaRequest{
		TrocaID: troca.EscalaTrocaID, Status: "aprovada",
	})
	assert.ErrorIs(t, err, ErrConflitoVersao)
}
