// file: internals/features/escalas/service/mock_repos_test.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"minhaigreja_backend/internals/features/escalas/dto"
	"minhaigreja_backend/internals/features/escalas/model"
	"minhaigreja_backend/internals/features/escalas/repository"
)

/* =======================================================
   Fakes em memória dos repositórios, com a mesma semântica
   dos impls GORM (não encontrado = (nil, nil), CAS por
   versão/status). Transaction roda fn direto sobre o mesmo
   estado.
   ======================================================= */

type fakeLinkRepo struct {
	links map[uuid.UUID]*model.EscalaLinkModel
	slots map[uuid.UUID][]model.EscalaSlotModel
}

func (f *fakeLinkRepo) GetByToken(_ context.Context, token string) (*model.EscalaLinkModel, error) {
	for _, l := range f.links {
		if l.EscalaLinkToken == token {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLinkRepo) GetByID(_ context.Context, id uuid.UUID) (*model.EscalaLinkModel, error) {
	l, ok := f.links[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLinkRepo) ListSlots(_ context.Context, linkID uuid.UUID) ([]model.EscalaSlotModel, error) {
	return f.slots[linkID], nil
}

func (f *fakeLinkRepo) Create(_ context.Context, link *model.EscalaLinkModel, slots []model.EscalaSlotModel) error {
	if link.EscalaLinkID == uuid.Nil {
		link.EscalaLinkID = uuid.New()
	}
	if link.EscalaLinkStatus == "" {
		link.EscalaLinkStatus = model.LinkAtivo
	}
	cp := *link
	f.links[link.EscalaLinkID] = &cp
	for i := range slots {
		if slots[i].EscalaSlotID == uuid.Nil {
			slots[i].EscalaSlotID = uuid.New()
		}
		slots[i].EscalaSlotLinkID = link.EscalaLinkID
	}
	f.slots[link.EscalaLinkID] = append(f.slots[link.EscalaLinkID], slots...)
	return nil
}

func (f *fakeLinkRepo) UpdateStatus(_ context.Context, linkID uuid.UUID, status model.LinkStatus) error {
	if l, ok := f.links[linkID]; ok {
		l.EscalaLinkStatus = status
	}
	return nil
}

type funcaoChave struct {
	dono       uuid.UUID // voluntário
	escopo     string    // ministério (global) ou link id em texto (override)
}

type fakeVoluntarioRepo struct {
	vols    map[uuid.UUID]*model.VoluntarioModel
	funcoes map[funcaoChave][]string
}

func (f *fakeVoluntarioRepo) GetByID(_ context.Context, id uuid.UUID) (*model.VoluntarioModel, error) {
	v, ok := f.vols[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVoluntarioRepo) ListByMinisterio(_ context.Context, ministerio string, igrejaID *uuid.UUID) ([]model.VoluntarioModel, error) {
	var out []model.VoluntarioModel
	for _, v := range f.vols {
		if !v.VoluntarioAtivo || v.VoluntarioMinisterio != ministerio {
			continue
		}
		if igrejaID != nil {
			if v.VoluntarioIgrejaID == nil || *v.VoluntarioIgrejaID != *igrejaID {
				continue
			}
		}
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeVoluntarioRepo) FuncoesGlobais(_ context.Context, ministerio string) (map[uuid.UUID][]string, error) {
	out := map[uuid.UUID][]string{}
	for k, fs := range f.funcoes {
		if k.escopo == ministerio {
			out[k.dono] = fs
		}
	}
	return out, nil
}

func (f *fakeVoluntarioRepo) FuncoesDoLink(_ context.Context, linkID uuid.UUID) (map[uuid.UUID][]string, error) {
	out := map[uuid.UUID][]string{}
	for k, fs := range f.funcoes {
		if k.escopo == linkID.String() {
			out[k.dono] = fs
		}
	}
	return out, nil
}

func (f *fakeVoluntarioRepo) SubstituirFuncoes(_ context.Context, linkID, voluntarioID uuid.UUID, ministerio string, funcoes []string) error {
	f.funcoes[funcaoChave{dono: voluntarioID, escopo: linkID.String()}] = funcoes
	f.funcoes[funcaoChave{dono: voluntarioID, escopo: ministerio}] = funcoes
	return nil
}

type dispChave struct {
	link, vol, slot uuid.UUID
}

type fakeDisponibilidadeRepo struct {
	respostas map[dispChave]*model.EscalaDisponibilidadeModel
}

func (f *fakeDisponibilidadeRepo) Upsert(_ context.Context, resp *model.EscalaDisponibilidadeModel) error {
	cp := *resp
	cp.EscalaDisponibilidadeEnviadoEm = time.Now()
	f.respostas[dispChave{
		link: resp.EscalaDisponibilidadeLinkID,
		vol:  resp.EscalaDisponibilidadeVoluntarioID,
		slot: resp.EscalaDisponibilidadeSlotID,
	}] = &cp
	return nil
}

func (f *fakeDisponibilidadeRepo) ListByLink(_ context.Context, linkID uuid.UUID) ([]model.EscalaDisponibilidadeModel, error) {
	var out []model.EscalaDisponibilidadeModel
	for k, r := range f.respostas {
		if k.link == linkID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeDocumentoRepo struct {
	docs map[uuid.UUID]*model.EscalaDocumentoModel // por link_id
	// chamado logo após cada GetByLink; usado para simular um escritor
	// concorrente entre a leitura e a regravação condicional
	aposLer func()
}

func (f *fakeDocumentoRepo) GetByLink(_ context.Context, linkID uuid.UUID) (*model.EscalaDocumentoModel, error) {
	defer func() {
		if f.aposLer != nil {
			f.aposLer()
		}
	}()
	d, ok := f.docs[linkID]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocumentoRepo) Upsert(_ context.Context, doc *model.EscalaDocumentoModel) error {
	if atual, ok := f.docs[doc.EscalaDocumentoLinkID]; ok {
		atual.EscalaDocumentoStatus = doc.EscalaDocumentoStatus
		atual.EscalaDocumentoDados = doc.EscalaDocumentoDados
		atual.EscalaDocumentoAlertas = doc.EscalaDocumentoAlertas
		atual.EscalaDocumentoGeradoPor = doc.EscalaDocumentoGeradoPor
		atual.EscalaDocumentoPublicadoEm = doc.EscalaDocumentoPublicadoEm
		atual.EscalaDocumentoVersao++
		return nil
	}
	cp := *doc
	if cp.EscalaDocumentoID == uuid.Nil {
		cp.EscalaDocumentoID = uuid.New()
	}
	if cp.EscalaDocumentoVersao == 0 {
		cp.EscalaDocumentoVersao = 1
	}
	f.docs[doc.EscalaDocumentoLinkID] = &cp
	return nil
}

func (f *fakeDocumentoRepo) AtualizarDadosSeVersao(_ context.Context, linkID uuid.UUID, dados datatypes.JSON, versao int) (bool, error) {
	d, ok := f.docs[linkID]
	if !ok || d.EscalaDocumentoVersao != versao {
		return false, nil
	}
	d.EscalaDocumentoDados = dados
	d.EscalaDocumentoVersao++
	return true, nil
}

type fakeAtribuicaoRepo struct {
	rows []model.EscalaAtribuicaoModel
}

func (f *fakeAtribuicaoRepo) DeleteByLink(_ context.Context, linkID uuid.UUID) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.EscalaAtribuicaoLinkID != linkID {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeAtribuicaoRepo) BulkInsert(_ context.Context, rows []model.EscalaAtribuicaoModel) error {
	for i := range rows {
		if rows[i].EscalaAtribuicaoID == uuid.Nil {
			rows[i].EscalaAtribuicaoID = uuid.New()
		}
	}
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeAtribuicaoRepo) ListByLink(_ context.Context, linkID uuid.UUID) ([]model.EscalaAtribuicaoModel, error) {
	var out []model.EscalaAtribuicaoModel
	for _, r := range f.rows {
		if r.EscalaAtribuicaoLinkID == linkID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAtribuicaoRepo) PatchVoluntario(_ context.Context, linkID, slotID uuid.UUID, funcao string, de, para uuid.UUID) error {
	for i := range f.rows {
		r := &f.rows[i]
		if r.EscalaAtribuicaoLinkID == linkID && r.EscalaAtribuicaoSlotID == slotID &&
			r.EscalaAtribuicaoFuncao == funcao && r.EscalaAtribuicaoVoluntarioID == de {
			r.EscalaAtribuicaoVoluntarioID = para
			return nil
		}
	}
	return nil
}

type fakeTrocaRepo struct {
	trocas map[uuid.UUID]*model.EscalaTrocaModel
}

func (f *fakeTrocaRepo) Create(_ context.Context, troca *model.EscalaTrocaModel) error {
	if troca.EscalaTrocaID == uuid.Nil {
		troca.EscalaTrocaID = uuid.New()
	}
	if troca.EscalaTrocaStatus == "" {
		troca.EscalaTrocaStatus = model.TrocaPendente
	}
	troca.EscalaTrocaCriadoEm = time.Now()
	cp := *troca
	f.trocas[troca.EscalaTrocaID] = &cp
	return nil
}

func (f *fakeTrocaRepo) GetByID(_ context.Context, id uuid.UUID) (*model.EscalaTrocaModel, error) {
	t, ok := f.trocas[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTrocaRepo) BuscarPendente(_ context.Context, linkID, slotID uuid.UUID, funcao string, solicitanteID uuid.UUID) (*model.EscalaTrocaModel, error) {
	for _, t := range f.trocas {
		if t.EscalaTrocaLinkID == linkID && t.EscalaTrocaSlotID == slotID &&
			t.EscalaTrocaFuncao == funcao && t.EscalaTrocaSolicitanteID == solicitanteID &&
			t.EscalaTrocaStatus == model.TrocaPendente {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeTrocaRepo) ListByLink(_ context.Context, linkID uuid.UUID, status *model.TrocaStatus, limit, offset int) ([]model.EscalaTrocaModel, error) {
	var out []model.EscalaTrocaModel
	for _, t := range f.trocas {
		if t.EscalaTrocaLinkID != linkID {
			continue
		}
		if status != nil && t.EscalaTrocaStatus != *status {
			continue
		}
		out = append(out, *t)
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTrocaRepo) ResponderSePendente(_ context.Context, id uuid.UUID, status model.TrocaStatus, resposta *string, respondidoEm time.Time) (bool, error) {
	t, ok := f.trocas[id]
	if !ok || t.EscalaTrocaStatus != model.TrocaPendente {
		return false, nil
	}
	t.EscalaTrocaStatus = status
	t.EscalaTrocaResposta = resposta
	t.EscalaTrocaRespondidoEm = &respondidoEm
	return true, nil
}

// fakeAtomico roda fn sobre o mesmo estado, mas com rollback de verdade:
// tira um snapshot antes e restaura quando fn falha (o CAS-com-retry do
// fluxo de troca depende disso).
type fakeAtomico struct {
	fx *fixture
}

func (f *fakeAtomico) Transaction(_ context.Context, fn func(r *repository.Repository) error) error {
	snap := f.fx.snapshot()
	if err := fn(f.fx.repo); err != nil {
		f.fx.restore(snap)
		return err
	}
	return nil
}

/* =======================================================
   Fixture
   ======================================================= */

type fixture struct {
	repo *repository.Repository

	links           *fakeLinkRepo
	voluntarios     *fakeVoluntarioRepo
	disponibilidade *fakeDisponibilidadeRepo
	documentos      *fakeDocumentoRepo
	atribuicoes     *fakeAtribuicaoRepo
	trocas          *fakeTrocaRepo
}

func newFixture() *fixture {
	f := &fixture{
		links:           &fakeLinkRepo{links: map[uuid.UUID]*model.EscalaLinkModel{}, slots: map[uuid.UUID][]model.EscalaSlotModel{}},
		voluntarios:     &fakeVoluntarioRepo{vols: map[uuid.UUID]*model.VoluntarioModel{}, funcoes: map[funcaoChave][]string{}},
		disponibilidade: &fakeDisponibilidadeRepo{respostas: map[dispChave]*model.EscalaDisponibilidadeModel{}},
		documentos:      &fakeDocumentoRepo{docs: map[uuid.UUID]*model.EscalaDocumentoModel{}},
		atribuicoes:     &fakeAtribuicaoRepo{},
		trocas:          &fakeTrocaRepo{trocas: map[uuid.UUID]*model.EscalaTrocaModel{}},
	}
	f.repo = &repository.Repository{
		Link:            f.links,
		Voluntario:      f.voluntarios,
		Disponibilidade: f.disponibilidade,
		Documento:       f.documentos,
		Atribuicao:      f.atribuicoes,
		Troca:           f.trocas,
	}
	f.repo.Atomico = &fakeAtomico{fx: f}
	return f
}

type estado struct {
	links       map[uuid.UUID]model.EscalaLinkModel
	funcoes     map[funcaoChave][]string
	respostas   map[dispChave]model.EscalaDisponibilidadeModel
	docs        map[uuid.UUID]model.EscalaDocumentoModel
	atribuicoes []model.EscalaAtribuicaoModel
	trocas      map[uuid.UUID]model.EscalaTrocaModel
}

func (f *fixture) snapshot() estado {
	s := estado{
		links:       map[uuid.UUID]model.EscalaLinkModel{},
		funcoes:     map[funcaoChave][]string{},
		respostas:   map[dispChave]model.EscalaDisponibilidadeModel{},
		docs:        map[uuid.UUID]model.EscalaDocumentoModel{},
		atribuicoes: append([]model.EscalaAtribuicaoModel(nil), f.atribuicoes.rows...),
		trocas:      map[uuid.UUID]model.EscalaTrocaModel{},
	}
	for k, v := range f.links.links {
		s.links[k] = *v
	}
	for k, v := range f.voluntarios.funcoes {
		s.funcoes[k] = append([]string(nil), v...)
	}
	for k, v := range f.disponibilidade.respostas {
		s.respostas[k] = *v
	}
	for k, v := range f.documentos.docs {
		s.docs[k] = *v
	}
	for k, v := range f.trocas.trocas {
		s.trocas[k] = *v
	}
	return s
}

func (f *fixture) restore(s estado) {
	f.links.links = map[uuid.UUID]*model.EscalaLinkModel{}
	for k, v := range s.links {
		cp := v
		f.links.links[k] = &cp
	}
	f.voluntarios.funcoes = s.funcoes
	f.disponibilidade.respostas = map[dispChave]*model.EscalaDisponibilidadeModel{}
	for k, v := range s.respostas {
		cp := v
		f.disponibilidade.respostas[k] = &cp
	}
	f.documentos.docs = map[uuid.UUID]*model.EscalaDocumentoModel{}
	for k, v := range s.docs {
		cp := v
		f.documentos.docs[k] = &cp
	}
	f.atribuicoes.rows = s.atribuicoes
	f.trocas.trocas = map[uuid.UUID]*model.EscalaTrocaModel{}
	for k, v := range s.trocas {
		cp := v
		f.trocas.trocas[k] = &cp
	}
}

func (f *fixture) seedLink(token, ministerio string, igrejaID *uuid.UUID, numSlots int) (*model.EscalaLinkModel, []model.EscalaSlotModel) {
	link := &model.EscalaLinkModel{
		EscalaLinkID:         uuid.New(),
		EscalaLinkToken:      token,
		EscalaLinkIgrejaID:   igrejaID,
		EscalaLinkMinisterio: ministerio,
		EscalaLinkMes:        9,
		EscalaLinkAno:        2026,
		EscalaLinkTitulo:     "Escala de Setembro",
		EscalaLinkStatus:     model.LinkAtivo,
	}
	f.links.links[link.EscalaLinkID] = link

	slots := make([]model.EscalaSlotModel, 0, numSlots)
	for i := 0; i < numSlots; i++ {
		slots = append(slots, model.EscalaSlotModel{
			EscalaSlotID:      uuid.New(),
			EscalaSlotLinkID:  link.EscalaLinkID,
			EscalaSlotTipo:    model.SlotCulto,
			EscalaSlotTitulo:  "Culto de Domingo",
			EscalaSlotHora:    "19:00",
			EscalaSlotOrdem:   i,
			EscalaSlotFuncoes: []string{"som", "projeção"},
		})
	}
	f.links.slots[link.EscalaLinkID] = slots
	return link, slots
}

func (f *fixture) seedVoluntario(nome, ministerio string, igrejaID *uuid.UUID) *model.VoluntarioModel {
	tel := "+55 11 98888-0000"
	v := &model.VoluntarioModel{
		VoluntarioID:         uuid.New(),
		VoluntarioIgrejaID:   igrejaID,
		VoluntarioNome:       nome,
		VoluntarioTelefone:   &tel,
		VoluntarioMinisterio: ministerio,
		VoluntarioAtivo:      true,
	}
	f.voluntarios.vols[v.VoluntarioID] = v
	return v
}

// seedDocumento grava um documento direto no fake (sem passar pelo service).
func (f *fixture) seedDocumento(linkID uuid.UUID, status model.DocumentoStatus, dados *dto.DocumentoDados) *model.EscalaDocumentoModel {
	raw, err := dados.ToJSON()
	if err != nil {
		panic(err)
	}
	doc := &model.EscalaDocumentoModel{
		EscalaDocumentoID:     uuid.New(),
		EscalaDocumentoLinkID: linkID,
		EscalaDocumentoStatus: status,
		EscalaDocumentoDados:  raw,
		EscalaDocumentoVersao: 1,
	}
	f.documentos.docs[linkID] = doc
	return doc
}

func ptr[T any](v T) *T { return &v }
