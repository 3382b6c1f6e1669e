// file: internals/features/escalas/repository/repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/escalas/model"
)

/* =======================================================
   Contratos de acesso a dados do motor de escalas.
   Consultas "não encontrado" retornam (nil, nil); erro é
   reservado para falha de infraestrutura.
   ======================================================= */

type LinkRepo interface {
	GetByToken(ctx context.Context, token string) (*model.EscalaLinkModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.EscalaLinkModel, error)
	ListSlots(ctx context.Context, linkID uuid.UUID) ([]model.EscalaSlotModel, error)
	Create(ctx context.Context, link *model.EscalaLinkModel, slots []model.EscalaSlotModel) error
	UpdateStatus(ctx context.Context, linkID uuid.UUID, status model.LinkStatus) error
}

type VoluntarioRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.VoluntarioModel, error)
	ListByMinisterio(ctx context.Context, ministerio string, igrejaID *uuid.UUID) ([]model.VoluntarioModel, error)
	FuncoesGlobais(ctx context.Context, ministerio string) (map[uuid.UUID][]string, error)
	FuncoesDoLink(ctx context.Context, linkID uuid.UUID) (map[uuid.UUID][]string, error)
	// SubstituirFuncoes troca POR INTEIRO o override do link e o perfil
	// global do ministério (efeito duplo intencional e nomeado).
	SubstituirFuncoes(ctx context.Context, linkID, voluntarioID uuid.UUID, ministerio string, funcoes []string) error
}

type DisponibilidadeRepo interface {
	// Upsert na chave (link, voluntário, slot); reenvio sobrescreve.
	Upsert(ctx context.Context, resp *model.EscalaDisponibilidadeModel) error
	ListByLink(ctx context.Context, linkID uuid.UUID) ([]model.EscalaDisponibilidadeModel, error)
}

type DocumentoRepo interface {
	GetByLink(ctx context.Context, linkID uuid.UUID) (*model.EscalaDocumentoModel, error)
	// Upsert por link_id (único caminho de substituição em bloco).
	Upsert(ctx context.Context, doc *model.EscalaDocumentoModel) error
	// AtualizarDadosSeVersao reescreve dados condicionado ao token de
	// versão; false = conflito (alguém escreveu antes).
	AtualizarDadosSeVersao(ctx context.Context, linkID uuid.UUID, dados datatypes.JSON, versao int) (bool, error)
}

type AtribuicaoRepo interface {
	DeleteByLink(ctx context.Context, linkID uuid.UUID) error
	BulkInsert(ctx context.Context, rows []model.EscalaAtribuicaoModel) error
	ListByLink(ctx context.Context, linkID uuid.UUID) ([]model.EscalaAtribuicaoModel, error)
	// PatchVoluntario realinha UMA linha do índice após troca aprovada.
	PatchVoluntario(ctx context.Context, linkID, slotID uuid.UUID, funcao string, de, para uuid.UUID) error
}

type TrocaRepo interface {
	Create(ctx context.Context, troca *model.EscalaTrocaModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.EscalaTrocaModel, error)
	BuscarPendente(ctx context.Context, linkID, slotID uuid.UUID, funcao string, solicitanteID uuid.UUID) (*model.EscalaTrocaModel, error)
	ListByLink(ctx context.Context, linkID uuid.UUID, status *model.TrocaStatus, limit, offset int) ([]model.EscalaTrocaModel, error)
	// ResponderSePendente é o CAS do fluxo: só transiciona se ainda
	// estiver pendente; false = já respondida.
	ResponderSePendente(ctx context.Context, id uuid.UUID, status model.TrocaStatus, resposta *string, respondidoEm time.Time) (bool, error)
}

// Atomico executa fn dentro de uma transação, com os repositórios
// religados à conexão transacional.
type Atomico interface {
	Transaction(ctx context.Context, fn func(r *Repository) error) error
}

/* =======================================================
   Agregado
   ======================================================= */

type Repository struct {
	Link            LinkRepo
	Voluntario      VoluntarioRepo
	Disponibilidade DisponibilidadeRepo
	Documento       DocumentoRepo
	Atribuicao      AtribuicaoRepo
	Troca           TrocaRepo
	Atomico         Atomico
}

func NewRepository(db *gorm.DB) *Repository {
	r := bind(db)
	r.Atomico = &gormAtomico{db: db}
	return r
}

func bind(db *gorm.DB) *Repository {
	return &Repository{
		Link:            &linkRepo{db: db},
		Voluntario:      &voluntarioRepo{db: db},
		Disponibilidade: &disponibilidadeRepo{db: db},
		Documento:       &documentoRepo{db: db},
		Atribuicao:      &atribuicaoRepo{db: db},
		Troca:           &trocaRepo{db: db},
	}
}

type gormAtomico struct {
	db *gorm.DB
}

func (a *gormAtomico) Transaction(ctx context.Context, fn func(r *Repository) error) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := bind(tx)
		txRepo.Atomico = &gormAtomico{db: tx}
		return fn(txRepo)
	})
}
