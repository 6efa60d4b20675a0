// Package vendas lê vendas finalizadas e itens de venda em páginas e lotes.
// Falhas de leitura não abortam a operação: o que foi lido até ali é devolvido
// junto com os erros, e quem chama decide se o resultado parcial serve.
package vendas

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
	"github.com/jhoicas/padaria-pdv/internal/domain/repository"
	"github.com/jhoicas/padaria-pdv/pkg/logger"
)

const (
	PageSizePadrao  = 1000
	ChunkSizePadrao = 250
)

// Resultado dados acumulados mais os erros de leitura encontrados no caminho.
type Resultado[T any] struct {
	Dados T
	Erros []error
}

// Parcial indica que alguma página ou lote falhou.
func (r Resultado[T]) Parcial() bool {
	return len(r.Erros) > 0
}

// Fetcher leitura paginada de vendas. Páginas e lotes são pedidos em sequência.
type Fetcher struct {
	repo      repository.VendaRepository
	pageSize  int
	chunkSize int
	log       *logger.Logger
}

// NewFetcher tamanhos <= 0 caem nos padrões (1000 por página, 250 ids por lote).
func NewFetcher(repo repository.VendaRepository, pageSize, chunkSize int, log *logger.Logger) *Fetcher {
	if pageSize <= 0 {
		pageSize = PageSizePadrao
	}
	if chunkSize <= 0 {
		chunkSize = ChunkSizePadrao
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Fetcher{repo: repo, pageSize: pageSize, chunkSize: chunkSize, log: log}
}

// Intervalo converte dias de calendário inclusivos em [inicio, fim) à meia-noite.
func Intervalo(inicio, fim time.Time) (time.Time, time.Time) {
	ini := time.Date(inicio.Year(), inicio.Month(), inicio.Day(), 0, 0, 0, 0, inicio.Location())
	f := time.Date(fim.Year(), fim.Month(), fim.Day(), 0, 0, 0, 0, fim.Location()).AddDate(0, 0, 1)
	return ini, f
}

// BuscarFinalizadas todas as vendas finalizadas entre os dias inicio e fim (inclusive),
// por data ascendente. Para na primeira página curta ou vazia, ou no primeiro erro.
func (f *Fetcher) BuscarFinalizadas(ctx context.Context, inicio, fim time.Time) Resultado[[]entity.Venda] {
	de, ate := Intervalo(inicio, fim)
	res := Resultado[[]entity.Venda]{Dados: []entity.Venda{}}

	for offset := 0; ; offset += f.pageSize {
		pagina, err := f.repo.ListFinalizadas(ctx, de, ate, f.pageSize, offset)
		if err != nil {
			f.log.Error().Err(err).Int("offset", offset).Int("acumuladas", len(res.Dados)).
				Msg("vendas: falha ao buscar página; devolvendo resultado parcial")
			res.Erros = append(res.Erros, err)
			return res
		}
		res.Dados = append(res.Dados, pagina...)
		if len(pagina) < f.pageSize {
			return res
		}
	}
}

// SomarUnidades soma a quantidade dos itens das vendas informadas, em lotes de ids.
// Quantidades negativas entram na soma. Um lote com erro é registrado e não contribui para ela.
func (f *Fetcher) SomarUnidades(ctx context.Context, vendaIDs []string) Resultado[decimal.Decimal] {
	res := Resultado[decimal.Decimal]{Dados: decimal.Zero}
	f.porLote(vendaIDs, func(lote int, ids []string) {
		qtds, err := f.repo.ListQuantidades(ctx, ids)
		if err != nil {
			f.log.Error().Err(err).Int("lote", lote).Int("ids", len(ids)).
				Msg("vendas: falha ao buscar quantidades; lote ignorado")
			res.Erros = append(res.Erros, err)
			return
		}
		for _, q := range qtds {
			res.Dados = res.Dados.Add(q)
		}
	})
	return res
}

// BuscarItens itens das vendas informadas, em lotes de ids, com a mesma política de SomarUnidades.
func (f *Fetcher) BuscarItens(ctx context.Context, vendaIDs []string) Resultado[[]entity.VendaItem] {
	res := Resultado[[]entity.VendaItem]{Dados: []entity.VendaItem{}}
	f.porLote(vendaIDs, func(lote int, ids []string) {
		itens, err := f.repo.ListItens(ctx, ids)
		if err != nil {
			f.log.Error().Err(err).Int("lote", lote).Int("ids", len(ids)).
				Msg("vendas: falha ao buscar itens; lote ignorado")
			res.Erros = append(res.Erros, err)
			return
		}
		for _, it := range itens {
			res.Dados = append(res.Dados, entity.SanitizeVendaItem(it))
		}
	})
	return res
}

func (f *Fetcher) porLote(ids []string, fn func(lote int, ids []string)) {
	for i, lote := 0, 0; i < len(ids); i, lote = i+f.chunkSize, lote+1 {
		end := min(i+f.chunkSize, len(ids))
		fn(lote, ids[i:end])
	}
}
