package vendas_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/padaria-pdv/internal/application/vendas"
	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
)

type fakeVendaRepo struct {
	vendas      []entity.Venda
	falhaOffset int // offset que devolve erro; -1 desativa
	falhaLote   int // índice do lote de ids que devolve erro; -1 desativa
	qtdPorVenda map[string][]decimal.Decimal

	offsets []int
	lotes   [][]string
	inicio  time.Time
	fim     time.Time
}

func novoFake(n int) *fakeVendaRepo {
	f := &fakeVendaRepo{falhaOffset: -1, falhaLote: -1, qtdPorVenda: map[string][]decimal.Decimal{}}
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		f.vendas = append(f.vendas, entity.Venda{
			ID:     fmt.Sprintf("v%04d", i),
			Data:   base.Add(time.Duration(i) * time.Minute),
			Status: entity.StatusVendaFinalizada,
		})
	}
	return f
}

func (f *fakeVendaRepo) ListFinalizadas(_ context.Context, inicio, fim time.Time, limit, offset int) ([]entity.Venda, error) {
	f.inicio, f.fim = inicio, fim
	f.offsets = append(f.offsets, offset)
	if offset == f.falhaOffset {
		return nil, errors.New("timeout")
	}
	if offset >= len(f.vendas) {
		return nil, nil
	}
	end := min(offset+limit, len(f.vendas))
	return f.vendas[offset:end], nil
}

func (f *fakeVendaRepo) ListQuantidades(_ context.Context, ids []string) ([]decimal.Decimal, error) {
	f.lotes = append(f.lotes, ids)
	if len(f.lotes)-1 == f.falhaLote {
		return nil, errors.New("payload too large")
	}
	var out []decimal.Decimal
	for _, id := range ids {
		out = append(out, f.qtdPorVenda[id]...)
	}
	return out, nil
}

func (f *fakeVendaRepo) ListItens(_ context.Context, ids []string) ([]entity.VendaItem, error) {
	f.lotes = append(f.lotes, ids)
	if len(f.lotes)-1 == f.falhaLote {
		return nil, errors.New("payload too large")
	}
	var out []entity.VendaItem
	for _, id := range ids {
		for _, q := range f.qtdPorVenda[id] {
			out = append(out, entity.VendaItem{VendaID: id, Quantidade: q})
		}
	}
	return out, nil
}

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("v%04d", i)
	}
	return out
}

func dia(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestBuscarFinalizadas_PaginaAteCurta(t *testing.T) {
	repo := novoFake(2500)
	f := vendas.NewFetcher(repo, 1000, 250, nil)

	res := f.BuscarFinalizadas(context.Background(), dia(2024, 3, 1), dia(2024, 3, 31))

	assert.False(t, res.Parcial())
	assert.Len(t, res.Dados, 2500)
	assert.Equal(t, []int{0, 1000, 2000}, repo.offsets)
	assert.Equal(t, "v0000", res.Dados[0].ID)
	assert.Equal(t, "v2499", res.Dados[2499].ID)
}

func TestBuscarFinalizadas_PaginaVaziaEncerra(t *testing.T) {
	repo := novoFake(2000)
	f := vendas.NewFetcher(repo, 1000, 250, nil)

	res := f.BuscarFinalizadas(context.Background(), dia(2024, 3, 1), dia(2024, 3, 31))

	assert.Len(t, res.Dados, 2000)
	assert.Equal(t, []int{0, 1000, 2000}, repo.offsets)
}

func TestBuscarFinalizadas_ErroDevolveParcial(t *testing.T) {
	repo := novoFake(2500)
	repo.falhaOffset = 1000
	f := vendas.NewFetcher(repo, 1000, 250, nil)

	res := f.BuscarFinalizadas(context.Background(), dia(2024, 3, 1), dia(2024, 3, 31))

	assert.True(t, res.Parcial())
	require.Len(t, res.Erros, 1)
	assert.Len(t, res.Dados, 1000)
	assert.Equal(t, []int{0, 1000}, repo.offsets, "não pede páginas depois do erro")
}

func TestBuscarFinalizadas_IntervaloInclusivoPorDia(t *testing.T) {
	repo := novoFake(0)
	f := vendas.NewFetcher(repo, 0, 0, nil)

	res := f.BuscarFinalizadas(context.Background(), dia(2024, 3, 1), dia(2024, 3, 31))

	assert.Empty(t, res.Dados)
	assert.NotNil(t, res.Dados)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), repo.inicio)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), repo.fim)
}

func TestSomarUnidades_LotesDe250(t *testing.T) {
	repo := novoFake(0)
	for _, id := range ids(600) {
		repo.qtdPorVenda[id] = []decimal.Decimal{decimal.NewFromFloat(0.5)}
	}
	f := vendas.NewFetcher(repo, 1000, 250, nil)

	res := f.SomarUnidades(context.Background(), ids(600))

	assert.False(t, res.Parcial())
	assert.True(t, decimal.NewFromInt(300).Equal(res.Dados), "obtido %s", res.Dados)
	require.Len(t, repo.lotes, 3)
	assert.Len(t, repo.lotes[0], 250)
	assert.Len(t, repo.lotes[1], 250)
	assert.Len(t, repo.lotes[2], 100)
}

func TestSomarUnidades_LoteComErroIgnorado(t *testing.T) {
	repo := novoFake(0)
	for _, id := range ids(600) {
		repo.qtdPorVenda[id] = []decimal.Decimal{decimal.NewFromInt(1)}
	}
	repo.falhaLote = 1
	f := vendas.NewFetcher(repo, 1000, 250, nil)

	res := f.SomarUnidades(context.Background(), ids(600))

	assert.True(t, res.Parcial())
	assert.True(t, decimal.NewFromInt(350).Equal(res.Dados), "obtido %s", res.Dados)
	assert.Len(t, repo.lotes, 3, "lotes seguintes continuam")
}

func TestSomarUnidades_QuantidadeNegativaEntraNaSoma(t *testing.T) {
	repo := novoFake(0)
	repo.qtdPorVenda["v0000"] = []decimal.Decimal{decimal.NewFromInt(5)}
	repo.qtdPorVenda["v0001"] = []decimal.Decimal{decimal.NewFromInt(-2)}
	f := vendas.NewFetcher(repo, 1000, 250, nil)

	res := f.SomarUnidades(context.Background(), ids(2))

	assert.True(t, decimal.NewFromInt(3).Equal(res.Dados), "obtido %s", res.Dados)
}

func TestSomarUnidades_SemIDs(t *testing.T) {
	repo := novoFake(0)
	f := vendas.NewFetcher(repo, 1000, 250, nil)

	res := f.SomarUnidades(context.Background(), nil)

	assert.True(t, res.Dados.IsZero())
	assert.Empty(t, repo.lotes)
}

func TestBuscarItens_MantemSinalEAgrupaLotes(t *testing.T) {
	repo := novoFake(0)
	repo.qtdPorVenda["v0000"] = []decimal.Decimal{decimal.NewFromInt(-2), decimal.NewFromInt(3)}
	f := vendas.NewFetcher(repo, 1000, 1, nil)

	res := f.BuscarItens(context.Background(), []string{"v0000", "v0001"})

	require.Len(t, res.Dados, 2)
	assert.True(t, decimal.NewFromInt(-2).Equal(res.Dados[0].Quantidade), "estorno mantém o sinal")
	assert.Len(t, repo.lotes, 2)
}
