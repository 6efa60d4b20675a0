package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
)

var errDB = errors.New("conexão recusada")

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(s string) *string { return &s }

func relogioFixo() time.Time {
	return time.Date(2024, 3, 15, 17, 45, 0, 0, time.UTC)
}

type fakeVendas struct {
	vendas []entity.Venda
	itens  []entity.VendaItem
	erro   error

	inicio, fim time.Time
}

func (f *fakeVendas) ListFinalizadas(_ context.Context, inicio, fim time.Time, limit, offset int) ([]entity.Venda, error) {
	f.inicio, f.fim = inicio, fim
	if f.erro != nil {
		return nil, f.erro
	}
	if offset >= len(f.vendas) {
		return nil, nil
	}
	return f.vendas[offset:min(offset+limit, len(f.vendas))], nil
}

func (f *fakeVendas) ListQuantidades(_ context.Context, ids []string) ([]decimal.Decimal, error) {
	var out []decimal.Decimal
	for _, it := range f.doLote(ids) {
		out = append(out, it.Quantidade)
	}
	return out, nil
}

func (f *fakeVendas) ListItens(_ context.Context, ids []string) ([]entity.VendaItem, error) {
	return f.doLote(ids), nil
}

func (f *fakeVendas) doLote(ids []string) []entity.VendaItem {
	set := map[string]bool{}
	for _, id := range ids {
		set[id] = true
	}
	var out []entity.VendaItem
	for _, it := range f.itens {
		if set[it.VendaID] {
			out = append(out, it)
		}
	}
	return out
}

type fakeCatalogo struct {
	varejo      []entity.ProdutoVarejo
	receitas    []entity.Receita
	composicoes []entity.Composicao
	insumos     []entity.Insumo
	precos      []entity.Preco
	custosFixos []entity.CustoFixo
	erro        error

	insumosPedidos []string
}

func (f *fakeCatalogo) ListProdutosVarejo(context.Context) ([]entity.ProdutoVarejo, error) {
	return f.varejo, f.erro
}

func (f *fakeCatalogo) ListReceitas(context.Context) ([]entity.Receita, error) {
	return f.receitas, f.erro
}

func (f *fakeCatalogo) GetReceita(_ context.Context, id string) (*entity.Receita, error) {
	if f.erro != nil {
		return nil, f.erro
	}
	for _, r := range f.receitas {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogo) ListComposicoes(_ context.Context, receitaIDs []string) ([]entity.Composicao, error) {
	if len(receitaIDs) == 0 {
		return f.composicoes, f.erro
	}
	var out []entity.Composicao
	for _, c := range f.composicoes {
		for _, id := range receitaIDs {
			if c.ReceitaID == id {
				out = append(out, c)
			}
		}
	}
	return out, f.erro
}

func (f *fakeCatalogo) ListInsumos(_ context.Context, ids []string) ([]entity.Insumo, error) {
	f.insumosPedidos = ids
	return f.insumos, f.erro
}

func (f *fakeCatalogo) ListPrecos(context.Context) ([]entity.Preco, error) {
	return f.precos, f.erro
}

func (f *fakeCatalogo) SumCustosFixosAtivos(context.Context) (decimal.Decimal, bool, error) {
	total := decimal.Zero
	n := 0
	for _, c := range f.custosFixos {
		if c.Ativo {
			total = total.Add(c.Valor)
			n++
		}
	}
	return total, n > 0, f.erro
}
