package lucratividade

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain/custo"
	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
)

// TipoProduto origem do item vendido.
type TipoProduto string

const (
	TipoVarejo  TipoProduto = "varejo"
	TipoReceita TipoProduto = "receita"
)

// Motivos de exclusão de um grupo de itens.
const (
	MotivoInexistente   = "produto inexistente"
	MotivoInativo       = "produto inativo"
	MotivoSemReferencia = "item sem produto"
)

// Produto produto resolvido com o custo unitário já calculado.
type Produto struct {
	ID            string
	Nome          string
	Tipo          TipoProduto
	CustoUnitario decimal.Decimal
}

// Resolucao resultado da busca do produto de um grupo: Resolvido ou NaoResolvido.
type Resolucao interface {
	resolucao()
}

// Resolvido produto existente e ativo.
type Resolvido struct {
	Produto Produto
}

// NaoResolvido referência obsoleta (produto apagado ou desativado). O grupo é excluído do relatório.
type NaoResolvido struct {
	Tipo   TipoProduto
	RawID  string
	Motivo string
}

func (Resolvido) resolucao()    {}
func (NaoResolvido) resolucao() {}

// resolvedor indexa as coleções planas da entrada.
type resolvedor struct {
	varejo          map[string]entity.ProdutoVarejo
	receitas        map[string]entity.Receita
	composicoes     map[string][]entity.Composicao
	insumos         map[string]entity.Insumo
	custoTabela     map[string]decimal.Decimal // varejo_id -> custo da entrada mais recente da tabela de preços
	fracaoInvisivel decimal.Decimal
}

func novoResolvedor(in Entrada, fracaoInvisivel decimal.Decimal) *resolvedor {
	r := &resolvedor{
		varejo:          make(map[string]entity.ProdutoVarejo, len(in.Varejo)),
		receitas:        make(map[string]entity.Receita, len(in.Receitas)),
		composicoes:     make(map[string][]entity.Composicao),
		insumos:         custo.IndexarInsumos(in.Insumos),
		custoTabela:     make(map[string]decimal.Decimal),
		fracaoInvisivel: fracaoInvisivel,
	}
	for _, p := range in.Varejo {
		r.varejo[p.ID] = p
	}
	for _, rc := range in.Receitas {
		r.receitas[rc.ID] = rc
	}
	for _, c := range in.Composicoes {
		r.composicoes[c.ReceitaID] = append(r.composicoes[c.ReceitaID], c)
	}

	maisRecente := make(map[string]entity.Preco)
	for _, p := range in.Precos {
		if p.VarejoID == nil || !p.CustoUnitario.IsPositive() {
			continue
		}
		atual, ok := maisRecente[*p.VarejoID]
		if !ok || p.UpdatedAt.After(atual.UpdatedAt) {
			maisRecente[*p.VarejoID] = p
		}
	}
	for id, p := range maisRecente {
		r.custoTabela[id] = p.CustoUnitario
	}
	return r
}

func (r *resolvedor) resolver(tipo TipoProduto, id string) Resolucao {
	switch tipo {
	case TipoVarejo:
		p, ok := r.varejo[id]
		if !ok {
			return NaoResolvido{Tipo: tipo, RawID: id, Motivo: MotivoInexistente}
		}
		if !p.Ativo {
			return NaoResolvido{Tipo: tipo, RawID: id, Motivo: MotivoInativo}
		}
		custoUnit, ok := r.custoTabela[id]
		if !ok {
			custoUnit = p.CustoUnitario
		}
		if custoUnit.IsNegative() {
			custoUnit = decimal.Zero
		}
		return Resolvido{Produto: Produto{ID: p.ID, Nome: p.Nome, Tipo: tipo, CustoUnitario: custoUnit}}
	case TipoReceita:
		rc, ok := r.receitas[id]
		if !ok {
			return NaoResolvido{Tipo: tipo, RawID: id, Motivo: MotivoInexistente}
		}
		if !rc.Ativo {
			return NaoResolvido{Tipo: tipo, RawID: id, Motivo: MotivoInativo}
		}
		b := custo.CalcularReceita(rc, r.composicoes[id], r.insumos, r.fracaoInvisivel)
		return Resolvido{Produto: Produto{ID: rc.ID, Nome: rc.Nome, Tipo: tipo, CustoUnitario: b.CustoUnitarioTotal}}
	default:
		return NaoResolvido{Tipo: tipo, RawID: id, Motivo: MotivoSemReferencia}
	}
}
