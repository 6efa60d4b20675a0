// Package lucratividade cruza itens vendidos com custos de produtos e receitas
// para obter o lucro por produto e o resumo do período.
package lucratividade

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Entrada coleções planas lidas do banco, sem joins.
type Entrada struct {
	// Se não for nil, só os itens dessas vendas são considerados.
	Vendas      []entity.Venda
	Itens       []entity.VendaItem
	Precos      []entity.Preco
	Varejo      []entity.ProdutoVarejo
	Receitas    []entity.Receita
	Composicoes []entity.Composicao
	Insumos     []entity.Insumo
}

// Linha lucratividade de um produto no período.
type Linha struct {
	ProdutoID     string
	Nome          string
	Tipo          TipoProduto
	Quantidade    decimal.Decimal
	Receita       decimal.Decimal
	CustoUnitario decimal.Decimal
	CustoTotal    decimal.Decimal
	LucroBruto    decimal.Decimal
	Margem        decimal.Decimal // fração: LucroBruto / Receita
	Participacao  decimal.Decimal // % da receita total do relatório
}

// Resumo totais do período.
type Resumo struct {
	ReceitaTotal       decimal.Decimal
	CustoProdutosTotal decimal.Decimal
	LucroBrutoTotal    decimal.Decimal
	CustosFixosTotal   decimal.Decimal
	LucroLiquido       decimal.Decimal
	MargemBruta        decimal.Decimal
	MargemLiquida      decimal.Decimal
	ROI                decimal.Decimal
}

// Relatorio saída do processador.
type Relatorio struct {
	Linhas []Linha
	Resumo Resumo
	// Grupos descartados por referência obsoleta. Não é erro: o sistema usa soft delete.
	NaoResolvidos []NaoResolvido
}

type chaveGrupo struct {
	tipo TipoProduto
	id   string
}

type grupo struct {
	quantidade decimal.Decimal
	receita    decimal.Decimal
}

// Processar agrupa os itens por produto, resolve custos e monta o relatório.
// custosFixos é informado pelo chamador; fracaoInvisivel vai para o custeio das receitas.
func Processar(in Entrada, custosFixos, fracaoInvisivel decimal.Decimal) Relatorio {
	grupos, ordem := agrupar(in)
	res := novoResolvedor(in, fracaoInvisivel)

	rel := Relatorio{Linhas: make([]Linha, 0, len(grupos))}
	for _, k := range ordem {
		g := grupos[k]
		switch r := res.resolver(k.tipo, k.id).(type) {
		case Resolvido:
			rel.Linhas = append(rel.Linhas, novaLinha(r.Produto, g))
		case NaoResolvido:
			rel.NaoResolvidos = append(rel.NaoResolvidos, r)
		}
	}

	rel.Resumo = resumir(rel.Linhas, custosFixos)
	for i := range rel.Linhas {
		if rel.Resumo.ReceitaTotal.IsPositive() {
			rel.Linhas[i].Participacao = rel.Linhas[i].Receita.Div(rel.Resumo.ReceitaTotal).Mul(hundred).Round(2)
		}
	}

	sort.SliceStable(rel.Linhas, func(i, j int) bool {
		a, b := rel.Linhas[i], rel.Linhas[j]
		if c := a.LucroBruto.Cmp(b.LucroBruto); c != 0 {
			return c > 0
		}
		if a.Nome != b.Nome {
			return a.Nome < b.Nome
		}
		return a.ProdutoID < b.ProdutoID
	})
	return rel
}

// agrupar soma quantidade e receita por produto. A ordem devolvida é a da primeira aparição.
func agrupar(in Entrada) (map[chaveGrupo]*grupo, []chaveGrupo) {
	var permitidas map[string]struct{}
	if in.Vendas != nil {
		permitidas = make(map[string]struct{}, len(in.Vendas))
		for _, v := range in.Vendas {
			permitidas[v.ID] = struct{}{}
		}
	}

	grupos := make(map[chaveGrupo]*grupo)
	var ordem []chaveGrupo
	for _, it := range in.Itens {
		if permitidas != nil {
			if _, ok := permitidas[it.VendaID]; !ok {
				continue
			}
		}
		it = entity.SanitizeVendaItem(it)

		var k chaveGrupo
		switch {
		case it.VarejoID != nil:
			k = chaveGrupo{tipo: TipoVarejo, id: *it.VarejoID}
		case it.ReceitaID != nil:
			k = chaveGrupo{tipo: TipoReceita, id: *it.ReceitaID}
		default:
			k = chaveGrupo{}
		}

		g, ok := grupos[k]
		if !ok {
			g = &grupo{}
			grupos[k] = g
			ordem = append(ordem, k)
		}
		g.quantidade = g.quantidade.Add(it.Quantidade)
		g.receita = g.receita.Add(it.Receita())
	}
	return grupos, ordem
}

func novaLinha(p Produto, g *grupo) Linha {
	custoTotal := p.CustoUnitario.Mul(g.quantidade)
	lucro := g.receita.Sub(custoTotal)
	return Linha{
		ProdutoID:     p.ID,
		Nome:          p.Nome,
		Tipo:          p.Tipo,
		Quantidade:    g.quantidade,
		Receita:       g.receita,
		CustoUnitario: p.CustoUnitario,
		CustoTotal:    custoTotal,
		LucroBruto:    lucro,
		Margem:        razao(lucro, g.receita),
	}
}

func resumir(linhas []Linha, custosFixos decimal.Decimal) Resumo {
	var s Resumo
	for _, l := range linhas {
		s.ReceitaTotal = s.ReceitaTotal.Add(l.Receita)
		s.CustoProdutosTotal = s.CustoProdutosTotal.Add(l.CustoTotal)
	}
	s.LucroBrutoTotal = s.ReceitaTotal.Sub(s.CustoProdutosTotal)
	s.CustosFixosTotal = custosFixos
	s.LucroLiquido = s.LucroBrutoTotal.Sub(custosFixos)
	s.MargemBruta = razao(s.LucroBrutoTotal, s.ReceitaTotal)
	s.MargemLiquida = razao(s.LucroLiquido, s.ReceitaTotal)
	// ROI sem investimento é indefinido: fica zero.
	s.ROI = razao(s.LucroLiquido, custosFixos)
	return s
}

// razao num/den, zero quando den é zero.
func razao(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}
