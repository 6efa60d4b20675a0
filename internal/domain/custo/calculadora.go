// Package custo calcula o custo unitário de receitas a partir das composições.
//
//	custoLinha        = precoPacote / pesoPacote(base) × quantidade(base)
//	custoIngredientes = Σ custoLinha (exceto embalagens)
//	custoInvisivel    = custoIngredientes × fração
//	custoBase         = custoIngredientes + custoInvisivel
//	unitarioBase      = custoBase / rendimento
//	unitarioTotal     = unitarioBase + Σ custoLinha (embalagens, já por unidade)
package custo

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
)

// Breakdown composição do custo de uma receita.
type Breakdown struct {
	CustoIngredientes  decimal.Decimal
	CustoInvisivel     decimal.Decimal
	CustoBase          decimal.Decimal
	CustoEmbalagens    decimal.Decimal
	CustoUnitarioBase  decimal.Decimal
	CustoUnitarioTotal decimal.Decimal
	// Linhas ignoradas por insumo ausente ou unidade incompatível.
	LinhasIgnoradas []string
}

// CustoLinha custo de uma composição. Devolve ok=false quando a linha não pode ser custeada
// (unidade da composição de outra família que a do insumo). Pacote sem peso custa zero.
func CustoLinha(c entity.Composicao, insumo entity.Insumo) (decimal.Decimal, bool) {
	unidade := c.Unidade
	if unidade == "" {
		unidade = insumo.Unidade
	}
	qtd, baseQtd := ConverterParaBase(c.Quantidade, unidade)
	peso, basePeso := ConverterParaBase(insumo.PesoPacote, insumo.Unidade)
	if baseQtd != basePeso {
		return decimal.Zero, false
	}
	if !peso.IsPositive() || !qtd.IsPositive() {
		return decimal.Zero, true
	}
	return insumo.PrecoPacote.Div(peso).Mul(qtd), true
}

// Calcular aplica o custeio às composições de uma receita.
// insumos é indexado por ID; fracaoInvisivel negativa é tratada como zero.
func Calcular(
	composicoes []entity.Composicao,
	insumos map[string]entity.Insumo,
	rendimento decimal.Decimal,
	fracaoInvisivel decimal.Decimal,
) Breakdown {
	var b Breakdown
	for _, c := range composicoes {
		c = entity.SanitizeComposicao(c)
		insumo, ok := insumos[c.InsumoID]
		if !ok {
			b.LinhasIgnoradas = append(b.LinhasIgnoradas, c.ID)
			continue
		}
		valor, ok := CustoLinha(c, entity.SanitizeInsumo(insumo))
		if !ok {
			b.LinhasIgnoradas = append(b.LinhasIgnoradas, c.ID)
			continue
		}
		if c.Embalagem() {
			b.CustoEmbalagens = b.CustoEmbalagens.Add(valor)
		} else {
			b.CustoIngredientes = b.CustoIngredientes.Add(valor)
		}
	}

	if fracaoInvisivel.IsNegative() {
		fracaoInvisivel = decimal.Zero
	}
	if rendimento.LessThanOrEqual(decimal.Zero) {
		rendimento = decimal.NewFromInt(1)
	}

	b.CustoInvisivel = b.CustoIngredientes.Mul(fracaoInvisivel)
	b.CustoBase = b.CustoIngredientes.Add(b.CustoInvisivel)
	b.CustoUnitarioBase = b.CustoBase.Div(rendimento)
	b.CustoUnitarioTotal = b.CustoUnitarioBase.Add(b.CustoEmbalagens)
	return b
}

// CalcularReceita atalho para uma receita já carregada.
func CalcularReceita(
	receita entity.Receita,
	composicoes []entity.Composicao,
	insumos map[string]entity.Insumo,
	fracaoInvisivel decimal.Decimal,
) Breakdown {
	return Calcular(composicoes, insumos, receita.RendimentoEfetivo(), fracaoInvisivel)
}

// PrecoSugerido aplica um markup percentual sobre o custo unitário (markup 100 = dobro do custo).
func PrecoSugerido(custoUnitario, markupPct decimal.Decimal) decimal.Decimal {
	if markupPct.IsNegative() {
		markupPct = decimal.Zero
	}
	fator := decimal.NewFromInt(1).Add(markupPct.Div(decimal.NewFromInt(100)))
	return custoUnitario.Mul(fator).Round(2)
}

// IndexarInsumos monta o mapa por ID usado por Calcular.
func IndexarInsumos(insumos []entity.Insumo) map[string]entity.Insumo {
	m := make(map[string]entity.Insumo, len(insumos))
	for _, i := range insumos {
		m[i.ID] = i
	}
	return m
}
