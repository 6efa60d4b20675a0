package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/padaria-pdv/internal/application/dto"
)

func TestFormatarReais(t *testing.T) {
	cases := map[string]string{
		"0":         "R$ 0,00",
		"6.5":       "R$ 6,50",
		"1234":      "R$ 1.234,00",
		"1234567.5": "R$ 1.234.567,50",
		"-3":        "-R$ 3,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatarReais(decimal.RequireFromString(in)), in)
	}
}

func TestFormatarPercentual(t *testing.T) {
	assert.Equal(t, "40,0%", formatarPercentual(decimal.RequireFromString("0.4")))
	assert.Equal(t, "-12,5%", formatarPercentual(decimal.RequireFromString("-0.125")))
}

func TestFormatarData(t *testing.T) {
	assert.Equal(t, "01/03/2024", formatarData("2024-03-01"))
	assert.Equal(t, "ontem", formatarData("ontem"))
}

func TestGenerateLucratividade(t *testing.T) {
	g := NewMarotoPDFGenerator("Padaria Pão Quente")
	rel := &dto.LucratividadeResponse{
		Periodo: dto.PeriodoDTO{DataInicio: "2024-03-01", DataFim: "2024-03-15"},
		Resumo: dto.ResumoLucratividadeDTO{
			ReceitaTotal: decimal.NewFromInt(200),
			LucroLiquido: decimal.NewFromInt(-5),
		},
		Produtos: []dto.LinhaLucratividadeDTO{
			{ProdutoID: "pao", Nome: "Pão francês", Quantidade: decimal.NewFromInt(20), Receita: decimal.NewFromInt(140)},
		},
		NaoResolvidos: []dto.NaoResolvidoDTO{{Tipo: "varejo", ID: "x", Motivo: "produto inativo"}},
		Parcial:       true,
	}

	out, err := g.GenerateLucratividade(rel)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateLucratividade_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator("").GenerateLucratividade(nil)
	assert.Error(t, err)
}
