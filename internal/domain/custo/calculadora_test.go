package custo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/padaria-pdv/internal/domain/custo"
	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "%s: esperado %s, obtido %s", msg, want, got)
}

// Farinha: pacote de 1000 g a R$ 10; embalagem: unidade a R$ 2.
func insumosPadrao() map[string]entity.Insumo {
	return custo.IndexarInsumos([]entity.Insumo{
		{ID: "farinha", Nome: "Farinha", PrecoPacote: d("10"), PesoPacote: d("1000"), Unidade: "g"},
		{ID: "saco", Nome: "Saco de papel", PrecoPacote: d("2"), PesoPacote: d("1"), Unidade: "un"},
		{ID: "leite", Nome: "Leite", PrecoPacote: d("6"), PesoPacote: d("1"), Unidade: "L"},
	})
}

func TestCalcular_SomenteMassa(t *testing.T) {
	comps := []entity.Composicao{
		{ID: "c1", InsumoID: "farinha", Quantidade: d("1000"), Categoria: entity.CategoriaMassa},
	}

	b := custo.Calcular(comps, insumosPadrao(), d("2"), decimal.Zero)

	assertDec(t, "10", b.CustoIngredientes, "custo ingredientes")
	assertDec(t, "10", b.CustoBase, "custo base")
	assertDec(t, "5", b.CustoUnitarioBase, "unitário base")
	assertDec(t, "5", b.CustoUnitarioTotal, "unitário total")
	assert.True(t, b.CustoEmbalagens.IsZero())
}

func TestCalcular_EmbalagemNaoDivideRendimento(t *testing.T) {
	comps := []entity.Composicao{
		{ID: "c1", InsumoID: "farinha", Quantidade: d("500"), Categoria: entity.CategoriaMassa},
		{ID: "c2", InsumoID: "saco", Quantidade: d("1"), Categoria: entity.CategoriaEmbalagem},
	}

	b := custo.Calcular(comps, insumosPadrao(), d("2"), decimal.Zero)

	assertDec(t, "5", b.CustoBase, "custo base")
	assertDec(t, "2.5", b.CustoUnitarioBase, "unitário base")
	assertDec(t, "2", b.CustoEmbalagens, "embalagens")
	assertDec(t, "4.5", b.CustoUnitarioTotal, "unitário total")
}

func TestCalcular_RendimentoZeroTratadoComoUm(t *testing.T) {
	comps := []entity.Composicao{
		{ID: "c1", InsumoID: "farinha", Quantidade: d("1000")},
	}

	zero := custo.Calcular(comps, insumosPadrao(), decimal.Zero, decimal.Zero)
	negativo := custo.Calcular(comps, insumosPadrao(), d("-3"), decimal.Zero)

	assertDec(t, "10", zero.CustoUnitarioBase, "rendimento 0")
	assertDec(t, "10", negativo.CustoUnitarioBase, "rendimento negativo")
}

func TestCalcular_CustoInvisivel(t *testing.T) {
	comps := []entity.Composicao{
		{ID: "c1", InsumoID: "farinha", Quantidade: d("1000")},
		{ID: "c2", InsumoID: "saco", Quantidade: d("1"), Categoria: "Embalagem"},
	}

	b := custo.Calcular(comps, insumosPadrao(), d("4"), d("0.1"))

	assertDec(t, "1", b.CustoInvisivel, "invisível só sobre ingredientes")
	assertDec(t, "11", b.CustoBase, "custo base")
	assertDec(t, "2.75", b.CustoUnitarioBase, "unitário base")
	assertDec(t, "4.75", b.CustoUnitarioTotal, "unitário total")
}

func TestCalcular_ConversaoDeUnidades(t *testing.T) {
	comps := []entity.Composicao{
		// 0,5 kg de farinha cadastrada em gramas
		{ID: "c1", InsumoID: "farinha", Quantidade: d("0.5"), Unidade: "kg"},
		// 250 ml de leite cadastrado em litros
		{ID: "c2", InsumoID: "leite", Quantidade: d("250"), Unidade: "ml"},
	}

	b := custo.Calcular(comps, insumosPadrao(), d("1"), decimal.Zero)

	assertDec(t, "6.5", b.CustoIngredientes, "5 de farinha + 1,5 de leite")
}

func TestCalcular_LinhasIgnoradas(t *testing.T) {
	comps := []entity.Composicao{
		{ID: "sem-insumo", InsumoID: "nao-existe", Quantidade: d("1")},
		{ID: "unidade-errada", InsumoID: "farinha", Quantidade: d("1"), Unidade: "ml"},
	}

	b := custo.Calcular(comps, insumosPadrao(), d("1"), decimal.Zero)

	assert.ElementsMatch(t, []string{"sem-insumo", "unidade-errada"}, b.LinhasIgnoradas)
	assert.True(t, b.CustoUnitarioTotal.IsZero())
}

func TestCalcular_PacoteSemPesoCustaZero(t *testing.T) {
	insumos := custo.IndexarInsumos([]entity.Insumo{
		{ID: "x", PrecoPacote: d("9"), PesoPacote: decimal.Zero, Unidade: "g"},
	})
	comps := []entity.Composicao{{ID: "c1", InsumoID: "x", Quantidade: d("100")}}

	b := custo.Calcular(comps, insumos, d("1"), decimal.Zero)

	assert.True(t, b.CustoUnitarioTotal.IsZero())
	assert.Empty(t, b.LinhasIgnoradas)
}

func TestConverterParaBase(t *testing.T) {
	cases := []struct {
		unidade  string
		qtd      string
		wantQtd  string
		wantBase string
	}{
		{"kg", "1.5", "1500", custo.BaseGrama},
		{"G", "20", "20", custo.BaseGrama},
		{"L", "2", "2000", custo.BaseMililitro},
		{" ml ", "300", "300", custo.BaseMililitro},
		{"un", "3", "3", custo.BaseUnidade},
		{"duzia", "3", "3", custo.BaseUnidade},
	}
	for _, tc := range cases {
		got, base := custo.ConverterParaBase(d(tc.qtd), tc.unidade)
		assertDec(t, tc.wantQtd, got, tc.unidade)
		assert.Equal(t, tc.wantBase, base, tc.unidade)
	}
}

func TestPrecoSugerido(t *testing.T) {
	assertDec(t, "9", custo.PrecoSugerido(d("4.5"), d("100")), "markup 100%")
	assertDec(t, "4.5", custo.PrecoSugerido(d("4.5"), d("-20")), "markup negativo vira zero")
	assertDec(t, "5.85", custo.PrecoSugerido(d("4.5"), d("30")), "markup 30%")
}
