// Package pdf gera o relatório de lucratividade do período em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  CABEÇALHO: nome da padaria  │  Período                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: receita / custo / lucro bruto / fixos / líquido     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Qtd | Receita | Custo | Lucro | Margem    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: itens excluídos + aviso de resultado parcial        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/application/dto"
	"github.com/jhoicas/padaria-pdv/internal/application/usecase"
)

var _ usecase.RelatorioPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 140, Green: 74, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.RelatorioPDFGenerator com Maroto v2.
type MarotoPDFGenerator struct {
	empresa string
}

// NewMarotoPDFGenerator empresa aparece no cabeçalho e nos metadados do PDF.
func NewMarotoPDFGenerator(empresa string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{empresa: empresa}
}

// GenerateLucratividade gera o PDF e devolve os bytes.
func (g *MarotoPDFGenerator) GenerateLucratividade(rel *dto.LucratividadeResponse) ([]byte, error) {
	if rel == nil {
		return nil, fmt.Errorf("pdf: relatório vazio")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de lucratividade", true).
		WithAuthor(g.empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(g.empresa, rel.Periodo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumoRow(rel.Resumo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tabelaHeaderRow())
	m.AddRows(tabelaRows(rel.Produtos)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(rodapeRows(rel)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func cabecalhoRow(empresa string, p dto.PeriodoDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(empresa, "Padaria"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de lucratividade", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(formatarData(p.DataInicio)+" a "+formatarData(p.DataFim), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

func resumoRow(s dto.ResumoLucratividadeDTO) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	destaque := func(v decimal.Decimal) core.Component {
		c := colorPrimary
		if v.IsNegative() {
			c = colorRed
		}
		return text.New(formatarReais(v), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: c, Right: 1,
		})
	}

	return row.New(34).Add(
		col.New(3).Add(
			label("Receita:"),
			label("Custo dos produtos:"),
			label("Lucro bruto:"),
			label("Custos fixos:"),
			label("Lucro líquido:"),
		),
		col.New(3).Add(
			value(formatarReais(s.ReceitaTotal)),
			value(formatarReais(s.CustoProdutosTotal)),
			value(formatarReais(s.LucroBrutoTotal)),
			value(formatarReais(s.CustosFixosTotal)),
			destaque(s.LucroLiquido),
		),
		col.New(3).Add(
			label("Margem bruta:"),
			label("Margem líquida:"),
			label("ROI:"),
		),
		col.New(3).Add(
			value(formatarPercentual(s.MargemBruta)),
			value(formatarPercentual(s.MargemLiquida)),
			value(formatarPercentual(s.ROI)),
		),
	)
}

func tabelaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 4, align.Left),
		h("Qtd.", 1, align.Right),
		h("Receita", 2, align.Right),
		h("Custo", 2, align.Right),
		h("Lucro", 2, align.Right),
		h("Margem", 1, align.Right),
	)
}

func tabelaRows(linhas []dto.LinhaLucratividadeDTO) []core.Row {
	if len(linhas) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma venda no período.", props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
		))}
	}
	out := make([]core.Row, 0, len(linhas))
	for _, l := range linhas {
		cell := func(v string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(v, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		out = append(out, row.New(6).Add(
			cell(l.Nome, 4, align.Left),
			cell(l.Quantidade.String(), 1, align.Right),
			cell(formatarReais(l.Receita), 2, align.Right),
			cell(formatarReais(l.CustoTotal), 2, align.Right),
			cell(formatarReais(l.LucroBruto), 2, align.Right),
			cell(formatarPercentual(l.Margem), 1, align.Right),
		))
	}
	return out
}

func rodapeRows(rel *dto.LucratividadeResponse) []core.Row {
	var rows []core.Row
	if rel.Parcial {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Atenção: parte das vendas não pôde ser lida; os valores estão incompletos.", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorRed, Top: 1,
			}),
		)))
	}
	if len(rel.NaoResolvidos) > 0 {
		ids := make([]string, 0, len(rel.NaoResolvidos))
		for _, nr := range rel.NaoResolvidos {
			ids = append(ids, fmt.Sprintf("%s %s (%s)", nr.Tipo, nonEmpty(nr.ID, "—"), nr.Motivo))
		}
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Itens fora do relatório: "+strings.Join(ids, "; "), props.Text{
				Size: 7, Color: colorGray, Top: 1,
			}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatarData "2024-03-01" → "01/03/2024". Entradas fora do formato voltam como estão.
func formatarData(s string) string {
	p := strings.Split(s, "-")
	if len(p) != 3 {
		return s
	}
	return p[2] + "/" + p[1] + "/" + p[0]
}

// formatarReais ex.: 1234567.5 → "R$ 1.234.567,50", -3 → "-R$ 3,00".
func formatarReais(v decimal.Decimal) string {
	sinal := ""
	if v.IsNegative() {
		sinal = "-"
		v = v.Neg()
	}
	inteiro, frac, _ := strings.Cut(v.StringFixed(2), ".")
	return sinal + "R$ " + milhares(inteiro) + "," + frac
}

// formatarPercentual fração → "40,0%".
func formatarPercentual(v decimal.Decimal) string {
	return strings.Replace(v.Mul(decimal.NewFromInt(100)).StringFixed(1), ".", ",", 1) + "%"
}

// milhares insere pontos de milhar: "25000" → "25.000".
func milhares(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
