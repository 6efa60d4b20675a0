package dto

import "github.com/shopspring/decimal"

// CustoReceitaResponse resposta de GET /api/receitas/:id/custo.
type CustoReceitaResponse struct {
	ReceitaID          string          `json:"receitaId"`
	Nome               string          `json:"nome"`
	Rendimento         decimal.Decimal `json:"rendimento"`
	CustoIngredientes  decimal.Decimal `json:"custoIngredientes"`
	CustoInvisivel     decimal.Decimal `json:"custoInvisivel"`
	CustoBase          decimal.Decimal `json:"custoBase"`
	CustoEmbalagens    decimal.Decimal `json:"custoEmbalagens"`
	CustoUnitarioBase  decimal.Decimal `json:"custoUnitarioBase"`
	CustoUnitarioTotal decimal.Decimal `json:"custoUnitarioTotal"`
	Markup             decimal.Decimal `json:"markup"`        // % aplicado
	PrecoSugerido      decimal.Decimal `json:"precoSugerido"` // custoUnitarioTotal × (1 + markup/100)
	LinhasIgnoradas    []string        `json:"linhasIgnoradas,omitempty"`
}
