package dto

import "github.com/shopspring/decimal"

// LucratividadeRequest query params de GET /api/lucratividade.
type LucratividadeRequest struct {
	PeriodoRequest
	CustosFixos string `query:"custosFixos"` // opcional; sem ele usa a soma de custos_fixos ativos
}

// ── Por produto ───────────────────────────────────────────────────────────────

// LinhaLucratividadeDTO resultado de um produto no período.
type LinhaLucratividadeDTO struct {
	ProdutoID     string          `json:"produtoId"`
	Nome          string          `json:"nome"`
	Tipo          string          `json:"tipo"` // varejo | receita
	Quantidade    decimal.Decimal `json:"quantidade"`
	Receita       decimal.Decimal `json:"receita"`
	CustoUnitario decimal.Decimal `json:"custoUnitario"`
	CustoTotal    decimal.Decimal `json:"custoTotal"`
	LucroBruto    decimal.Decimal `json:"lucroBruto"`
	Margem        decimal.Decimal `json:"margem"`       // lucroBruto / receita
	Participacao  decimal.Decimal `json:"participacao"` // % da receita do período
}

// ── Resumo ────────────────────────────────────────────────────────────────────

// ResumoLucratividadeDTO totais do período.
type ResumoLucratividadeDTO struct {
	ReceitaTotal       decimal.Decimal `json:"receitaTotal"`
	CustoProdutosTotal decimal.Decimal `json:"custoProdutosTotal"`
	LucroBrutoTotal    decimal.Decimal `json:"lucroBrutoTotal"`
	CustosFixosTotal   decimal.Decimal `json:"custosFixosTotal"`
	LucroLiquido       decimal.Decimal `json:"lucroLiquido"`
	MargemBruta        decimal.Decimal `json:"margemBruta"`
	MargemLiquida      decimal.Decimal `json:"margemLiquida"`
	ROI                decimal.Decimal `json:"roi"`
}

// NaoResolvidoDTO item de venda cujo produto não existe ou está inativo.
type NaoResolvidoDTO struct {
	Tipo   string `json:"tipo"`
	ID     string `json:"id"`
	Motivo string `json:"motivo"`
}

// LucratividadeResponse resposta de GET /api/lucratividade.
type LucratividadeResponse struct {
	Periodo       PeriodoDTO              `json:"periodo"`
	Resumo        ResumoLucratividadeDTO  `json:"resumo"`
	Produtos      []LinhaLucratividadeDTO `json:"produtos"`
	NaoResolvidos []NaoResolvidoDTO       `json:"naoResolvidos"`
	Parcial       bool                    `json:"parcial,omitempty"`
}
