package dto

// MetricasVendasResponse resposta de GET /api/vendas/metricas.
// Valores como números JSON, já arredondados a 2 casas.
type MetricasVendasResponse struct {
	UnidadesVendidas float64 `json:"unidadesVendidas"`
	ReceitaTotal     float64 `json:"receitaTotal"`
	TicketMedio      float64 `json:"ticketMedio"`
	TotalPix         float64 `json:"totalPix"`
	TotalDinheiro    float64 `json:"totalDinheiro"`
	TotalDebito      float64 `json:"totalDebito"`
	TotalCredito     float64 `json:"totalCredito"`
	TotalCaderneta   float64 `json:"totalCaderneta"`
	ValorReceber     float64 `json:"valorReceber"`

	QuantidadeVendas int  `json:"quantidadeVendas"`
	Parcial          bool `json:"parcial,omitempty"` // alguma página ou lote falhou
}
