package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErroInternoResponse corpo fixo de todo 500 da API. O painel de métricas depende dele.
type ErroInternoResponse struct {
	Error string `json:"error"`
}

// PeriodoRequest query params de período. Datas em YYYY-MM-DD.
type PeriodoRequest struct {
	DataInicio string `query:"dataInicio"` // padrão: primeiro dia do mês atual
	DataFim    string `query:"dataFim"`    // padrão: hoje
}

// PeriodoDTO período efetivamente usado no cálculo.
type PeriodoDTO struct {
	DataInicio string `json:"dataInicio"`
	DataFim    string `json:"dataFim"`
}
