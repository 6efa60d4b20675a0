package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/padaria-pdv/internal/application/dto"
	"github.com/jhoicas/padaria-pdv/internal/application/vendas"
	"github.com/jhoicas/padaria-pdv/internal/domain/metricas"
	"github.com/jhoicas/padaria-pdv/pkg/logger"
)

// MetricasUseCase painel de vendas do período: receita, ticket médio, formas de pagamento.
type MetricasUseCase struct {
	fetcher *vendas.Fetcher
	log     *logger.Logger
	agora   Relogio
}

// NewMetricasUseCase constrói o caso de uso.
func NewMetricasUseCase(fetcher *vendas.Fetcher, log *logger.Logger) *MetricasUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MetricasUseCase{fetcher: fetcher, log: log, agora: time.Now}
}

// WithRelogio substitui o relógio (testes).
func (uc *MetricasUseCase) WithRelogio(r Relogio) *MetricasUseCase {
	uc.agora = r
	return uc
}

// GetMetricas lê as vendas finalizadas do período e agrega.
//
// Falhas de página ou lote não viram erro: o painel mostra o que foi lido e
// marca Parcial. Só o cancelamento do contexto aborta.
func (uc *MetricasUseCase) GetMetricas(ctx context.Context, req dto.PeriodoRequest) (*dto.MetricasVendasResponse, error) {
	inicio, fim, err := parsePeriodo(req.DataInicio, req.DataFim, uc.agora())
	if err != nil {
		return nil, err
	}

	vendasRes := uc.fetcher.BuscarFinalizadas(ctx, inicio, fim)
	ids := make([]string, 0, len(vendasRes.Dados))
	for _, v := range vendasRes.Dados {
		ids = append(ids, v.ID)
	}
	unidadesRes := uc.fetcher.SomarUnidades(ctx, ids)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("metricas: %w", err)
	}

	m := metricas.Agregar(vendasRes.Dados, unidadesRes.Dados)
	for forma, n := range m.NaoReconhecidas {
		uc.log.Warn().Str("forma_pagamento", forma).Int("vendas", n).
			Msg("metricas: forma de pagamento não reconhecida; fora dos totais por forma")
	}
	if m.VendasNegativas > 0 {
		uc.log.Warn().Int("vendas", m.VendasNegativas).Msg("metricas: vendas com valor negativo somadas como estão")
	}

	return &dto.MetricasVendasResponse{
		UnidadesVendidas: paraFloat(m.UnidadesVendidas),
		ReceitaTotal:     paraFloat(m.ReceitaTotal),
		TicketMedio:      paraFloat(m.TicketMedio),
		TotalPix:         paraFloat(m.PorFormaPagamento[metricas.BucketPix]),
		TotalDinheiro:    paraFloat(m.PorFormaPagamento[metricas.BucketDinheiro]),
		TotalDebito:      paraFloat(m.PorFormaPagamento[metricas.BucketDebito]),
		TotalCredito:     paraFloat(m.PorFormaPagamento[metricas.BucketCredito]),
		TotalCaderneta:   paraFloat(m.PorFormaPagamento[metricas.BucketCaderneta]),
		ValorReceber:     paraFloat(m.ValorReceber),
		QuantidadeVendas: m.QuantidadeVendas,
		Parcial:          vendasRes.Parcial() || unidadesRes.Parcial(),
	}, nil
}
