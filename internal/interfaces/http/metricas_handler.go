package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/padaria-pdv/internal/application/dto"
	"github.com/jhoicas/padaria-pdv/internal/application/usecase"
	"github.com/jhoicas/padaria-pdv/internal/domain"
	"github.com/jhoicas/padaria-pdv/pkg/logger"
)

// MetricasHandler painel de vendas do PDV.
type MetricasHandler struct {
	uc  *usecase.MetricasUseCase
	log *logger.Logger
}

// NewMetricasHandler constrói o handler.
func NewMetricasHandler(uc *usecase.MetricasUseCase, log *logger.Logger) *MetricasHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &MetricasHandler{uc: uc, log: log}
}

// GetMetricas godoc
// @Summary      Métricas de vendas do período
// @Description  Receita, ticket médio, unidades vendidas, totais por forma de pagamento e valor a receber
//
//	das vendas finalizadas entre dataInicio e dataFim (inclusive).
//
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        dataInicio  query  string  false  "Início do período (YYYY-MM-DD). Padrão: primeiro dia do mês."
// @Param        dataFim     query  string  false  "Fim do período (YYYY-MM-DD). Padrão: hoje."
// @Success      200  {object}  dto.MetricasVendasResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErroInternoResponse
// @Router       /api/vendas/metricas [get]
func (h *MetricasHandler) GetMetricas(c *fiber.Ctx) error {
	var req dto.PeriodoRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parâmetros de consulta inválidos",
		})
	}

	resp, err := h.uc.GetMetricas(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) || errors.Is(err, domain.ErrInvalidRange) {
			return respondError(c, err)
		}
		h.log.Error().Err(err).Msg("metricas: falha ao calcular")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErroInternoResponse{Error: "Erro interno"})
	}
	return c.JSON(resp)
}
