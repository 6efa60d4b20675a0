package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/padaria-pdv/internal/application/dto"
	"github.com/jhoicas/padaria-pdv/internal/application/usecase"
)

// LucratividadeHandler relatório de lucro por produto.
type LucratividadeHandler struct {
	uc *usecase.LucratividadeUseCase
}

func NewLucratividadeHandler(uc *usecase.LucratividadeUseCase) *LucratividadeHandler {
	return &LucratividadeHandler{uc: uc}
}

// GetRelatorio godoc
// @Summary      Lucratividade por produto
// @Description  Agrupa os itens das vendas finalizadas por produto, aplica o custo de varejo ou de receita
//
//	e resume receita, custo, lucro bruto, lucro líquido, margens e ROI.
//
// @Tags         lucratividade
// @Security     Bearer
// @Produce      json
// @Param        dataInicio   query  string  false  "Início do período (YYYY-MM-DD)."
// @Param        dataFim      query  string  false  "Fim do período (YYYY-MM-DD)."
// @Param        custosFixos  query  string  false  "Custos fixos do período. Padrão: soma dos custos fixos ativos."
// @Success      200  {object}  dto.LucratividadeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErroInternoResponse
// @Router       /api/lucratividade [get]
func (h *LucratividadeHandler) GetRelatorio(c *fiber.Ctx) error {
	var req dto.LucratividadeRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parâmetros de consulta inválidos",
		})
	}
	rel, err := h.uc.GetRelatorio(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rel)
}

// GetRelatorioPDF godoc
// @Summary      Lucratividade por produto (PDF)
// @Tags         lucratividade
// @Security     Bearer
// @Produce      application/pdf
// @Param        dataInicio   query  string  false  "Início do período (YYYY-MM-DD)."
// @Param        dataFim      query  string  false  "Fim do período (YYYY-MM-DD)."
// @Param        custosFixos  query  string  false  "Custos fixos do período."
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErroInternoResponse
// @Router       /api/lucratividade/pdf [get]
func (h *LucratividadeHandler) GetRelatorioPDF(c *fiber.Ctx) error {
	var req dto.LucratividadeRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parâmetros de consulta inválidos",
		})
	}
	out, err := h.uc.GetRelatorioPDF(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="lucratividade-%s.pdf"`, nomeArquivo(req)))
	return c.Send(out)
}

func nomeArquivo(req dto.LucratividadeRequest) string {
	if req.DataInicio == "" && req.DataFim == "" {
		return "mes-atual"
	}
	return req.DataInicio + "_" + req.DataFim
}
