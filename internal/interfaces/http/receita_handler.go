package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/padaria-pdv/internal/application/usecase"
)

// ReceitaHandler ficha de custo das receitas.
type ReceitaHandler struct {
	uc *usecase.CustoReceitaUseCase
}

func NewReceitaHandler(uc *usecase.CustoReceitaUseCase) *ReceitaHandler {
	return &ReceitaHandler{uc: uc}
}

// GetCusto godoc
// @Summary      Custo unitário de uma receita
// @Description  Custo de ingredientes, custo invisível, embalagens e custo unitário, com preço sugerido pelo markup.
// @Tags         receitas
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID da receita (UUID)"
// @Param        markup  query  string  false  "Markup percentual sobre o custo unitário (ex.: 120)"
// @Success      200  {object}  dto.CustoReceitaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErroInternoResponse
// @Router       /api/receitas/{id}/custo [get]
func (h *ReceitaHandler) GetCusto(c *fiber.Ctx) error {
	resp, err := h.uc.GetCusto(c.UserContext(), c.Params("id"), c.Query("markup"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
