package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/application/dto"
	"github.com/jhoicas/padaria-pdv/internal/domain"
	"github.com/jhoicas/padaria-pdv/internal/domain/custo"
	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
	"github.com/jhoicas/padaria-pdv/internal/domain/repository"
)

// CustoReceitaUseCase ficha de custo de uma receita com preço sugerido.
type CustoReceitaUseCase struct {
	catalogo        repository.CatalogoRepository
	fracaoInvisivel decimal.Decimal
}

func NewCustoReceitaUseCase(catalogo repository.CatalogoRepository, fracaoInvisivel decimal.Decimal) *CustoReceitaUseCase {
	return &CustoReceitaUseCase{catalogo: catalogo, fracaoInvisivel: fracaoInvisivel}
}

// GetCusto calcula o custo da receita. markup é percentual ("100" dobra o custo); vazio = 0.
func (uc *CustoReceitaUseCase) GetCusto(ctx context.Context, receitaID, markup string) (*dto.CustoReceitaResponse, error) {
	if _, err := uuid.Parse(receitaID); err != nil {
		return nil, fmt.Errorf("id da receita %q: %w", receitaID, domain.ErrInvalidInput)
	}
	markupPct := decimal.Zero
	if strings.TrimSpace(markup) != "" {
		v, err := parseValor("markup", markup)
		if err != nil {
			return nil, err
		}
		markupPct = v
	}

	receita, err := uc.catalogo.GetReceita(ctx, receitaID)
	if err != nil {
		return nil, fmt.Errorf("custo: receita: %w", err)
	}
	if receita == nil {
		return nil, domain.ErrNotFound
	}

	comps, err := uc.catalogo.ListComposicoes(ctx, []string{receitaID})
	if err != nil {
		return nil, fmt.Errorf("custo: composições: %w", err)
	}
	insumos := map[string]struct{}{}
	ids := make([]string, 0, len(comps))
	for _, c := range comps {
		if _, ok := insumos[c.InsumoID]; !ok {
			insumos[c.InsumoID] = struct{}{}
			ids = append(ids, c.InsumoID)
		}
	}
	indice := map[string]entity.Insumo{}
	if len(ids) > 0 {
		lista, err := uc.catalogo.ListInsumos(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("custo: insumos: %w", err)
		}
		indice = custo.IndexarInsumos(lista)
	}

	b := custo.CalcularReceita(*receita, comps, indice, uc.fracaoInvisivel)
	return &dto.CustoReceitaResponse{
		ReceitaID:          receita.ID,
		Nome:               receita.Nome,
		Rendimento:         receita.RendimentoEfetivo(),
		CustoIngredientes:  b.CustoIngredientes.Round(2),
		CustoInvisivel:     b.CustoInvisivel.Round(2),
		CustoBase:          b.CustoBase.Round(2),
		CustoEmbalagens:    b.CustoEmbalagens.Round(2),
		CustoUnitarioBase:  b.CustoUnitarioBase.Round(2),
		CustoUnitarioTotal: b.CustoUnitarioTotal.Round(2),
		Markup:             markupPct,
		PrecoSugerido:      custo.PrecoSugerido(b.CustoUnitarioTotal, markupPct),
		LinhasIgnoradas:    b.LinhasIgnoradas,
	}, nil
}
