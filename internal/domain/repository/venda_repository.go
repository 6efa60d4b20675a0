package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
)

// VendaRepository leitura de vendas e itens de venda (somente leitura).
type VendaRepository interface {
	// ListFinalizadas devolve uma página de vendas finalizadas com data em [inicio, fim),
	// ordenadas por data ascendente.
	ListFinalizadas(ctx context.Context, inicio, fim time.Time, limit, offset int) ([]entity.Venda, error)

	// ListQuantidades devolve o campo quantidade dos itens das vendas informadas.
	ListQuantidades(ctx context.Context, vendaIDs []string) ([]decimal.Decimal, error)

	// ListItens devolve os itens das vendas informadas.
	ListItens(ctx context.Context, vendaIDs []string) ([]entity.VendaItem, error)
}
