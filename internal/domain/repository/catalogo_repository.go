package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
)

// CatalogoRepository leitura de produtos, receitas, insumos e custos.
// Devolve inclusive registros inativos: quem decide o que descartar é o domínio.
type CatalogoRepository interface {
	ListProdutosVarejo(ctx context.Context) ([]entity.ProdutoVarejo, error)
	ListReceitas(ctx context.Context) ([]entity.Receita, error)
	GetReceita(ctx context.Context, id string) (*entity.Receita, error)
	// receitaIDs vazio devolve todas as composições.
	ListComposicoes(ctx context.Context, receitaIDs []string) ([]entity.Composicao, error)
	// ids vazio devolve todos os insumos.
	ListInsumos(ctx context.Context, ids []string) ([]entity.Insumo, error)
	ListPrecos(ctx context.Context) ([]entity.Preco, error)
	// SumCustosFixosAtivos soma o valor dos custos fixos ativos; ok=false se não houver nenhum cadastrado.
	SumCustosFixosAtivos(ctx context.Context) (total decimal.Decimal, ok bool, err error)
}
