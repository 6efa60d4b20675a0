package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
	"github.com/jhoicas/padaria-pdv/internal/domain/repository"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// CatalogoRepo leitura de varejo, receitas, composicoes, insumos, precos e custos_fixos.
type CatalogoRepo struct {
	q Querier
}

func NewCatalogoRepository(q Querier) *CatalogoRepo {
	return &CatalogoRepo{q: q}
}

func (r *CatalogoRepo) selectAll(ctx context.Context, dst any, qb squirrel.SelectBuilder, op string) error {
	sql, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("catalogo.%s build: %w", op, err)
	}
	if err := pgxscan.Select(ctx, r.q, dst, sql, args...); err != nil {
		return fmt.Errorf("catalogo.%s: %w", op, err)
	}
	return nil
}

func (r *CatalogoRepo) ListProdutosVarejo(ctx context.Context) ([]entity.ProdutoVarejo, error) {
	qb := builder().
		Select(
			"id",
			"COALESCE(nome, '') AS nome",
			"COALESCE(ativo, true) AS ativo",
			"COALESCE(preco_venda, 0) AS preco_venda",
			"COALESCE(custo_unitario, 0) AS custo_unitario",
		).
		From("varejo").
		OrderBy("nome ASC")

	var out []entity.ProdutoVarejo
	if err := r.selectAll(ctx, &out, qb, "ListProdutosVarejo"); err != nil {
		return nil, err
	}
	return out, nil
}

func receitasSelect() squirrel.SelectBuilder {
	return builder().
		Select(
			"id",
			"COALESCE(nome, '') AS nome",
			"COALESCE(ativo, true) AS ativo",
			"COALESCE(rendimento, 1) AS rendimento",
		).
		From("receitas")
}

func (r *CatalogoRepo) ListReceitas(ctx context.Context) ([]entity.Receita, error) {
	var out []entity.Receita
	if err := r.selectAll(ctx, &out, receitasSelect().OrderBy("nome ASC"), "ListReceitas"); err != nil {
		return nil, err
	}
	return out, nil
}

// GetReceita devolve nil, nil quando a receita não existe.
func (r *CatalogoRepo) GetReceita(ctx context.Context, id string) (*entity.Receita, error) {
	sql, args, err := receitasSelect().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("catalogo.GetReceita build: %w", err)
	}
	var rec entity.Receita
	if err := pgxscan.Get(ctx, r.q, &rec, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalogo.GetReceita: %w", err)
	}
	return &rec, nil
}

func (r *CatalogoRepo) ListComposicoes(ctx context.Context, receitaIDs []string) ([]entity.Composicao, error) {
	qb := builder().
		Select(
			"id",
			"receita_id",
			"insumo_id",
			"COALESCE(quantidade, 0) AS quantidade",
			"COALESCE(unidade, '') AS unidade",
			"COALESCE(categoria, '') AS categoria",
		).
		From("composicoes").
		OrderBy("receita_id ASC", "id ASC")
	if len(receitaIDs) > 0 {
		qb = qb.Where(squirrel.Eq{"receita_id": receitaIDs})
	}

	var out []entity.Composicao
	if err := r.selectAll(ctx, &out, qb, "ListComposicoes"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogoRepo) ListInsumos(ctx context.Context, ids []string) ([]entity.Insumo, error) {
	qb := builder().
		Select(
			"id",
			"COALESCE(nome, '') AS nome",
			"COALESCE(preco_pacote, 0) AS preco_pacote",
			"COALESCE(peso_pacote, 0) AS peso_pacote",
			"COALESCE(unidade, '') AS unidade",
		).
		From("insumos")
	if len(ids) > 0 {
		qb = qb.Where(squirrel.Eq{"id": ids})
	}

	var out []entity.Insumo
	if err := r.selectAll(ctx, &out, qb, "ListInsumos"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogoRepo) ListPrecos(ctx context.Context) ([]entity.Preco, error) {
	qb := builder().
		Select(
			"id",
			"varejo_id",
			"receita_id",
			"COALESCE(preco_venda, 0) AS preco_venda",
			"COALESCE(custo_unitario, 0) AS custo_unitario",
			"updated_at",
		).
		From("precos").
		OrderBy("updated_at DESC")

	var out []entity.Preco
	if err := r.selectAll(ctx, &out, qb, "ListPrecos"); err != nil {
		return nil, err
	}
	return out, nil
}

type somaCustosRow struct {
	Quantidade int64           `db:"quantidade"`
	Total      decimal.Decimal `db:"total"`
}

func (r *CatalogoRepo) SumCustosFixosAtivos(ctx context.Context) (decimal.Decimal, bool, error) {
	sql, args, err := builder().
		Select("COUNT(*) AS quantidade", "COALESCE(SUM(valor), 0) AS total").
		From("custos_fixos").
		Where(squirrel.Eq{"ativo": true}).
		ToSql()
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("catalogo.SumCustosFixosAtivos build: %w", err)
	}
	var row somaCustosRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		return decimal.Zero, false, fmt.Errorf("catalogo.SumCustosFixosAtivos: %w", err)
	}
	return row.Total, row.Quantidade > 0, nil
}
