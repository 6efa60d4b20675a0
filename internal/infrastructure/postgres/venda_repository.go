package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
	"github.com/jhoicas/padaria-pdv/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo leitura das tabelas vendas e venda_itens.
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador. Aceita pool ou tx.
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

// ListFinalizadas página de vendas finalizadas em [inicio, fim), por data ascendente.
// O id desempata vendas com a mesma data para que o offset seja estável entre páginas.
func (r *VendaRepo) ListFinalizadas(ctx context.Context, inicio, fim time.Time, limit, offset int) ([]entity.Venda, error) {
	sql, args, err := buildListFinalizadas(inicio, fim, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("vendas.ListFinalizadas build: %w", err)
	}

	var vendas []entity.Venda
	if err := pgxscan.Select(ctx, r.q, &vendas, sql, args...); err != nil {
		return nil, fmt.Errorf("vendas.ListFinalizadas: %w", err)
	}
	return vendas, nil
}

func buildListFinalizadas(inicio, fim time.Time, limit, offset int) (string, []any, error) {
	return builder().
		Select(
			"id",
			"data",
			"status",
			"COALESCE(forma_pagamento, '') AS forma_pagamento",
			"COALESCE(valor_total, 0) AS valor_total",
			"COALESCE(valor_debito, 0) AS valor_debito",
		).
		From("vendas").
		Where(squirrel.Eq{"status": entity.StatusVendaFinalizada}).
		Where(squirrel.GtOrEq{"data": inicio}).
		Where(squirrel.Lt{"data": fim}).
		OrderBy("data ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
}

type quantidadeRow struct {
	Quantidade decimal.Decimal `db:"quantidade"`
}

// ListQuantidades quantidades dos itens das vendas informadas (um lote por chamada).
func (r *VendaRepo) ListQuantidades(ctx context.Context, vendaIDs []string) ([]decimal.Decimal, error) {
	if len(vendaIDs) == 0 {
		return nil, nil
	}
	sql, args, err := builder().
		Select("COALESCE(quantidade, 0) AS quantidade").
		From("venda_itens").
		Where(squirrel.Eq{"venda_id": vendaIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("vendas.ListQuantidades build: %w", err)
	}

	var rows []quantidadeRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("vendas.ListQuantidades: %w", err)
	}
	out := make([]decimal.Decimal, len(rows))
	for i, row := range rows {
		out[i] = row.Quantidade
	}
	return out, nil
}

// ListItens itens das vendas informadas.
func (r *VendaRepo) ListItens(ctx context.Context, vendaIDs []string) ([]entity.VendaItem, error) {
	if len(vendaIDs) == 0 {
		return nil, nil
	}
	sql, args, err := builder().
		Select(
			"venda_id",
			"varejo_id",
			"receita_id",
			"COALESCE(quantidade, 0) AS quantidade",
			"COALESCE(preco_unitario, 0) AS preco_unitario",
			"created_at",
		).
		From("venda_itens").
		Where(squirrel.Eq{"venda_id": vendaIDs}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("vendas.ListItens build: %w", err)
	}

	var itens []entity.VendaItem
	if err := pgxscan.Select(ctx, r.q, &itens, sql, args...); err != nil {
		return nil, fmt.Errorf("vendas.ListItens: %w", err)
	}
	return itens, nil
}
