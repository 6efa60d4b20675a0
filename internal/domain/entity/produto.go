package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProdutoVarejo produto pronto revendido sem receita.
type ProdutoVarejo struct {
	ID            string          `db:"id"`
	Nome          string          `db:"nome"`
	Ativo         bool            `db:"ativo"`
	PrecoVenda    decimal.Decimal `db:"preco_venda"`
	CustoUnitario decimal.Decimal `db:"custo_unitario"`
}

// Preco entrada da tabela de preços. Aponta para um produto de varejo ou uma receita.
type Preco struct {
	ID            string          `db:"id"`
	VarejoID      *string         `db:"varejo_id"`
	ReceitaID     *string         `db:"receita_id"`
	PrecoVenda    decimal.Decimal `db:"preco_venda"`
	CustoUnitario decimal.Decimal `db:"custo_unitario"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// CustoFixo despesa fixa do período (aluguel, energia, salários).
type CustoFixo struct {
	ID        string          `db:"id"`
	Descricao string          `db:"descricao"`
	Valor     decimal.Decimal `db:"valor"`
	Ativo     bool            `db:"ativo"`
}
