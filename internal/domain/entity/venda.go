package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusVendaFinalizada é o único status contado nas métricas.
const StatusVendaFinalizada = "finalizada"

// FormaPagamento valor cru gravado pelo fluxo de registro de venda.
type FormaPagamento string

// Formas de pagamento reconhecidas pelo PDV.
const (
	FormaPix           FormaPagamento = "pix"
	FormaDinheiro      FormaPagamento = "dinheiro"
	FormaCartaoDebito  FormaPagamento = "cartao_debito"
	FormaCartaoCredito FormaPagamento = "cartao_credito"
	FormaCaderneta     FormaPagamento = "caderneta"
)

// Venda cabeçalho de uma venda. Imutável depois de finalizada.
type Venda struct {
	ID             string          `db:"id"`
	Data           time.Time       `db:"data"`
	Status         string          `db:"status"`
	FormaPagamento FormaPagamento  `db:"forma_pagamento"`
	ValorTotal     decimal.Decimal `db:"valor_total"`
	ValorDebito    decimal.Decimal `db:"valor_debito"` // parte a receber (caderneta ou pagamento parcial)
}

// VendaItem linha de uma venda. Referencia um produto de varejo OU uma receita.
type VendaItem struct {
	VendaID       string          `db:"venda_id"`
	VarejoID      *string         `db:"varejo_id"`
	ReceitaID     *string         `db:"receita_id"`
	Quantidade    decimal.Decimal `db:"quantidade"`
	PrecoUnitario decimal.Decimal `db:"preco_unitario"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Receita valor da linha (quantidade × preço unitário).
func (i VendaItem) Receita() decimal.Decimal {
	return i.Quantidade.Mul(i.PrecoUnitario)
}
