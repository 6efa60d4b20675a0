// Package metricas reduz a lista de vendas de um período aos totais do painel do PDV.
package metricas

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain/entity"
)

// Bucket agrupamento de forma de pagamento no painel.
type Bucket string

const (
	BucketPix       Bucket = "pix"
	BucketDinheiro  Bucket = "dinheiro"
	BucketDebito    Bucket = "debito"
	BucketCredito   Bucket = "credito"
	BucketCaderneta Bucket = "caderneta"
)

// Buckets ordem fixa dos cinco buckets.
var Buckets = []Bucket{BucketPix, BucketDinheiro, BucketDebito, BucketCredito, BucketCaderneta}

var bucketPorForma = map[entity.FormaPagamento]Bucket{
	entity.FormaPix:           BucketPix,
	entity.FormaDinheiro:      BucketDinheiro,
	entity.FormaCartaoDebito:  BucketDebito,
	entity.FormaCartaoCredito: BucketCredito,
	entity.FormaCaderneta:     BucketCaderneta,
}

// BucketDe devolve o bucket da forma de pagamento; ok=false para valores não reconhecidos.
func BucketDe(f entity.FormaPagamento) (Bucket, bool) {
	b, ok := bucketPorForma[f]
	return b, ok
}

// PeriodoMetricas totais derivados de um período. Não é persistido.
type PeriodoMetricas struct {
	ReceitaTotal      decimal.Decimal
	QuantidadeVendas  int
	TicketMedio       decimal.Decimal
	UnidadesVendidas  decimal.Decimal
	ValorReceber      decimal.Decimal
	PorFormaPagamento map[Bucket]decimal.Decimal
	VendaIDs          []string
	// Formas de pagamento fora da tabela, com a contagem de vendas de cada uma.
	// Essas vendas entram na receita mas em nenhum bucket.
	NaoReconhecidas map[string]int
	// Vendas com valor_total ou valor_debito negativo (estornos). Entram nas somas como estão.
	VendasNegativas int
}

// TotalBuckets soma dos cinco buckets.
func (m PeriodoMetricas) TotalBuckets() decimal.Decimal {
	total := decimal.Zero
	for _, b := range Buckets {
		total = total.Add(m.PorFormaPagamento[b])
	}
	return total
}

// Agregar faz uma passada linear sobre as vendas. unidadesBrutas vem da soma por lotes
// dos itens de venda e é apenas arredondada aqui.
func Agregar(vendas []entity.Venda, unidadesBrutas decimal.Decimal) PeriodoMetricas {
	m := PeriodoMetricas{
		PorFormaPagamento: make(map[Bucket]decimal.Decimal, len(Buckets)),
		VendaIDs:          make([]string, 0, len(vendas)),
		NaoReconhecidas:   map[string]int{},
	}
	for _, b := range Buckets {
		m.PorFormaPagamento[b] = decimal.Zero
	}

	for _, v := range vendas {
		if v.ValorTotal.IsNegative() || v.ValorDebito.IsNegative() {
			m.VendasNegativas++
		}
		m.ReceitaTotal = m.ReceitaTotal.Add(v.ValorTotal)
		m.ValorReceber = m.ValorReceber.Add(v.ValorDebito)
		m.VendaIDs = append(m.VendaIDs, v.ID)

		if b, ok := BucketDe(v.FormaPagamento); ok {
			m.PorFormaPagamento[b] = m.PorFormaPagamento[b].Add(v.ValorTotal)
		} else {
			m.NaoReconhecidas[string(v.FormaPagamento)]++
		}
	}

	m.QuantidadeVendas = len(vendas)
	m.TicketMedio = TicketMedio(m.ReceitaTotal, m.QuantidadeVendas)
	m.UnidadesVendidas = ArredondarUnidades(unidadesBrutas)
	return m
}

// TicketMedio receita / quantidade, ou zero sem vendas.
func TicketMedio(receita decimal.Decimal, quantidade int) decimal.Decimal {
	if quantidade <= 0 {
		return decimal.Zero
	}
	return receita.Div(decimal.NewFromInt(int64(quantidade)))
}

// ArredondarUnidades arredonda para 2 casas, metade para longe do zero.
func ArredondarUnidades(u decimal.Decimal) decimal.Decimal {
	return u.Round(2)
}
