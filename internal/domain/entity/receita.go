package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Categorias de composição com tratamento especial no custeio.
const (
	CategoriaMassa     = "massa"
	CategoriaEmbalagem = "embalagem"
)

// Receita produto fabricado a partir de insumos. Rendimento = unidades por fornada.
type Receita struct {
	ID         string          `db:"id"`
	Nome       string          `db:"nome"`
	Ativo      bool            `db:"ativo"`
	Rendimento decimal.Decimal `db:"rendimento"`
}

// RendimentoEfetivo trata rendimento <= 0 como 1.
func (r Receita) RendimentoEfetivo() decimal.Decimal {
	if r.Rendimento.LessThanOrEqual(decimal.Zero) {
		return decimal.NewFromInt(1)
	}
	return r.Rendimento
}

// Composicao linha de ingrediente de uma receita.
// Unidade vazia significa "mesma unidade do insumo".
type Composicao struct {
	ID         string          `db:"id"`
	ReceitaID  string          `db:"receita_id"`
	InsumoID   string          `db:"insumo_id"`
	Quantidade decimal.Decimal `db:"quantidade"`
	Unidade    string          `db:"unidade"`
	Categoria  string          `db:"categoria"`
}

// Embalagem indica se a linha é consumida uma vez por unidade pronta.
func (c Composicao) Embalagem() bool {
	return strings.EqualFold(strings.TrimSpace(c.Categoria), CategoriaEmbalagem)
}

// Insumo matéria-prima comprada em pacotes.
type Insumo struct {
	ID          string          `db:"id"`
	Nome        string          `db:"nome"`
	PrecoPacote decimal.Decimal `db:"preco_pacote"`
	PesoPacote  decimal.Decimal `db:"peso_pacote"`
	Unidade     string          `db:"unidade"`
}
