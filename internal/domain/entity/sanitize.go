package entity

import "github.com/shopspring/decimal"

// As funções abaixo normalizam registros na fronteira de leitura.
// Campos nulos já chegam como zero (COALESCE nas consultas). Vendas e itens
// mantêm valores negativos (estornos); só o catálogo de custeio é limitado a >= 0.

func naoNegativo(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// SanitizeVendaItem troca referências vazias por nil.
func SanitizeVendaItem(i VendaItem) VendaItem {
	if i.VarejoID != nil && *i.VarejoID == "" {
		i.VarejoID = nil
	}
	if i.ReceitaID != nil && *i.ReceitaID == "" {
		i.ReceitaID = nil
	}
	return i
}

// SanitizeInsumo zera preço e peso negativos. Peso zero resulta em custo zero no custeio.
func SanitizeInsumo(i Insumo) Insumo {
	i.PrecoPacote = naoNegativo(i.PrecoPacote)
	i.PesoPacote = naoNegativo(i.PesoPacote)
	return i
}

// SanitizeComposicao zera quantidade negativa.
func SanitizeComposicao(c Composicao) Composicao {
	c.Quantidade = naoNegativo(c.Quantidade)
	return c
}
