package custo

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Unidades base em que todo o custeio é feito.
const (
	BaseGrama     = "g"
	BaseMililitro = "ml"
	BaseUnidade   = "un"
)

var mil = decimal.NewFromInt(1000)

// ConverterParaBase converte uma quantidade para a unidade base da sua família
// (massa → g, volume → ml, contagem → un). Unidades desconhecidas são tratadas como "un".
func ConverterParaBase(quantidade decimal.Decimal, unidade string) (decimal.Decimal, string) {
	switch strings.ToLower(strings.TrimSpace(unidade)) {
	case "kg":
		return quantidade.Mul(mil), BaseGrama
	case "g":
		return quantidade, BaseGrama
	case "l":
		return quantidade.Mul(mil), BaseMililitro
	case "ml":
		return quantidade, BaseMililitro
	default:
		return quantidade, BaseUnidade
	}
}
