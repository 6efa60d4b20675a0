package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/padaria-pdv/internal/domain"
)

const layoutData = "2006-01-02"

// Relogio permite fixar "agora" nos testes.
type Relogio func() time.Time

// parsePeriodo converte dataInicio/dataFim (AAAA-MM-DD) em dias de calendário.
// Padrões: primeiro dia do mês atual e hoje. O fim é inclusivo; o fetcher converte para [inicio, fim+1d).
func parsePeriodo(inicioStr, fimStr string, agora time.Time) (inicio, fim time.Time, err error) {
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())

	if strings.TrimSpace(fimStr) == "" {
		fim = hoje
	} else {
		fim, err = time.ParseInLocation(layoutData, strings.TrimSpace(fimStr), agora.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("dataFim %q: %w", fimStr, domain.ErrInvalidDate)
		}
	}

	if strings.TrimSpace(inicioStr) == "" {
		inicio = time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
	} else {
		inicio, err = time.ParseInLocation(layoutData, strings.TrimSpace(inicioStr), agora.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("dataInicio %q: %w", inicioStr, domain.ErrInvalidDate)
		}
	}

	if inicio.After(fim) {
		return time.Time{}, time.Time{}, domain.ErrInvalidRange
	}
	return inicio, fim, nil
}

// parseValor lê um valor monetário de query string; aceita vírgula decimal ("1500,50").
func parseValor(campo, raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", campo, raw, domain.ErrInvalidInput)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s não pode ser negativo: %w", campo, domain.ErrInvalidInput)
	}
	return v, nil
}

// paraFloat converte para número JSON com 2 casas.
func paraFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
