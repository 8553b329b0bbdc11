package utils

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayCurrency é a única convenção monetária do painel
const DisplayCurrency = money.BRL

// FormatCurrency formata um valor em reais (ex: R$1.234,56)
func FormatCurrency(amount float64) string {
	cents := decimal.NewFromFloat(Finite(amount)).Shift(2).Round(0).IntPart()
	return money.New(cents, DisplayCurrency).Display()
}

// FormatPercent formata uma porcentagem com duas casas (ex: 87.50%)
func FormatPercent(percentage float64) string {
	return fmt.Sprintf("%.2f%%", Finite(percentage))
}

// FormatRatioPercent formata uma razão como porcentagem (0.875 -> 87.50%)
func FormatRatioPercent(ratio float64) string {
	return FormatPercent(Finite(ratio) * 100)
}
