package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// RoundWithTwoDecimalPlace arredonda para duas casas, meio para longe do zero
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || !IsFinite(f) {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Finite troca NaN e infinitos por zero
func Finite(f float64) float64 {
	if !IsFinite(f) {
		return 0
	}
	return f
}

// ParseNumber interpreta o prefixo numérico do texto ("12abc" vira 12);
// qualquer coisa que não comece com número vira zero
func ParseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Finite(f)
	}

	prefix := numericPrefix.FindString(raw)
	if prefix == "" {
		return 0
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return Finite(f)
}

// ToNumber converte o valor decodificado de JSON em número, sem nunca falhar
func ToNumber(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return Finite(v)
	case float32:
		return Finite(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case string:
		return ParseNumber(v)
	case interface{ String() string }:
		return ParseNumber(v.String())
	default:
		return 0
	}
}

// ProgressPercent converte uma razão em porcentagem inteira para barras de progresso
func ProgressPercent(ratio float64) int {
	if !IsFinite(ratio) {
		return 0
	}
	return int(math.Round(ratio * 100))
}

// ProgressWidth é a largura da barra, limitada a 100
func ProgressWidth(ratio float64) int {
	percent := ProgressPercent(ratio)
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}
