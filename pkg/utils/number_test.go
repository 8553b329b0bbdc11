package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{name: "Nulo", value: nil, expected: 0},
		{name: "Número JSON", value: float64(12.5), expected: 12.5},
		{name: "Inteiro", value: 7, expected: 7},
		{name: "Texto numérico", value: "42", expected: 42},
		{name: "Prefixo numérico", value: "12abc", expected: 12},
		{name: "Decimal com prefixo", value: "3.5kg", expected: 3.5},
		{name: "Negativo", value: "-8", expected: -8},
		{name: "Texto sem número", value: "abc", expected: 0},
		{name: "Texto vazio", value: "   ", expected: 0},
		{name: "NaN", value: math.NaN(), expected: 0},
		{name: "Infinito em texto", value: "Infinity", expected: 0},
		{name: "Tipo não suportado", value: []int{1}, expected: 0},
		{name: "Booleano", value: true, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToNumber(tt.value))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(100.0/3))
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(200.0/3))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(math.Inf(-1)))
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name          string
		ratio         float64
		expectedPct   int
		expectedWidth int
	}{
		{name: "Metade da meta", ratio: 0.5, expectedPct: 50, expectedWidth: 50},
		{name: "Meta superada limita a barra", ratio: 1.8, expectedPct: 180, expectedWidth: 100},
		{name: "Arredonda para o inteiro mais próximo", ratio: 0.666, expectedPct: 67, expectedWidth: 67},
		{name: "Não finito vira zero", ratio: math.NaN(), expectedPct: 0, expectedWidth: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedPct, ProgressPercent(tt.ratio))
			assert.Equal(t, tt.expectedWidth, ProgressWidth(tt.ratio))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "87.50%", FormatRatioPercent(0.875))
	assert.Equal(t, "0.00%", FormatPercent(math.Inf(1)))
	assert.Contains(t, FormatCurrency(1234.56), "R$")
	assert.Contains(t, FormatCurrency(1234.56), "234,56")
}
