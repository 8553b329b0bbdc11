package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodKey(t *testing.T) {
	tests := []struct {
		name     string
		period   Period
		expected PeriodKey
	}{
		{name: "Janeiro é o mês zero", period: Period{Year: 2024, Month: 0}, expected: "2024-00"},
		{name: "Dezembro é o mês onze", period: Period{Year: 2024, Month: 11}, expected: "2024-11"},
		{name: "Ano com menos de quatro dígitos", period: Period{Year: 999, Month: 4}, expected: "0999-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.period.Key())

			parsed, err := ParsePeriodKey(string(tt.expected))
			require.NoError(t, err)
			assert.Equal(t, tt.period, parsed)
		})
	}
}

func TestPeriodKey_SortsChronologically(t *testing.T) {
	ledger := Ledger{
		Period{Year: 2024, Month: 10}.Key(): {},
		Period{Year: 2023, Month: 11}.Key(): {},
		Period{Year: 2024, Month: 1}.Key():  {},
	}

	assert.Equal(t, []PeriodKey{"2023-11", "2024-01", "2024-10"}, ledger.Keys())
}

func TestParsePeriodKey_Invalid(t *testing.T) {
	for _, key := range []string{"", "2024-5", "2024-12", "24-01", "2024/01", "2024-01x", "abcd-01"} {
		t.Run(key, func(t *testing.T) {
			_, err := ParsePeriodKey(key)
			assert.ErrorIs(t, err, ErrInvalidPeriod)
		})
	}
}

func TestPeriodFromTime(t *testing.T) {
	period := PeriodFromTime(time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, Period{Year: 2024, Month: 2}, period)
}

func TestNewPeriod_Validation(t *testing.T) {
	_, err := NewPeriod(2024, -1)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = NewPeriod(0, 3)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
