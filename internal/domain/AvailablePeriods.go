package domain

// AvailablePeriods representa os períodos já materializados no ledger
type AvailablePeriods struct {
	Periods []PeriodKey `json:"periods"` // Lista de chaves no formato yyyy-mm (mês zero-based)
	Years   []int       `json:"years"`   // Lista de anos únicos disponíveis
	Active  PeriodKey   `json:"active"`  // Período selecionado atualmente
}

type SelectPeriodRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// PeriodView é o registro resolvido de um período, persistido ou não
type PeriodView struct {
	Key       PeriodKey    `json:"key"`
	Persisted bool         `json:"persisted"`
	Data      *MonthlyData `json:"data"`
}

// MutationResult informa se uma edição foi aplicada ou ignorada silenciosamente
type MutationResult struct {
	Applied bool         `json:"applied"`
	Data    *MonthlyData `json:"data,omitempty"`
}
