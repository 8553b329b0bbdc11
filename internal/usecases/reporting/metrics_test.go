package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
)

func TestConsultantMetrics(t *testing.T) {
	tests := []struct {
		name        string
		consultant  domain.ConsultantData
		workingDays int
		expected    domain.ConsultantMetrics
	}{
		{
			name: "Meta de leads atingida exatamente",
			consultant: domain.ConsultantData{
				InboundLeads: 5, OutboundLeads: 3, PartnerLeads: 1, IALeads: 1,
				LeadGoal: 10, ContractsSigned: 2,
			},
			workingDays: 20,
			expected: domain.ConsultantMetrics{
				ReceivedLeads:    10,
				LeadGoalAchieved: 1.0,
				ScheduledPerDay:  0.5,
				ClosingRate:      20,
			},
		},
		{
			name:        "Meta de leads zerada não divide por zero",
			consultant:  domain.ConsultantData{InboundLeads: 4},
			workingDays: 21,
			expected: domain.ConsultantMetrics{
				ReceivedLeads:    4,
				LeadGoalAchieved: 0,
				ScheduledPerDay:  4.0 / 21,
			},
		},
		{
			name:        "Dias úteis zerados",
			consultant:  domain.ConsultantData{InboundLeads: 4, LeadGoal: 8},
			workingDays: 0,
			expected: domain.ConsultantMetrics{
				ReceivedLeads:    4,
				LeadGoalAchieved: 0.5,
				ScheduledPerDay:  0,
			},
		},
		{
			name:        "Contratos sem leads recebidos",
			consultant:  domain.ConsultantData{ContractsSigned: 3},
			workingDays: 21,
			expected:    domain.ConsultantMetrics{},
		},
		{
			name: "Resultado financeiro negativo indica falta",
			consultant: domain.ConsultantData{
				NRSales: 1000, FinancialGoalNR: 1500,
				MRRSales: 300, FinancialGoalMRR: 200,
			},
			workingDays: 21,
			expected: domain.ConsultantMetrics{
				ResultNR:  -500,
				ResultMRR: 100,
			},
		},
		{
			name:        "Taxa de fechamento arredondada em duas casas",
			consultant:  domain.ConsultantData{InboundLeads: 3, ContractsSigned: 1},
			workingDays: 21,
			expected: domain.ConsultantMetrics{
				ReceivedLeads:   3,
				ScheduledPerDay: 3.0 / 21,
				ClosingRate:     33.33,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConsultantMetrics(tt.consultant, tt.workingDays)
			assert.Equal(t, tt.expected.ReceivedLeads, got.ReceivedLeads)
			assert.InDelta(t, tt.expected.LeadGoalAchieved, got.LeadGoalAchieved, 1e-9)
			assert.InDelta(t, tt.expected.ScheduledPerDay, got.ScheduledPerDay, 1e-9)
			assert.InDelta(t, tt.expected.ResultNR, got.ResultNR, 1e-9)
			assert.InDelta(t, tt.expected.ResultMRR, got.ResultMRR, 1e-9)
			assert.InDelta(t, tt.expected.ClosingRate, got.ClosingRate, 1e-9)
		})
	}
}

func TestTotals(t *testing.T) {
	data := &domain.MonthlyData{
		WorkingDays: 0,
		Consultants: []domain.ConsultantData{
			{SalespersonID: "a", InboundLeads: 2, OutboundLeads: 1, LeadGoal: 6, NRSales: 600, FinancialGoalNR: 500, MRRSales: 50, FinancialGoalMRR: 80},
			{SalespersonID: "b", PartnerLeads: 2, IALeads: 1, LeadGoal: 0, NRSales: 300, FinancialGoalNR: 700, ContractsSigned: 2},
		},
	}

	totals := Totals(data)

	assert.Equal(t, 6, totals.ReceivedLeads)
	assert.Equal(t, 6, totals.LeadGoal)
	assert.Equal(t, 2, totals.ContractsSigned)
	assert.InDelta(t, 1.0, totals.TotalLeadGoalAchieved, 1e-9)
	assert.Equal(t, float64(0), totals.TotalScheduledPerDay)

	// Soma dos resultados é consistente com os totais
	var sumResultNR float64
	for _, c := range data.Consultants {
		sumResultNR += ConsultantMetrics(c, data.WorkingDays).ResultNR
	}
	assert.InDelta(t, totals.NRSales-totals.FinancialGoalNR, sumResultNR, 1e-9)
	assert.InDelta(t, sumResultNR, totals.ResultNR, 1e-9)
	assert.InDelta(t, -30.0, totals.ResultMRR, 1e-9)
}

func TestTotals_ZeroGoals(t *testing.T) {
	data := &domain.MonthlyData{
		WorkingDays: 21,
		Consultants: []domain.ConsultantData{{InboundLeads: 10}},
	}

	totals := Totals(data)
	assert.Equal(t, float64(0), totals.TotalLeadGoalAchieved)
	assert.InDelta(t, 10.0/21, totals.TotalScheduledPerDay, 1e-9)
	assert.Equal(t, domain.PerformanceTotals{}, Totals(nil))
}

func TestSales(t *testing.T) {
	data := &domain.MonthlyData{
		NRGoal:         1000,
		MRRGoal:        100,
		ManagerialGoal: 800,
		Consultants: []domain.ConsultantData{
			{SalespersonID: "A", NRSales: 600, MRRSales: 40},
			{SalespersonID: "B", NRSales: 300, MRRSales: 20},
		},
	}

	sales := Sales(data)

	assert.Equal(t, float64(900), sales.TotalNRSales)
	assert.Equal(t, float64(-100), sales.DifferenceNR)
	assert.Equal(t, float64(60), sales.TotalMRRSales)
	assert.Equal(t, float64(-40), sales.DifferenceMRR)
	assert.Equal(t, float64(160), sales.DifferenceManagerial)
}

func TestFinancial(t *testing.T) {
	tests := []struct {
		name     string
		data     *domain.MonthlyData
		expected domain.FinancialSummary
	}{
		{
			name: "Meta parcialmente atingida",
			data: &domain.MonthlyData{
				NRGoal: 800, MRRGoal: 200,
				Consultants: []domain.ConsultantData{{NRSales: 400, MRRSales: 100}},
			},
			expected: domain.FinancialSummary{TotalSales: 500, TotalGoal: 1000, RemainingGoal: 500, Percentage: 50},
		},
		{
			name: "Meta superada não gera restante negativo",
			data: &domain.MonthlyData{
				NRGoal: 100, MRRGoal: 0,
				Consultants: []domain.ConsultantData{{NRSales: 150}},
			},
			expected: domain.FinancialSummary{TotalSales: 150, TotalGoal: 100, RemainingGoal: 0, Percentage: 150},
		},
		{
			name: "Meta zerada",
			data: &domain.MonthlyData{
				Consultants: []domain.ConsultantData{{NRSales: 10}},
			},
			expected: domain.FinancialSummary{TotalSales: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Financial(tt.data))
		})
	}
}

func TestCharts(t *testing.T) {
	roster := []domain.Salesperson{
		{ID: "a", Name: "ANA"},
		{ID: "b", Name: "BETO"},
		{ID: "c", Name: "CAIO"},
	}
	data := &domain.MonthlyData{
		NRGoal: 1000,
		Consultants: []domain.ConsultantData{
			{SalespersonID: "a", InboundLeads: 3, IALeads: 1, ContractsSigned: 1, NRSales: 400},
			{SalespersonID: "b"},
		},
	}

	series := Charts(roster, data)

	assert.Equal(t, []domain.ChartPoint{{Name: "ANA", Value: 4}}, series.LeadDistribution)
	assert.Equal(t, []domain.ChartPoint{
		{Name: LeadSourceInbound, Value: 3},
		{Name: LeadSourceIA, Value: 1},
	}, series.LeadSource)

	require.Len(t, series.ClosingRate, 3)
	assert.Equal(t, domain.ChartPoint{Name: "ANA", Value: 25}, series.ClosingRate[0])
	assert.Equal(t, domain.ChartPoint{Name: "BETO", Value: 0}, series.ClosingRate[1])

	assert.Equal(t, []domain.ChartPoint{
		{Name: MonthEndResult, Value: 400},
		{Name: MonthEndRemaining, Value: 600},
	}, series.MonthEnd)
}

func TestDashboard(t *testing.T) {
	roster := []domain.Salesperson{
		{ID: "a", Name: "ANA"},
		{ID: "z", Name: "SEM REGISTRO"},
		{ID: "b", Name: "BETO"},
	}
	data := &domain.MonthlyData{
		Year: 2024, Month: 4, WorkingDays: 20, NRGoal: 1000,
		Consultants: []domain.ConsultantData{
			{SalespersonID: "b", InboundLeads: 30, LeadGoal: 10, NRSales: 300},
			{SalespersonID: "a", InboundLeads: 5, LeadGoal: 10, NRSales: 600},
		},
	}

	view := Dashboard(roster, domain.PeriodView{Key: data.Key(), Persisted: true, Data: data})

	require.Len(t, view.Rows, 2)
	assert.Equal(t, "ANA", view.Rows[0].Name)
	assert.Equal(t, "BETO", view.Rows[1].Name)
	assert.Equal(t, 50, view.Rows[0].LeadGoalAchievedPercent)
	assert.Equal(t, 50, view.Rows[0].ProgressWidth)
	assert.Equal(t, 300, view.Rows[1].LeadGoalAchievedPercent)
	assert.Equal(t, 100, view.Rows[1].ProgressWidth)

	assert.Equal(t, domain.PeriodKey("2024-04"), view.Key)
	assert.Equal(t, float64(-100), view.Sales.DifferenceNR)
	assert.Equal(t, 175, view.TotalPercent)
	assert.Equal(t, "175.00%", view.Display["totalLeadGoalAchieved"])
	assert.Contains(t, view.Display["totalNRSales"], "900")
}
