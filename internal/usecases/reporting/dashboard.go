package reporting

import (
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"github.com/vfg2006/sdr-dashboard-api/pkg/utils"
)

// Rows junta o roster com os dados do mês, na ordem do roster.
// Consultores sem registro no período ficam de fora.
func Rows(roster []domain.Salesperson, data *domain.MonthlyData) []domain.ConsultantRow {
	rows := make([]domain.ConsultantRow, 0, len(roster))
	if data == nil {
		return rows
	}

	for _, sp := range roster {
		c := data.Consultant(sp.ID)
		if c == nil {
			continue
		}

		metrics := ConsultantMetrics(*c, data.WorkingDays)
		rows = append(rows, domain.ConsultantRow{
			Salesperson:             sp,
			ConsultantData:          *c,
			ConsultantMetrics:       metrics,
			LeadGoalAchievedPercent: utils.ProgressPercent(metrics.LeadGoalAchieved),
			ProgressWidth:           utils.ProgressWidth(metrics.LeadGoalAchieved),
		})
	}

	return rows
}

// Dashboard monta a visão completa de um período a partir do estado confirmado
func Dashboard(roster []domain.Salesperson, view domain.PeriodView) domain.DashboardView {
	data := view.Data
	totals := Totals(data)
	sales := Sales(data)
	financial := Financial(data)

	dashboard := domain.DashboardView{
		Key:          view.Key,
		Persisted:    view.Persisted,
		Month:        data,
		Rows:         Rows(roster, data),
		Totals:       totals,
		Sales:        sales,
		Financial:    financial,
		Charts:       Charts(roster, data),
		TotalPercent: utils.ProgressPercent(totals.TotalLeadGoalAchieved),
	}
	dashboard.Display = displayStrings(data, totals, sales, financial)

	return dashboard
}

func displayStrings(data *domain.MonthlyData, totals domain.PerformanceTotals, sales domain.SalesSummary, financial domain.FinancialSummary) map[string]string {
	display := map[string]string{
		"totalNRSales":          utils.FormatCurrency(sales.TotalNRSales),
		"totalMRRSales":         utils.FormatCurrency(sales.TotalMRRSales),
		"differenceNR":          utils.FormatCurrency(sales.DifferenceNR),
		"differenceMRR":         utils.FormatCurrency(sales.DifferenceMRR),
		"differenceManagerial":  utils.FormatCurrency(sales.DifferenceManagerial),
		"totalFinancialGoalNR":  utils.FormatCurrency(totals.FinancialGoalNR),
		"totalFinancialGoalMRR": utils.FormatCurrency(totals.FinancialGoalMRR),
		"totalResultNR":         utils.FormatCurrency(totals.ResultNR),
		"totalResultMRR":        utils.FormatCurrency(totals.ResultMRR),
		"totalLeadGoalAchieved": utils.FormatRatioPercent(totals.TotalLeadGoalAchieved),
		"totalSales":            utils.FormatCurrency(financial.TotalSales),
		"totalGoal":             utils.FormatCurrency(financial.TotalGoal),
		"remainingGoal":         utils.FormatCurrency(financial.RemainingGoal),
		"percentage":            utils.FormatPercent(financial.Percentage),
	}

	if data != nil {
		display["nrGoal"] = utils.FormatCurrency(data.NRGoal)
		display["mrrGoal"] = utils.FormatCurrency(data.MRRGoal)
		display["managerialGoal"] = utils.FormatCurrency(data.ManagerialGoal)
	}

	return display
}
