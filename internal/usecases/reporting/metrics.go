// Package reporting calcula as métricas derivadas de um registro mensal.
// Todas as funções são puras: não alteram a entrada nem dependem de estado.
package reporting

import (
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"github.com/vfg2006/sdr-dashboard-api/pkg/utils"
)

// ReceivedLeads soma todas as fontes de lead do consultor
func ReceivedLeads(c domain.ConsultantData) int {
	return c.InboundLeads + c.OutboundLeads + c.PartnerLeads + c.IALeads
}

// ClosingRate é contratos / leads recebidos * 100, com duas casas
func ClosingRate(c domain.ConsultantData) float64 {
	received := ReceivedLeads(c)
	if received <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(c.ContractsSigned) / float64(received) * 100)
}

// ConsultantMetrics calcula os campos derivados de um consultor
func ConsultantMetrics(c domain.ConsultantData, workingDays int) domain.ConsultantMetrics {
	received := ReceivedLeads(c)

	leadGoalAchieved := 0.0
	if c.LeadGoal > 0 {
		leadGoalAchieved = float64(received) / float64(c.LeadGoal)
	}

	scheduledPerDay := 0.0
	if workingDays > 0 {
		scheduledPerDay = float64(received) / float64(workingDays)
	}

	return domain.ConsultantMetrics{
		ReceivedLeads:    received,
		LeadGoalAchieved: utils.Finite(leadGoalAchieved),
		ScheduledPerDay:  utils.Finite(scheduledPerDay),
		ResultNR:         c.NRSales - c.FinancialGoalNR,
		ResultMRR:        c.MRRSales - c.FinancialGoalMRR,
		ClosingRate:      ClosingRate(c),
	}
}

// Totals soma os campos aditivos de todos os consultores e calcula as razões totais
func Totals(data *domain.MonthlyData) domain.PerformanceTotals {
	var totals domain.PerformanceTotals
	if data == nil {
		return totals
	}

	for _, c := range data.Consultants {
		totals.SDRGoal += c.SDRGoal
		totals.LeadGoal += c.LeadGoal
		totals.ReceivedLeads += ReceivedLeads(c)
		totals.InboundLeads += c.InboundLeads
		totals.OutboundLeads += c.OutboundLeads
		totals.PartnerLeads += c.PartnerLeads
		totals.IALeads += c.IALeads
		totals.MagoGoal += c.MagoGoal
		totals.MagoAchieved += c.MagoAchieved
		totals.ContractsSigned += c.ContractsSigned
		totals.FinancialGoalNR += c.FinancialGoalNR
		totals.NRSales += c.NRSales
		totals.ResultNR += c.NRSales - c.FinancialGoalNR
		totals.FinancialGoalMRR += c.FinancialGoalMRR
		totals.MRRSales += c.MRRSales
		totals.ResultMRR += c.MRRSales - c.FinancialGoalMRR
	}

	if totals.LeadGoal > 0 {
		totals.TotalLeadGoalAchieved = utils.Finite(float64(totals.ReceivedLeads) / float64(totals.LeadGoal))
	}
	if data.WorkingDays > 0 {
		totals.TotalScheduledPerDay = utils.Finite(float64(totals.ReceivedLeads) / float64(data.WorkingDays))
	}

	return totals
}

// Sales compara o total vendido com as metas NR, MRR e gerencial
func Sales(data *domain.MonthlyData) domain.SalesSummary {
	var summary domain.SalesSummary
	if data == nil {
		return summary
	}

	for _, c := range data.Consultants {
		summary.TotalNRSales += c.NRSales
		summary.TotalMRRSales += c.MRRSales
	}

	summary.DifferenceNR = summary.TotalNRSales - data.NRGoal
	summary.DifferenceMRR = summary.TotalMRRSales - data.MRRGoal
	summary.DifferenceManagerial = summary.TotalNRSales + summary.TotalMRRSales - data.ManagerialGoal

	return summary
}

// Financial calcula o fechamento financeiro do mês (NR + MRR contra a meta somada)
func Financial(data *domain.MonthlyData) domain.FinancialSummary {
	var summary domain.FinancialSummary
	if data == nil {
		return summary
	}

	for _, c := range data.Consultants {
		summary.TotalSales += c.NRSales + c.MRRSales
	}

	summary.TotalGoal = data.NRGoal + data.MRRGoal
	if summary.TotalGoal > summary.TotalSales {
		summary.RemainingGoal = summary.TotalGoal - summary.TotalSales
	}
	if summary.TotalGoal > 0 {
		summary.Percentage = utils.Finite(summary.TotalSales / summary.TotalGoal * 100)
	}

	return summary
}
