package domain

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownField = errors.New("unknown field")

// MonthField enumera os campos editáveis do registro mensal
type MonthField string

const (
	MonthFieldWorkingDays      MonthField = "workingDays"
	MonthFieldSDRInProduction  MonthField = "sdrInProduction"
	MonthFieldSDRInPreparation MonthField = "sdrInPreparation"
	MonthFieldNRGoal           MonthField = "nrGoal"
	MonthFieldMRRGoal          MonthField = "mrrGoal"
	MonthFieldManagerialGoal   MonthField = "managerialGoal"
)

// ConsultantField enumera os campos editáveis do desempenho de um consultor
type ConsultantField string

const (
	ConsultantFieldSDRGoal          ConsultantField = "sdrGoal"
	ConsultantFieldLeadGoal         ConsultantField = "leadGoal"
	ConsultantFieldInboundLeads     ConsultantField = "inboundLeads"
	ConsultantFieldOutboundLeads    ConsultantField = "outboundLeads"
	ConsultantFieldPartnerLeads     ConsultantField = "partnerLeads"
	ConsultantFieldIALeads          ConsultantField = "iaLeads"
	ConsultantFieldMagoGoal         ConsultantField = "magoGoal"
	ConsultantFieldMagoAchieved     ConsultantField = "magoAchieved"
	ConsultantFieldFinancialGoalNR  ConsultantField = "financialGoalNR"
	ConsultantFieldNRSales          ConsultantField = "nrSales"
	ConsultantFieldFinancialGoalMRR ConsultantField = "financialGoalMRR"
	ConsultantFieldMRRSales         ConsultantField = "mrrSales"
	ConsultantFieldContractsSigned  ConsultantField = "contractsSigned"
)

// UpdateFieldRequest é o corpo das edições de célula; Value aceita número ou texto
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// SetField aplica o valor ao campo do mês. Não verifica se o mês está fechado.
func (m *MonthlyData) SetField(field MonthField, value float64) error {
	switch field {
	case MonthFieldWorkingDays:
		m.WorkingDays = toInt(value)
	case MonthFieldSDRInProduction:
		m.SDRInProduction = toInt(value)
	case MonthFieldSDRInPreparation:
		m.SDRInPreparation = toInt(value)
	case MonthFieldNRGoal:
		m.NRGoal = value
	case MonthFieldMRRGoal:
		m.MRRGoal = value
	case MonthFieldManagerialGoal:
		m.ManagerialGoal = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// SetField aplica o valor ao campo do consultor
func (c *ConsultantData) SetField(field ConsultantField, value float64) error {
	switch field {
	case ConsultantFieldSDRGoal:
		c.SDRGoal = toInt(value)
	case ConsultantFieldLeadGoal:
		c.LeadGoal = toInt(value)
	case ConsultantFieldInboundLeads:
		c.InboundLeads = toInt(value)
	case ConsultantFieldOutboundLeads:
		c.OutboundLeads = toInt(value)
	case ConsultantFieldPartnerLeads:
		c.PartnerLeads = toInt(value)
	case ConsultantFieldIALeads:
		c.IALeads = toInt(value)
	case ConsultantFieldMagoGoal:
		c.MagoGoal = toInt(value)
	case ConsultantFieldMagoAchieved:
		c.MagoAchieved = toInt(value)
	case ConsultantFieldFinancialGoalNR:
		c.FinancialGoalNR = value
	case ConsultantFieldNRSales:
		c.NRSales = value
	case ConsultantFieldFinancialGoalMRR:
		c.FinancialGoalMRR = value
	case ConsultantFieldMRRSales:
		c.MRRSales = value
	case ConsultantFieldContractsSigned:
		c.ContractsSigned = toInt(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// IsValid permite rejeitar o campo antes de tocar no estado
func (f MonthField) IsValid() bool {
	var probe MonthlyData
	return probe.SetField(f, 0) == nil
}

func (f ConsultantField) IsValid() bool {
	var probe ConsultantData
	return probe.SetField(f, 0) == nil
}

// toInt trunca em direção a zero; valores não finitos viram zero
func toInt(value float64) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if value > math.MaxInt32 {
		return math.MaxInt32
	}
	if value < math.MinInt32 {
		return math.MinInt32
	}
	return int(value)
}
