package domain

import (
	"math/rand/v2"
	"time"
)

// Valores fixos de todo mês novo; nada é herdado do mês anterior
const (
	DefaultWorkingDays      = 21
	DefaultSDRInProduction  = 2
	DefaultSDRInPreparation = 2
	DefaultNRGoal           = 216800
	DefaultMRRGoal          = 18800
	DefaultManagerialGoal   = 195120
)

// NewConsultantData cria um registro zerado para o consultor
func NewConsultantData(salespersonID string) ConsultantData {
	return ConsultantData{SalespersonID: salespersonID}
}

// NewMonthlyData sintetiza o registro de um período ainda inexistente,
// com um desempenho zerado por consultor do roster atual
func NewMonthlyData(period Period, roster []Salesperson) *MonthlyData {
	consultants := make([]ConsultantData, 0, len(roster))
	for _, sp := range roster {
		consultants = append(consultants, NewConsultantData(sp.ID))
	}

	return &MonthlyData{
		Year:             period.Year,
		Month:            period.Month,
		WorkingDays:      DefaultWorkingDays,
		SDRInProduction:  DefaultSDRInProduction,
		SDRInPreparation: DefaultSDRInPreparation,
		NRGoal:           DefaultNRGoal,
		MRRGoal:          DefaultMRRGoal,
		ManagerialGoal:   DefaultManagerialGoal,
		Consultants:      consultants,
		IsClosed:         false,
	}
}

// DefaultRoster é o roster usado quando nada foi persistido ainda
func DefaultRoster() []Salesperson {
	return []Salesperson{
		{ID: "sp1", Name: "FRANCISCO", Gender: GenderMale, Avatar: MaleAvatars[0]},
		{ID: "sp2", Name: "JOSÉ ROBERTO", Gender: GenderMale, Avatar: MaleAvatars[1]},
		{ID: "sp3", Name: "PEDRO", Gender: GenderMale, Avatar: MaleAvatars[2]},
	}
}

// DefaultLedger monta o ledger inicial: apenas o mês de now, pré-preenchido
// com metas e contadores de exemplo para cada consultor do roster padrão
func DefaultLedger(now time.Time, rng *rand.Rand) Ledger {
	period := PeriodFromTime(now)
	data := NewMonthlyData(period, nil)

	for _, sp := range DefaultRoster() {
		data.Consultants = append(data.Consultants, ConsultantData{
			SalespersonID:    sp.ID,
			SDRGoal:          10,
			LeadGoal:         15,
			InboundLeads:     rng.IntN(10),
			OutboundLeads:    rng.IntN(5),
			PartnerLeads:     rng.IntN(3),
			IALeads:          rng.IntN(4),
			MagoGoal:         3,
			MagoAchieved:     rng.IntN(4),
			FinancialGoalNR:  22200,
			NRSales:          rng.Float64() * 15000,
			FinancialGoalMRR: 2800,
			MRRSales:         rng.Float64() * 2000,
			ContractsSigned:  rng.IntN(5) + 1,
		})
	}

	return Ledger{period.Key(): data}
}
