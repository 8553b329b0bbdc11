package domain

import "sort"

// ConsultantData representa o desempenho de um consultor em um mês
type ConsultantData struct {
	SalespersonID    string  `json:"salespersonId"`
	SDRGoal          int     `json:"sdrGoal"`
	LeadGoal         int     `json:"leadGoal"`
	InboundLeads     int     `json:"inboundLeads"`
	OutboundLeads    int     `json:"outboundLeads"`
	PartnerLeads     int     `json:"partnerLeads"`
	IALeads          int     `json:"iaLeads"`
	MagoGoal         int     `json:"magoGoal"`
	MagoAchieved     int     `json:"magoAchieved"`
	FinancialGoalNR  float64 `json:"financialGoalNR"`
	NRSales          float64 `json:"nrSales"`
	FinancialGoalMRR float64 `json:"financialGoalMRR"`
	MRRSales         float64 `json:"mrrSales"`
	ContractsSigned  int     `json:"contractsSigned"`
}

// MonthlyData agrupa as metas do mês e o desempenho de cada consultor
type MonthlyData struct {
	Year             int              `json:"year"`
	Month            int              `json:"month"` // zero-based
	WorkingDays      int              `json:"workingDays"`
	SDRInProduction  int              `json:"sdrInProduction"`
	SDRInPreparation int              `json:"sdrInPreparation"`
	NRGoal           float64          `json:"nrGoal"`
	MRRGoal          float64          `json:"mrrGoal"`
	ManagerialGoal   float64          `json:"managerialGoal"`
	Consultants      []ConsultantData `json:"consultants"`
	IsClosed         bool             `json:"isClosed"`
}

// Ledger mapeia a chave do período para o registro mensal
type Ledger map[PeriodKey]*MonthlyData

func (m *MonthlyData) Period() Period {
	return Period{Year: m.Year, Month: m.Month}
}

func (m *MonthlyData) Key() PeriodKey {
	return m.Period().Key()
}

// Consultant retorna o registro do consultor no mês, ou nil
func (m *MonthlyData) Consultant(salespersonID string) *ConsultantData {
	for i := range m.Consultants {
		if m.Consultants[i].SalespersonID == salespersonID {
			return &m.Consultants[i]
		}
	}
	return nil
}

// HasConsultant indica se o mês já possui registro para o consultor
func (m *MonthlyData) HasConsultant(salespersonID string) bool {
	return m.Consultant(salespersonID) != nil
}

// RemoveConsultant remove o registro do consultor e informa se havia algum
func (m *MonthlyData) RemoveConsultant(salespersonID string) bool {
	kept := m.Consultants[:0]
	removed := false
	for _, c := range m.Consultants {
		if c.SalespersonID == salespersonID {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	m.Consultants = kept
	return removed
}

// Reconcile deixa o mês com exatamente um registro por consultor do roster:
// descarta ids fora do roster ou repetidos e cria registros zerados para os
// que faltam, na ordem do roster. Informa se algo mudou.
func (m *MonthlyData) Reconcile(roster []Salesperson) bool {
	live := make(map[string]bool, len(roster))
	for _, sp := range roster {
		live[sp.ID] = true
	}

	seen := make(map[string]bool, len(m.Consultants))
	kept := make([]ConsultantData, 0, len(roster))
	for _, c := range m.Consultants {
		if !live[c.SalespersonID] || seen[c.SalespersonID] {
			continue
		}
		seen[c.SalespersonID] = true
		kept = append(kept, c)
	}
	changed := len(kept) != len(m.Consultants)

	for _, sp := range roster {
		if !seen[sp.ID] {
			seen[sp.ID] = true
			kept = append(kept, NewConsultantData(sp.ID))
			changed = true
		}
	}

	m.Consultants = kept
	return changed
}

// Reconcile aplica MonthlyData.Reconcile em todos os períodos e devolve
// quantos foram alterados
func (l Ledger) Reconcile(roster []Salesperson) int {
	changed := 0
	for _, data := range l {
		if data.Reconcile(roster) {
			changed++
		}
	}
	return changed
}

func (m *MonthlyData) Clone() *MonthlyData {
	if m == nil {
		return nil
	}
	clone := *m
	clone.Consultants = make([]ConsultantData, len(m.Consultants))
	copy(clone.Consultants, m.Consultants)
	return &clone
}

func (l Ledger) Clone() Ledger {
	clone := make(Ledger, len(l))
	for key, data := range l {
		clone[key] = data.Clone()
	}
	return clone
}

// Keys retorna as chaves do ledger em ordem crescente
func (l Ledger) Keys() []PeriodKey {
	keys := make([]PeriodKey, 0, len(l))
	for key := range l {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
