package domain

// ConsultantMetrics são os campos derivados de um consultor em um mês
type ConsultantMetrics struct {
	ReceivedLeads    int     `json:"receivedLeads"`
	LeadGoalAchieved float64 `json:"leadGoalAchieved"` // razão, não porcentagem
	ScheduledPerDay  float64 `json:"scheduledPerDay"`
	ResultNR         float64 `json:"resultNR"`
	ResultMRR        float64 `json:"resultMRR"`
	ClosingRate      float64 `json:"closingRate"` // porcentagem com 2 casas
}

// PerformanceTotals soma os campos aditivos de todos os consultores do mês
type PerformanceTotals struct {
	SDRGoal               int     `json:"sdrGoal"`
	LeadGoal              int     `json:"leadGoal"`
	ReceivedLeads         int     `json:"receivedLeads"`
	InboundLeads          int     `json:"inboundLeads"`
	OutboundLeads         int     `json:"outboundLeads"`
	PartnerLeads          int     `json:"partnerLeads"`
	IALeads               int     `json:"iaLeads"`
	MagoGoal              int     `json:"magoGoal"`
	MagoAchieved          int     `json:"magoAchieved"`
	ContractsSigned       int     `json:"contractsSigned"`
	FinancialGoalNR       float64 `json:"financialGoalNR"`
	NRSales               float64 `json:"nrSales"`
	ResultNR              float64 `json:"resultNR"`
	FinancialGoalMRR      float64 `json:"financialGoalMRR"`
	MRRSales              float64 `json:"mrrSales"`
	ResultMRR             float64 `json:"resultMRR"`
	TotalLeadGoalAchieved float64 `json:"totalLeadGoalAchieved"`
	TotalScheduledPerDay  float64 `json:"totalScheduledPerDay"`
}

// SalesSummary compara o vendido no mês com as metas da organização
type SalesSummary struct {
	TotalNRSales         float64 `json:"totalNRSales"`
	TotalMRRSales        float64 `json:"totalMRRSales"`
	DifferenceNR         float64 `json:"differenceNR"`
	DifferenceMRR        float64 `json:"differenceMRR"`
	DifferenceManagerial float64 `json:"differenceManagerial"`
}

// FinancialSummary é o fechamento do mês: meta financeira x resultado
type FinancialSummary struct {
	TotalSales    float64 `json:"totalSales"`
	TotalGoal     float64 `json:"totalGoal"`
	RemainingGoal float64 `json:"remainingGoal"`
	Percentage    float64 `json:"percentage"`
}

// ChartPoint é um item nomeado de série de gráfico
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ChartSeries struct {
	LeadDistribution []ChartPoint `json:"leadDistribution"`
	LeadSource       []ChartPoint `json:"leadSource"`
	ClosingRate      []ChartPoint `json:"closingRate"`
	MonthEnd         []ChartPoint `json:"monthEnd"`
}

// ConsultantRow é a linha da tabela de desempenho: roster + dados do mês + derivados
type ConsultantRow struct {
	Salesperson
	ConsultantData
	ConsultantMetrics
	LeadGoalAchievedPercent int `json:"leadGoalAchievedPercent"`
	ProgressWidth           int `json:"progressWidth"`
}

// DashboardView agrega tudo o que o painel exibe para um período
type DashboardView struct {
	Key          PeriodKey         `json:"key"`
	Persisted    bool              `json:"persisted"`
	Month        *MonthlyData      `json:"month"`
	Rows         []ConsultantRow   `json:"rows"`
	Totals       PerformanceTotals `json:"totals"`
	Sales        SalesSummary      `json:"sales"`
	Financial    FinancialSummary  `json:"financial"`
	Charts       ChartSeries       `json:"charts"`
	Display      map[string]string `json:"display"`
	TotalPercent int               `json:"totalLeadGoalAchievedPercent"`
}
