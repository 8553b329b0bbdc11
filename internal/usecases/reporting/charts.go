package reporting

import (
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
)

// Nomes das fatias exibidas nos gráficos
const (
	LeadSourceInbound  = "Inbound"
	LeadSourceOutbound = "Outbound"
	LeadSourcePartner  = "Parceiros"
	LeadSourceIA       = "IA"

	MonthEndResult    = "Resultado"
	MonthEndRemaining = "Meta Restante"
)

// Charts monta as séries dos gráficos do painel; fatias zeradas são descartadas,
// exceto na taxa de fechamento, que mostra todos os consultores
func Charts(roster []domain.Salesperson, data *domain.MonthlyData) domain.ChartSeries {
	series := domain.ChartSeries{
		LeadDistribution: []domain.ChartPoint{},
		LeadSource:       []domain.ChartPoint{},
		ClosingRate:      []domain.ChartPoint{},
		MonthEnd:         []domain.ChartPoint{},
	}
	if data == nil {
		return series
	}

	for _, sp := range roster {
		c := data.Consultant(sp.ID)

		var received int
		var rate float64
		if c != nil {
			received = ReceivedLeads(*c)
			rate = ClosingRate(*c)
		}

		if received > 0 {
			series.LeadDistribution = append(series.LeadDistribution, domain.ChartPoint{Name: sp.Name, Value: float64(received)})
		}
		series.ClosingRate = append(series.ClosingRate, domain.ChartPoint{Name: sp.Name, Value: rate})
	}

	totals := Totals(data)
	series.LeadSource = nonZero(
		domain.ChartPoint{Name: LeadSourceInbound, Value: float64(totals.InboundLeads)},
		domain.ChartPoint{Name: LeadSourceOutbound, Value: float64(totals.OutboundLeads)},
		domain.ChartPoint{Name: LeadSourcePartner, Value: float64(totals.PartnerLeads)},
		domain.ChartPoint{Name: LeadSourceIA, Value: float64(totals.IALeads)},
	)

	financial := Financial(data)
	series.MonthEnd = nonZero(
		domain.ChartPoint{Name: MonthEndResult, Value: financial.TotalSales},
		domain.ChartPoint{Name: MonthEndRemaining, Value: financial.RemainingGoal},
	)

	return series
}

func nonZero(points ...domain.ChartPoint) []domain.ChartPoint {
	out := make([]domain.ChartPoint, 0, len(points))
	for _, p := range points {
		if p.Value > 0 {
			out = append(out, p)
		}
	}
	return out
}
