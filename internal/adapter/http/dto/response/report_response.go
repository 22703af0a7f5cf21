package response

import (
	"salomao_ai/internal/domain/entities"
	"time"
)

type SavingsPieResponse struct {
	Economia float64 `json:"economia"`
	Outros   float64 `json:"outros"`
}

type BarSeriesResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type ChartsResponse struct {
	Economia SavingsPieResponse `json:"economia"`
	Barras   BarSeriesResponse  `json:"barras"`
}

type ReportResponse struct {
	ReportID  string                   `json:"report_id"`
	Data      entities.FinancialReport `json:"data"`
	Graficos  ChartsResponse           `json:"graficos"`
	CreatedAt time.Time                `json:"created_at"`
}

func FromStoredReport(s entities.StoredReport) ReportResponse {
	economia, outros := s.Report.SavingsSplit()
	return ReportResponse{
		ReportID: s.ID,
		Data:     s.Report,
		Graficos: ChartsResponse{
			Economia: SavingsPieResponse{Economia: economia, Outros: outros},
			Barras: BarSeriesResponse{
				Labels: []string{"Renda", "Gastos", "Dívidas", "Economia"},
				Values: []float64{s.Report.Renda, s.Report.Gastos, s.Report.Dividas, s.Report.Economia},
			},
		},
		CreatedAt: s.CreatedAt,
	}
}
