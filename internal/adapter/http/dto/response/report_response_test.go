package response

import (
	"testing"
	"time"

	"salomao_ai/internal/domain/entities"
)

func TestFromStoredReport(t *testing.T) {
	now := time.Now().UTC()
	res := FromStoredReport(entities.StoredReport{
		ID:        "rep-1",
		Report:    entities.FinancialReport{Renda: 3000, Gastos: 2000, Dividas: 1000, Economia: 500},
		CreatedAt: now,
	})

	if res.ReportID != "rep-1" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Graficos.Economia.Economia != 500 || res.Graficos.Economia.Outros != 2500 {
		t.Fatalf("unexpected pie: %+v", res.Graficos.Economia)
	}
	if len(res.Graficos.Barras.Values) != 4 || res.Graficos.Barras.Values[2] != 1000 {
		t.Fatalf("unexpected bars: %+v", res.Graficos.Barras)
	}
}
