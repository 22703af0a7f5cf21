package response

import (
	"encoding/json"
	"testing"

	"salomao_ai/internal/domain/entities"
	"salomao_ai/internal/usecase"
)

func TestFromChatResult(t *testing.T) {
	t.Run("not finished", func(t *testing.T) {
		raw, _ := json.Marshal(FromChatResult(usecase.ChatResult{Reply: "Qual sua renda mensal?", NextQuestionIndex: 1}))
		if string(raw) != `{"finished":false,"reply":"Qual sua renda mensal?"}` {
			t.Fatalf("unexpected body: %s", raw)
		}
	})

	t.Run("finished", func(t *testing.T) {
		res := FromChatResult(usecase.ChatResult{
			Finished: true,
			Report:   entities.FinancialReport{Renda: 3000, Objetivo: "Comprar uma casa", Plano: []string{"a"}},
			ReportID: "rep-1",
		})
		if !res.Finished || res.Data == nil || res.Data.Renda != 3000 || res.ReportID != "rep-1" {
			t.Fatalf("unexpected response: %+v", res)
		}
		if res.Reply != "" {
			t.Fatalf("unexpected reply: %q", res.Reply)
		}
	})
}
