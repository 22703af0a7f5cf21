package response

import (
	"salomao_ai/internal/domain/entities"
	"salomao_ai/internal/usecase"
)

// ChatResponse is either {finished:false, reply} or {finished:true, data}.
type ChatResponse struct {
	Finished bool                      `json:"finished"`
	Reply    string                    `json:"reply,omitempty"`
	Data     *entities.FinancialReport `json:"data,omitempty"`
	ReportID string                    `json:"report_id,omitempty"`
}

func FromChatResult(r usecase.ChatResult) ChatResponse {
	if !r.Finished {
		return ChatResponse{Reply: r.Reply}
	}
	report := r.Report
	return ChatResponse{Finished: true, Data: &report, ReportID: r.ReportID}
}

type QuestionsResponse struct {
	Greeting  string   `json:"greeting"`
	Questions []string `json:"questions"`
}
