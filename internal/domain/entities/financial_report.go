package entities

import "time"

const (
	OrganizacaoPositiva   = "Boa organização!"
	OrganizacaoMelhorar   = "Precisa economizar mais."
	ObjetivoNaoEspecifico = "Not specified"
)

// FinancialReport is the summary produced once every question was answered.
//
// JSON field names are consumed verbatim by the chat UI and chart rendering.
type FinancialReport struct {
	Renda       float64  `json:"renda"`
	Gastos      float64  `json:"gastos"`
	Dividas     float64  `json:"dividas"`
	Economia    float64  `json:"economia"`
	Objetivo    string   `json:"objetivo"`
	Resumo      string   `json:"resumo"`
	Organizacao string   `json:"organizacao"`
	Plano       []string `json:"plano"`
}

// SavingsSplit returns the savings slice and the remaining income, floored at 0.
func (r FinancialReport) SavingsSplit() (economia, outros float64) {
	outros = r.Renda - r.Economia
	if outros < 0 {
		outros = 0
	}
	return r.Economia, outros
}

// StoredReport is a FinancialReport persisted after a finished conversation.
//
// Storage model (DynamoDB):
//   - PK: id
type StoredReport struct {
	ID        string          `json:"id"`
	Report    FinancialReport `json:"report"`
	CreatedAt time.Time       `json:"created_at"`
}
