package usecase

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"salomao_ai/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrNotReady = errors.New("conversation not ready for report")

// Positions of each answer among the user messages. Position 0 is the
// free-form opening answer and feeds no field.
const (
	answerRenda = iota + 1
	answerGastos
	answerDividas
	answerEconomia
	answerObjetivo
)

var planoPadrao = [...]string{
	"Controlar gastos mensais",
	"Criar reserva de emergência",
	"Planejar objetivos financeiros",
}

// BuildReport turns a finished conversation into a FinancialReport.
//
// It returns ErrNotReady while ResolveStep still has questions to ask. Answers
// missing from a finished history read as 0, and a missing goal reads as
// entities.ObjetivoNaoEspecifico.
func BuildReport(history []entities.Message) (entities.FinancialReport, error) {
	if !ResolveStep(history).Finished {
		return entities.FinancialReport{}, ErrNotReady
	}

	answers := entities.UserContents(history)
	r := entities.FinancialReport{
		Renda:    ExtractNumber(answerAt(answers, answerRenda)),
		Gastos:   ExtractNumber(answerAt(answers, answerGastos)),
		Dividas:  ExtractNumber(answerAt(answers, answerDividas)),
		Economia: ExtractNumber(answerAt(answers, answerEconomia)),
		Objetivo: answerAt(answers, answerObjetivo),
	}
	if strings.TrimSpace(r.Objetivo) == "" {
		r.Objetivo = entities.ObjetivoNaoEspecifico
	}

	r.Resumo = fmt.Sprintf("Renda: R$ %s, Gastos: R$ %s, Economia: R$ %s",
		formatAmount(r.Renda), formatAmount(r.Gastos), formatAmount(r.Economia))

	if r.Economia > 0 {
		r.Organizacao = entities.OrganizacaoPositiva
	} else {
		r.Organizacao = entities.OrganizacaoMelhorar
	}

	// The plan is the same for everyone regardless of the numbers.
	r.Plano = append([]string(nil), planoPadrao[:]...)
	return r, nil
}

func answerAt(answers []string, i int) string {
	if i < len(answers) {
		return answers[i]
	}
	return ""
}

// exponentThreshold is where JS number printing switches to exponent form.
const exponentThreshold = 1e21

// formatAmount renders an amount the way a JS template literal prints a
// number: 3000, 1234.56, 1e+21.
func formatAmount(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "0"
	}
	if math.Abs(v) >= exponentThreshold {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}
