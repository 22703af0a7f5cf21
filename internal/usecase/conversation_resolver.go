package usecase

import "salomao_ai/internal/domain/entities"

var questionSet = [...]string{
	"Como está sua situação financeira?",
	"Qual sua renda mensal?",
	"Quanto gasta por mês?",
	"Tem dívidas? Se sim quanto?",
	"Consegue guardar quanto por mês?",
	"Qual seu objetivo financeiro?",
}

// Greeting is shown by clients before the first exchange. It is not part of
// the tracked history.
const Greeting = "Olá! Eu sou o Salomão AI, seu assistente financeiro. Vamos começar?"

// Questions returns a copy of the ordered question set.
func Questions() []string {
	out := make([]string, len(questionSet))
	copy(out, questionSet[:])
	return out
}

// Step is the conversation position derived from a history.
//
// Either Finished is true and the report can be built, or NextQuestionIndex
// points at the question to ask.
type Step struct {
	Finished          bool
	NextQuestionIndex int
}

// Question returns the text of the next question, or "" once finished.
func (s Step) Question() string {
	if s.Finished {
		return ""
	}
	return questionSet[s.NextQuestionIndex]
}

// StepForCount maps the number of assistant turns already issued to a Step.
// Counts past the question set are treated as finished.
func StepForCount(answered int) Step {
	if answered >= len(questionSet) {
		return Step{Finished: true}
	}
	if answered < 0 {
		answered = 0
	}
	return Step{NextQuestionIndex: answered}
}

// ResolveStep derives the conversation position from history. Only the number
// of assistant messages matters; message contents are ignored.
func ResolveStep(history []entities.Message) Step {
	return StepForCount(entities.CountAssistant(history))
}
