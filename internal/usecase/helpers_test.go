package usecase

import "salomao_ai/internal/domain/entities"

// interleave builds a history where every user answer is followed by the
// assistant question that came after it.
func interleave(answers ...string) []entities.Message {
	history := make([]entities.Message, 0, len(answers)*2)
	for i, a := range answers {
		history = append(history,
			entities.Message{Role: entities.RoleUser, Content: a},
			entities.Message{Role: entities.RoleAssistant, Content: questionSet[i%len(questionSet)]},
		)
	}
	return history
}

func completeAnswers() []string {
	return []string{"Estou preocupado", "3000", "2000", "1000", "500", "Comprar uma casa"}
}
