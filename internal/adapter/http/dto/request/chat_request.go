package request

import "salomao_ai/internal/domain/entities"

type MessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload of one conversational turn.
//
// `history` holds every message exchanged so far, greeting excluded, and must
// be present even when empty. The newest user utterance goes in `message`.
type ChatRequest struct {
	Message string           `json:"message" binding:"required"`
	History []MessageRequest `json:"history" binding:"required"`
}

// ToHistory converts the payload history. A missing history stays nil so the
// use case can reject it.
func (r ChatRequest) ToHistory() []entities.Message {
	if r.History == nil {
		return nil
	}
	out := make([]entities.Message, 0, len(r.History))
	for _, m := range r.History {
		out = append(out, entities.Message{Role: entities.Role(m.Role), Content: m.Content})
	}
	return out
}
