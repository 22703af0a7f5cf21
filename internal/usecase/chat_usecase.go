package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"salomao_ai/internal/domain/entities"
	"salomao_ai/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// persistTimeout bounds the report write so storage retries never delay the reply.
const persistTimeout = 3 * time.Second

// ChatResult is the outcome of one conversational turn.
//
// When Finished is false, Reply holds the next question. Otherwise Report is
// set and ReportID is filled only if the report was persisted.
type ChatResult struct {
	Finished          bool
	Reply             string
	NextQuestionIndex int
	Report            entities.FinancialReport
	ReportID          string
}

// IChatUseCase drives the guided financial conversation.
//
// The conversation is a pure function of the history replayed by the client:
//   - POST /chat (message + history) => HandleMessage()

type IChatUseCase interface {
	HandleMessage(ctx context.Context, message string, history []entities.Message) (ChatResult, error)
}

type ChatUseCase struct {
	repo interfaces.IReportRepository
}

var _ IChatUseCase = (*ChatUseCase)(nil)

// NewChatUseCase builds the use case. repo may be nil, in which case finished
// reports are returned but not stored.
func NewChatUseCase(repo interfaces.IReportRepository) *ChatUseCase {
	return &ChatUseCase{repo: repo}
}

func (u *ChatUseCase) HandleMessage(ctx context.Context, message string, history []entities.Message) (ChatResult, error) {
	if err := validateTurn(message, history); err != nil {
		log.Printf("[chat][usecase] rejected turn history_len=%d err=%v", len(history), err)
		return ChatResult{}, err
	}

	full := make([]entities.Message, 0, len(history)+1)
	full = append(full, history...)
	full = append(full, entities.Message{Role: entities.RoleUser, Content: message})

	step := ResolveStep(full)
	if !step.Finished {
		log.Printf("[chat][usecase] next question index=%d history_len=%d", step.NextQuestionIndex, len(full))
		return ChatResult{Reply: step.Question(), NextQuestionIndex: step.NextQuestionIndex}, nil
	}

	report, err := BuildReport(full)
	if err != nil {
		return ChatResult{}, err
	}
	log.Printf("[chat][usecase] conversation finished renda=%.2f gastos=%.2f economia=%.2f", report.Renda, report.Gastos, report.Economia)

	result := ChatResult{Finished: true, Report: report}
	if u.repo == nil {
		return result, nil
	}

	persistCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	stored, err := u.repo.Create(persistCtx, entities.StoredReport{
		ID:        uuid.NewString(),
		Report:    report,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// The user still gets the report; storage is best effort.
		log.Printf("[chat][usecase] report persist failed err=%v", err)
		return result, nil
	}
	result.ReportID = stored.ID
	log.Printf("[chat][usecase] report persisted report_id=%s", stored.ID)
	return result, nil
}

func validateTurn(message string, history []entities.Message) error {
	if history == nil {
		return fmt.Errorf("%w: history is required", ErrInvalidInput)
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	for i, m := range history {
		if !m.Role.IsValid() {
			return fmt.Errorf("%w: history[%d] has unknown role %q", ErrInvalidInput, i, m.Role)
		}
	}
	return nil
}
