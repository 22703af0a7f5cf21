package handlers

import (
	"errors"
	"log"
	"net/http"
	request "salomao_ai/internal/adapter/http/dto/request"
	response "salomao_ai/internal/adapter/http/dto/response"
	"salomao_ai/internal/usecase"
	"salomao_ai/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid chat payload", http.StatusBadRequest)
)

// ChatHandler handles the guided financial conversation.

type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// Chat answers one conversational turn.
//
// The client replays its whole history on every request; the reply is either
// the next question or the finished report.
func (h *ChatHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[chat][handler] invalid payload err=%v", err)
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.HandleMessage(c.Request.Context(), payload.Message, payload.ToHistory())
	if err != nil {
		log.Printf("[chat][handler] turn failed history_len=%d err=%v", len(payload.History), err)
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChatResult(result))
}

// Questions lists the greeting and the ordered question set.
func (h *ChatHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, response.QuestionsResponse{
		Greeting:  usecase.Greeting,
		Questions: usecase.Questions(),
	})
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotReady):
		return pkg.NewDomainErrorSimple("CONVERSATION_NOT_READY", "Conversation is not finished", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
