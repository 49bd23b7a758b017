package usecase

import (
	"context"
	"strings"
	"time"

	"medassist/internal/domain/entity"
	"medassist/internal/domain/repository"
	"medassist/internal/infrastructure/genai"
	"medassist/pkg/errors"
	"medassist/pkg/logger"

	"github.com/google/uuid"
)

// chatInstruction frames every chat turn. Each call is independent; no
// conversation history is sent to the service.
const chatInstruction = `You are a helpful medical assistant. A patient has written to you. ` +
	`Ask about their symptoms if they are unclear, give a preliminary analysis of what they describe, ` +
	`recommend appropriate treatment options, give advice for recovery, ` +
	`and always remind them to consult a healthcare professional for a proper diagnosis.`

type ChatUseCase struct {
	generator        genai.Generator
	consultationRepo repository.ConsultationRepository
}

func NewChatUseCase(generator genai.Generator, consultationRepo repository.ConsultationRepository) *ChatUseCase {
	return &ChatUseCase{
		generator:        generator,
		consultationRepo: consultationRepo,
	}
}

type SendMessageInput struct {
	UserID         string
	Content        string
	ConsultationID string
}

// SendMessage submits one chat turn to the generative service and returns
// the assistant's reply. A failed or empty generation surfaces as
// GENERATION_FAILED; nothing is retried.
func (uc *ChatUseCase) SendMessage(ctx context.Context, input SendMessageInput) (*entity.Message, error) {
	prompt := chatInstruction + "\n\nPatient message: " + input.Content

	text, err := uc.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.LogAdapterError("chat", input.Content, err)
		return nil, errors.GenerationFailed("Failed to generate response", err)
	}

	content := strings.TrimSpace(text)
	if content == "" {
		logger.LogAdapterError("chat", input.Content, nil)
		return nil, errors.GenerationFailed("Generation returned empty content", nil)
	}

	reply := &entity.Message{
		ID:        uuid.New().String(),
		Role:      entity.RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	}

	if input.ConsultationID != "" {
		uc.persistTurn(ctx, input, reply)
	}

	return reply, nil
}

// GetHistory returns the persisted turns of a consultation.
func (uc *ChatUseCase) GetHistory(ctx context.Context, userID, consultationID string, limit int) ([]*entity.Message, error) {
	consultation, err := uc.consultationRepo.GetByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation.UserID != userID {
		return nil, errors.Forbidden("You do not have access to this consultation", nil)
	}

	return uc.consultationRepo.ListMessages(ctx, consultationID, limit)
}

// persistTurn stores the user/assistant pair on the consultation. A
// persistence failure must not cost the caller an already-generated
// reply, so it is logged and swallowed.
func (uc *ChatUseCase) persistTurn(ctx context.Context, input SendMessageInput, reply *entity.Message) {
	consultation, err := uc.consultationRepo.GetByID(ctx, input.ConsultationID)
	if err != nil || consultation.UserID != input.UserID {
		logger.Warn("Skipping chat persistence: consultation=%s, error=%v", input.ConsultationID, err)
		return
	}

	userMessage := &entity.Message{
		ID:        uuid.New().String(),
		Role:      entity.RoleUser,
		Content:   input.Content,
		Timestamp: reply.Timestamp,
	}

	if err := uc.consultationRepo.AppendMessage(ctx, input.ConsultationID, userMessage); err != nil {
		logger.Warn("Failed to persist user message: consultation=%s, error=%v", input.ConsultationID, err)
		return
	}
	if err := uc.consultationRepo.AppendMessage(ctx, input.ConsultationID, reply); err != nil {
		logger.Warn("Failed to persist assistant message: consultation=%s, error=%v", input.ConsultationID, err)
	}
}
