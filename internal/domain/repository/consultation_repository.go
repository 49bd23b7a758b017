package repository

import (
	"context"

	"medassist/internal/domain/entity"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	GetByID(ctx context.Context, id string) (*entity.Consultation, error)
	ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Consultation, int64, error)
	Update(ctx context.Context, consultation *entity.Consultation) error
	Delete(ctx context.Context, id string) error

	// Chat turns attached to a consultation live in a subcollection.
	AppendMessage(ctx context.Context, consultationID string, message *entity.Message) error
	ListMessages(ctx context.Context, consultationID string, limit int) ([]*entity.Message, error)
}
