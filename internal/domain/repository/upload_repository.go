package repository

import (
	"context"

	"medassist/internal/domain/entity"
)

type UploadRepository interface {
	Create(ctx context.Context, upload *entity.Upload) error
	GetByID(ctx context.Context, id string) (*entity.Upload, error)
	ListByConsultation(ctx context.Context, consultationID string) ([]*entity.Upload, error)
	Update(ctx context.Context, upload *entity.Upload) error
	Delete(ctx context.Context, id string) error
}
