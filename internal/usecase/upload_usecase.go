package usecase

import (
	"context"
	"io"
	"time"

	"medassist/internal/domain/entity"
	"medassist/internal/domain/repository"
	"medassist/pkg/errors"
)

// FileStore is the remote blob store as the usecases need it.
type FileStore interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, userID string) (string, error)
	DownloadFile(ctx context.Context, fileURL string) ([]byte, string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}

type UploadUseCase struct {
	uploadRepo repository.UploadRepository
	fileStore  FileStore
}

func NewUploadUseCase(uploadRepo repository.UploadRepository, fileStore FileStore) *UploadUseCase {
	return &UploadUseCase{
		uploadRepo: uploadRepo,
		fileStore:  fileStore,
	}
}

type CreateUploadInput struct {
	UserID         string
	ConsultationID string
	FileName       string
	FileType       string
	File           io.Reader
}

func (uc *UploadUseCase) CreateUpload(ctx context.Context, input CreateUploadInput) (*entity.Upload, error) {
	url, err := uc.fileStore.UploadFile(ctx, input.File, input.FileType, input.UserID)
	if err != nil {
		return nil, errors.Internal("Failed to store file", err)
	}

	upload := &entity.Upload{
		UserID:         input.UserID,
		ConsultationID: input.ConsultationID,
		FileName:       input.FileName,
		FileType:       input.FileType,
		URL:            url,
		UploadedAt:     time.Now(),
	}

	if err := uc.uploadRepo.Create(ctx, upload); err != nil {
		return nil, err
	}

	return upload, nil
}

func (uc *UploadUseCase) GetUpload(ctx context.Context, userID, id string) (*entity.Upload, error) {
	upload, err := uc.uploadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upload.UserID != userID {
		return nil, errors.Forbidden("You do not have access to this upload", nil)
	}

	return upload, nil
}

func (uc *UploadUseCase) ListByConsultation(ctx context.Context, consultationID string) ([]*entity.Upload, error) {
	return uc.uploadRepo.ListByConsultation(ctx, consultationID)
}

func (uc *UploadUseCase) DeleteUpload(ctx context.Context, userID, id string) error {
	upload, err := uc.uploadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if upload.UserID != userID {
		return errors.Forbidden("You do not have access to this upload", nil)
	}

	if err := uc.fileStore.DeleteFile(ctx, upload.URL); err != nil {
		return errors.Internal("Failed to delete stored file", err)
	}

	return uc.uploadRepo.Delete(ctx, id)
}
