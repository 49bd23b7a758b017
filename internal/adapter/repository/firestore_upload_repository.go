package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"medassist/internal/domain/entity"
	"medassist/internal/domain/repository"
	"medassist/pkg/errors"

	"github.com/google/uuid"
)

type firestoreUploadRepository struct {
	client *firestore.Client
}

func NewFirestoreUploadRepository(client *firestore.Client) repository.UploadRepository {
	return &firestoreUploadRepository{
		client: client,
	}
}

func (r *firestoreUploadRepository) Create(ctx context.Context, upload *entity.Upload) error {
	if upload.ID == "" {
		upload.ID = uuid.New().String()
	}
	if upload.UploadedAt.IsZero() {
		upload.UploadedAt = time.Now()
	}

	_, err := r.client.Collection(entity.UploadsCollection).Doc(upload.ID).Set(ctx, upload)
	if err != nil {
		return errors.Internal("Failed to create upload record", err)
	}

	return nil
}

func (r *firestoreUploadRepository) GetByID(ctx context.Context, id string) (*entity.Upload, error) {
	doc, err := r.client.Collection(entity.UploadsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Upload", err)
		}
		return nil, errors.Internal("Failed to get upload record", err)
	}

	var upload entity.Upload
	if err := doc.DataTo(&upload); err != nil {
		return nil, errors.Internal("Failed to parse upload data", err)
	}

	return &upload, nil
}

func (r *firestoreUploadRepository) ListByConsultation(ctx context.Context, consultationID string) ([]*entity.Upload, error) {
	query := r.client.Collection(entity.UploadsCollection).
		Where("consultationId", "==", consultationID).
		OrderBy("uploadedAt", firestore.Desc)

	iter := query.Documents(ctx)
	var uploads []*entity.Upload

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate uploads", err)
		}

		var upload entity.Upload
		if err := doc.DataTo(&upload); err != nil {
			return nil, errors.Internal("Failed to parse upload data", err)
		}
		uploads = append(uploads, &upload)
	}

	return uploads, nil
}

func (r *firestoreUploadRepository) Update(ctx context.Context, upload *entity.Upload) error {
	_, err := r.client.Collection(entity.UploadsCollection).Doc(upload.ID).Set(ctx, upload)
	if err != nil {
		return errors.Internal("Failed to update upload record", err)
	}

	return nil
}

func (r *firestoreUploadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(entity.UploadsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete upload record", err)
	}

	return nil
}
