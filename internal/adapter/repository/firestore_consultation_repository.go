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

type firestoreConsultationRepository struct {
	client *firestore.Client
}

func NewFirestoreConsultationRepository(client *firestore.Client) repository.ConsultationRepository {
	return &firestoreConsultationRepository{
		client: client,
	}
}

func (r *firestoreConsultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	if consultation.ID == "" {
		consultation.ID = uuid.New().String()
	}
	if consultation.Status == "" {
		consultation.Status = entity.ConsultationOngoing
	}

	now := time.Now()
	if consultation.Date.IsZero() {
		consultation.Date = now
	}
	consultation.CreatedAt = now
	consultation.UpdatedAt = now

	_, err := r.client.Collection(entity.ConsultationsCollection).Doc(consultation.ID).Set(ctx, consultation)
	if err != nil {
		return errors.Internal("Failed to create consultation", err)
	}

	return nil
}

func (r *firestoreConsultationRepository) GetByID(ctx context.Context, id string) (*entity.Consultation, error) {
	doc, err := r.client.Collection(entity.ConsultationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Consultation", err)
		}
		return nil, errors.Internal("Failed to get consultation", err)
	}

	var consultation entity.Consultation
	if err := doc.DataTo(&consultation); err != nil {
		return nil, errors.Internal("Failed to parse consultation data", err)
	}

	return &consultation, nil
}

func (r *firestoreConsultationRepository) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Consultation, int64, error) {
	query := r.client.Collection(entity.ConsultationsCollection).
		Where("userId", "==", userID).
		OrderBy("date", firestore.Desc)

	if status != "" {
		query = query.Where("status", "==", status)
	}

	// Get total count (this is expensive in Firestore but necessary for pagination)
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count consultations", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var consultations []*entity.Consultation

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate consultations", err)
		}

		var consultation entity.Consultation
		if err := doc.DataTo(&consultation); err != nil {
			return nil, 0, errors.Internal("Failed to parse consultation data", err)
		}
		consultations = append(consultations, &consultation)
	}

	return consultations, total, nil
}

func (r *firestoreConsultationRepository) Update(ctx context.Context, consultation *entity.Consultation) error {
	consultation.UpdatedAt = time.Now()

	_, err := r.client.Collection(entity.ConsultationsCollection).Doc(consultation.ID).Set(ctx, consultation)
	if err != nil {
		return errors.Internal("Failed to update consultation", err)
	}

	return nil
}

func (r *firestoreConsultationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(entity.ConsultationsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete consultation", err)
	}

	return nil
}

func (r *firestoreConsultationRepository) AppendMessage(ctx context.Context, consultationID string, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	_, err := r.client.Collection(entity.ConsultationsCollection).
		Doc(consultationID).
		Collection(entity.MessagesSubcollection).
		Doc(message.ID).
		Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to append message", err)
	}

	return nil
}

func (r *firestoreConsultationRepository) ListMessages(ctx context.Context, consultationID string, limit int) ([]*entity.Message, error) {
	query := r.client.Collection(entity.ConsultationsCollection).
		Doc(consultationID).
		Collection(entity.MessagesSubcollection).
		OrderBy("timestamp", firestore.Asc)

	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}
