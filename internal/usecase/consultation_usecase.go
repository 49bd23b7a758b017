package usecase

import (
	"context"

	"medassist/internal/domain/entity"
	"medassist/internal/domain/repository"
	"medassist/pkg/errors"
)

type ConsultationUseCase struct {
	consultationRepo repository.ConsultationRepository
}

func NewConsultationUseCase(consultationRepo repository.ConsultationRepository) *ConsultationUseCase {
	return &ConsultationUseCase{
		consultationRepo: consultationRepo,
	}
}

type CreateConsultationInput struct {
	Title    string
	Symptoms string
}

func (uc *ConsultationUseCase) CreateConsultation(ctx context.Context, userID string, input CreateConsultationInput) (*entity.Consultation, error) {
	consultation := &entity.Consultation{
		UserID:   userID,
		Title:    input.Title,
		Status:   entity.ConsultationOngoing,
		Symptoms: input.Symptoms,
	}

	if err := uc.consultationRepo.Create(ctx, consultation); err != nil {
		return nil, err
	}

	return consultation, nil
}

func (uc *ConsultationUseCase) GetConsultation(ctx context.Context, userID, id string) (*entity.Consultation, error) {
	consultation, err := uc.consultationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if consultation.UserID != userID {
		return nil, errors.Forbidden("You do not have access to this consultation", nil)
	}

	return consultation, nil
}

func (uc *ConsultationUseCase) ListConsultations(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Consultation, int64, error) {
	return uc.consultationRepo.ListByUser(ctx, userID, status, limit, offset)
}

type UpdateConsultationInput struct {
	Status          string
	Diagnosis       string
	Recommendations string
}

// UpdateConsultation applies the caller's status flip and advisory
// fields. No transition rules are enforced on the two-state flag.
func (uc *ConsultationUseCase) UpdateConsultation(ctx context.Context, userID, id string, input UpdateConsultationInput) (*entity.Consultation, error) {
	consultation, err := uc.GetConsultation(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Status != "" {
		if input.Status != entity.ConsultationOngoing && input.Status != entity.ConsultationCompleted {
			return nil, errors.BadRequest("Status must be ongoing or completed", nil)
		}
		consultation.Status = input.Status
	}
	if input.Diagnosis != "" {
		consultation.Diagnosis = input.Diagnosis
	}
	if input.Recommendations != "" {
		consultation.Recommendations = input.Recommendations
	}

	if err := uc.consultationRepo.Update(ctx, consultation); err != nil {
		return nil, err
	}

	return consultation, nil
}

func (uc *ConsultationUseCase) DeleteConsultation(ctx context.Context, userID, id string) error {
	if _, err := uc.GetConsultation(ctx, userID, id); err != nil {
		return err
	}

	return uc.consultationRepo.Delete(ctx, id)
}
