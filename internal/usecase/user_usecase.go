package usecase

import (
	"context"

	"medassist/internal/domain/entity"
	"medassist/internal/domain/repository"
	"medassist/internal/infrastructure/firebase"
	"medassist/pkg/errors"
	"medassist/pkg/logger"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	authClient *firebase.FirebaseAuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, authClient *firebase.FirebaseAuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

// GetProfile returns the user's record, creating an empty one on first
// request. Account creation itself happens in the external auth flow.
func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	email, emailErr := uc.authClient.Email(ctx, uid)
	if emailErr != nil {
		logger.Warn("Failed to look up email for new profile: uid=%s, error=%v", uid, emailErr)
	}

	user = &entity.User{
		UID:   uid,
		Email: email,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type UpdateProfileInput struct {
	Name      string
	Age       int
	BloodType string
	Allergies []string
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.BloodType != "" {
		user.BloodType = input.BloodType
	}
	if input.Allergies != nil {
		user.Allergies = input.Allergies
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
