package repository

import (
	"context"

	"medassist/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUID(ctx context.Context, uid string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
