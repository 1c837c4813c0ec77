package repo

import (
	"context"

	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	PromoteToAdmin(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
