package repo

import (
	"context"

	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/domain"
)

type CartRepository interface {
	Create(ctx context.Context, item *domain.CartItem) error
	GetByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}
