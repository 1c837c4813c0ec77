package repo

import (
	"context"

	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/domain"
)

type RoleAuditRepository interface {
	Create(ctx context.Context, audit *domain.RoleAudit) error
	GetByUserID(ctx context.Context, userID string, limit int) ([]domain.RoleAudit, error)
}
