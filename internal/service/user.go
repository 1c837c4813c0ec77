package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/domain"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/repo"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/store/mongo"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo  repo.UserRepository
	auditRepo repo.RoleAuditRepository
	logger    *zap.SugaredLogger
}

func NewUserService(
	userRepo repo.UserRepository,
	auditRepo repo.RoleAuditRepository,
	logger *zap.SugaredLogger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// CreateIfAbsent inserts the user unless the email is already taken.
// The existence probe and the insert are two separate operations, so two
// concurrent sign-ups with the same email can both get through; that race
// is an accepted part of the contract.
func (s *UserService) CreateIfAbsent(ctx context.Context, user *domain.User) (bool, error) {
	_, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, mongo.ErrNotFound) {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, err
	}

	s.logger.Infow("user created", "email", user.Email, "user_id", user.ID.Hex())

	return true, nil
}

// IsAdmin re-reads the current role on every call; a demoted admin loses
// access on the very next request.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return user.IsAdmin(), nil
}

func (s *UserService) PromoteToAdmin(ctx context.Context, id, changedBy string) (*domain.User, error) {
	before, err := s.userRepo.PromoteToAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	audit := &domain.RoleAudit{
		UserID:    id,
		Email:     before.Email,
		EventType: domain.EventUserPromoted,
		OldRole:   before.Role,
		NewRole:   domain.RoleAdmin,
		ChangedBy: changedBy,
	}
	if err := s.auditRepo.Create(ctx, audit); err != nil {
		// the promotion already happened; losing the audit record is not
		// worth failing the request over
		s.logger.Errorw("failed to record role audit", "user_id", id, "error", err)
	}

	s.logger.Infow("user promoted to admin", "user_id", id, "email", before.Email, "changed_by", changedBy)

	return before, nil
}

func (s *UserService) Delete(ctx context.Context, id, changedBy string) (*domain.User, error) {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	audit := &domain.RoleAudit{
		UserID:    id,
		Email:     deleted.Email,
		EventType: domain.EventUserDeleted,
		OldRole:   deleted.Role,
		ChangedBy: changedBy,
	}
	if err := s.auditRepo.Create(ctx, audit); err != nil {
		s.logger.Errorw("failed to record role audit", "user_id", id, "error", err)
	}

	s.logger.Infow("user deleted", "user_id", id, "email", deleted.Email, "changed_by", changedBy)

	return deleted, nil
}
