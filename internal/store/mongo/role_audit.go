package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RoleAuditRepository struct {
	collection *mongo.Collection
}

func NewRoleAuditRepository(db *mongo.Database) *RoleAuditRepository {
	return &RoleAuditRepository{
		collection: db.Collection("role_audit"),
	}
}

func (r *RoleAuditRepository) Create(ctx context.Context, audit *domain.RoleAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create role audit: %w", err)
	}

	return nil
}

func (r *RoleAuditRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]domain.RoleAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get role audits: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []domain.RoleAudit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode role audits: %w", err)
	}

	return audits, nil
}
