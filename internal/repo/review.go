package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

type ReviewRepository interface {
	GetAll(ctx context.Context) ([]bson.M, error)
}
