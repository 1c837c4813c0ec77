package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Menu documents are read-only passthrough; the API never shapes them.
type MenuRepository interface {
	GetAll(ctx context.Context) ([]bson.M, error)
}
