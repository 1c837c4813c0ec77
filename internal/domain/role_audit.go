package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoleAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Email     string             `bson:"email" json:"email"`
	EventType string             `bson:"event_type" json:"event_type"`
	OldRole   string             `bson:"old_role" json:"old_role"`
	NewRole   string             `bson:"new_role" json:"new_role"`
	ChangedBy string             `bson:"changed_by" json:"changed_by"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

const (
	EventUserPromoted = "user.promoted"
	EventUserDeleted  = "user.deleted"
)
