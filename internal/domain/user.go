package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

// User carries the known-key subset (_id, email, role); any other profile
// fields the client sends live in Extra and are stored inline alongside them.
type User struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty"`
	Email string                 `bson:"email"`
	Role  string                 `bson:"role,omitempty"`
	Extra map[string]interface{} `bson:",inline"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(u.Extra)+3)
	for k, v := range u.Extra {
		doc[k] = v
	}
	if !u.ID.IsZero() {
		doc["_id"] = u.ID.Hex()
	}
	doc["email"] = u.Email
	if u.Role != "" {
		doc["role"] = u.Role
	}

	return json.Marshal(doc)
}

func (u *User) UnmarshalJSON(data []byte) error {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if email, ok := doc["email"].(string); ok {
		u.Email = email
	}
	if role, ok := doc["role"].(string); ok {
		u.Role = role
	}
	delete(doc, "_id")
	delete(doc, "email")
	delete(doc, "role")

	u.Extra = doc

	return nil
}
