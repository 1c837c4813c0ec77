package domain

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem trusts the caller-supplied owner email; the item reference,
// quantity and price fields are passed through untouched in Extra.
type CartItem struct {
	ID    primitive.ObjectID     `bson:"_id,omitempty"`
	Email string                 `bson:"email"`
	Extra map[string]interface{} `bson:",inline"`
}

func (c CartItem) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(c.Extra)+2)
	for k, v := range c.Extra {
		doc[k] = v
	}
	if !c.ID.IsZero() {
		doc["_id"] = c.ID.Hex()
	}
	doc["email"] = c.Email

	return json.Marshal(doc)
}

func (c *CartItem) UnmarshalJSON(data []byte) error {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if email, ok := doc["email"].(string); ok {
		c.Email = email
	}
	delete(doc, "_id")
	delete(doc, "email")

	c.Extra = doc

	return nil
}
