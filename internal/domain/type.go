package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Type is the product category, e.g. "Arabica beans". Every product has exactly one.
type Type struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TypeName     string             `bson:"typeName" json:"typeName"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	ProductCount int64              `bson:"productCount" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
