package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag is a free-form label attached to products. ProductCount tracks how many
// products reference the tag and gates deletion.
type Tag struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TagName      string             `bson:"tagName" json:"tagName"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	ProductCount int64              `bson:"productCount" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
