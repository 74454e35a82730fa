package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ProductName     string               `bson:"productName" json:"productName"`
	Tags            []primitive.ObjectID `bson:"tags" json:"tags"`
	Description     string               `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionMore *DescriptionMore     `bson:"descriptionMore" json:"descriptionMore"`
	Type            primitive.ObjectID   `bson:"type" json:"type"`
	Image           string               `bson:"image" json:"image"`
	ImageMore       []string             `bson:"imageMore" json:"imageMore"`
	Price           *float64             `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type DescriptionMore struct {
	RoastLevel  string `bson:"roast_level,omitempty" json:"roast_level,omitempty"`
	Flavor      string `bson:"flavor,omitempty" json:"flavor,omitempty"`
	Brewing     string `bson:"brewing,omitempty" json:"brewing,omitempty"`
	Altitude    string `bson:"altitude,omitempty" json:"altitude,omitempty"`
	Variety     string `bson:"variety,omitempty" json:"variety,omitempty"`
	Cultivation string `bson:"cultivation,omitempty" json:"cultivation,omitempty"`
}
