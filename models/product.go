package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description" json:"description"`
	Category          string             `bson:"category" json:"category"`
	Image             string             `bson:"image" json:"image"`
	Price             float64            `bson:"price" json:"price"`
	AvailableQuantity int                `bson:"availableQuantity" json:"availableQuantity"`
	ShowOnHome        bool               `bson:"showOnHome" json:"showOnHome"`
	ManagerEmail      string             `bson:"managerEmail" json:"managerEmail"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
