package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentStatusUnpaid = "Unpaid"
	PaymentStatusPaid   = "Paid"
)

type TrackingEvent struct {
	Status    string    `bson:"status" json:"status"`
	Note      string    `bson:"note" json:"note"`
	Location  string    `bson:"location" json:"location"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID       primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName     string             `bson:"productName" json:"productName"`
	ProductImage    string             `bson:"productImage,omitempty" json:"productImage,omitempty"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	ManagerEmail    string             `bson:"managerEmail" json:"managerEmail"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Price           float64            `bson:"price" json:"price"`
	Status          string             `bson:"status" json:"status"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	OrderedAt       time.Time          `bson:"orderedAt" json:"orderedAt"`
	ApprovedAt      *time.Time         `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	TrackingHistory []TrackingEvent    `bson:"trackingHistory" json:"trackingHistory"`
}
