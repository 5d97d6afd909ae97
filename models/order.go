package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Products    []OrderItem        `bson:"products" json:"products"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Status      OrderStatus        `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// OrderItem carries the product name and price as they were at checkout,
// so order history survives later product edits or deletions.
type OrderItem struct {
	ProductID    primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName  string             `bson:"productName" json:"productName"`
	ProductPrice float64            `bson:"productPrice" json:"productPrice"`
	Quantity     int                `bson:"quantity" json:"quantity"`
}

// OrderUserView is an order with its userId expanded to the owning user's
// email, the shape returned by the admin order listing.
type OrderUserView struct {
	ID          primitive.ObjectID `json:"id"`
	User        OrderUser          `json:"userId"`
	Products    []OrderItem        `json:"products"`
	TotalAmount float64            `json:"totalAmount"`
	Status      OrderStatus        `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type OrderUser struct {
	ID    primitive.ObjectID `json:"_id"`
	Email string             `json:"email"`
}
