package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name         string               `bson:"name" json:"name"`
	Email        string               `bson:"email" json:"email"`
	Password     string               `bson:"password" json:"-"`
	Role         Role                 `bson:"role" json:"role"`
	IsFirstLogin bool                 `bson:"isFirstLogin" json:"isFirstLogin"`
	Wishlist     []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
}
