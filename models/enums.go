package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Role, Category and OrderStatus are closed enums. Unknown values are
// rejected at the request boundary via the Parse helpers; the bson documents
// only ever hold the values defined here.

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole returns the role for s, defaulting to "user" when s is empty.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleUser, nil
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type Category string

const (
	CategoryMen   Category = "men"
	CategoryWomen Category = "women"
	CategoryKids  Category = "kids"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryMen, CategoryWomen, CategoryKids:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// ValidCategory is registered with gin's binding validator as the "category"
// rule so struct tags can enforce the enum.
func ValidCategory(fl validator.FieldLevel) bool {
	_, err := ParseCategory(fl.Field().String())
	return err == nil
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusShipped, StatusDelivered:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}
