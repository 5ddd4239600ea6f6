package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/utils"
)

// Order references its user, restaurant and items by id only; nothing
// enforces those references at the storage level.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TotalAmount  float64            `bson:"totalAmount" json:"totalAmount"`
	IsPaid       bool               `bson:"isPaid" json:"isPaid"`
	UserID       string             `bson:"userId" json:"userId"`
	RestaurantID string             `bson:"restaurantId" json:"restaurantId"`
	ItemIDs      []string           `bson:"itemIds" json:"itemIds"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"-"`
}

var (
	orderFilterFields = []string{"totalAmount", "isPaid", "userId", "restaurantId"}

	OrderSortFields = []string{"totalAmount", "isPaid", "userId", "restaurantId", "createdAt"}
)

// OrderSearchFilter whitelists raw query params into an exact-match filter,
// coercing the typed fields the way the schema stores them.
func OrderSearchFilter(params map[string]string) bson.M {
	safe := utils.Pick(orderFilterFields, params)

	filter := bson.M{}
	if total, ok := safe["totalAmount"]; ok {
		if f, valid := utils.CoerceFloat(total); valid {
			filter["totalAmount"] = f
		} else {
			filter["totalAmount"] = total
		}
	}
	if paid, ok := safe["isPaid"]; ok {
		if b, valid := utils.CoerceBool(paid); valid {
			filter["isPaid"] = b
		} else {
			filter["isPaid"] = paid
		}
	}
	if userID, ok := safe["userId"]; ok {
		filter["userId"] = userID
	}
	if restaurantID, ok := safe["restaurantId"]; ok {
		filter["restaurantId"] = restaurantID
	}

	return filter
}

// OrderCreateInput is the create-side whitelist. The order's userId is not
// client-writable; it is always taken from the authenticated user.
type OrderCreateInput struct {
	RestaurantID string   `json:"restaurantId" binding:"required"`
	ItemIDs      []string `json:"itemIds" binding:"required,min=1"`
}
