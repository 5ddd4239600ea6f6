package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/utils"
)

// Item is a menu entry embedded in its restaurant. Item ids are only ever
// resolved through the owning restaurant, so uniqueness is scoped to it.
type Item struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	Description         string             `bson:"description" json:"description"`
	Price               float64            `bson:"price" json:"price"`
	IsActive            bool               `bson:"isActive" json:"isActive"`
	DietaryRestrictions []string           `bson:"dietaryRestrictions" json:"dietaryRestrictions"`
}

type Restaurant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Geo         *utils.GeoPoint    `bson:"geo,omitempty" json:"geo,omitempty"`
	Items       []Item             `bson:"items" json:"items"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"-"`
}

var (
	restaurantFilterFields = []string{"name", "isActive", "longitude", "latitude", "maxDistance"}

	RestaurantSortFields = []string{"name", "isActive", "createdAt", "_id"}
)

// RestaurantSearchFilter whitelists raw query params into an exact-match
// filter. When both coordinates are present the raw longitude, latitude and
// maxDistance keys are replaced by a single $near predicate on the stored
// point; they never reach the database as plain fields.
func RestaurantSearchFilter(params map[string]string) bson.M {
	safe := utils.Pick(restaurantFilterFields, params)

	filter := bson.M{}
	if name, ok := safe["name"]; ok {
		filter["name"] = name
	}
	if active, ok := safe["isActive"]; ok {
		if b, valid := utils.CoerceBool(active); valid {
			filter["isActive"] = b
		} else {
			filter["isActive"] = active
		}
	}

	if near := utils.ProximityFilter(safe["longitude"], safe["latitude"], safe["maxDistance"]); near != nil {
		filter["geo"] = near
	}

	return filter
}

type RestaurantCreateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Longitude   any    `json:"longitude"`
	Latitude    any    `json:"latitude"`
}

func (in RestaurantCreateInput) Document(now time.Time) *Restaurant {
	return &Restaurant{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		Geo:         utils.PointFromCoordinates(in.Longitude, in.Latitude),
		Items:       []Item{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type RestaurantUpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	Longitude   any     `json:"longitude"`
	Latitude    any     `json:"latitude"`
}

// SetDoc builds the $set document. Coordinates only take effect when both
// are present; otherwise the stored point is left untouched.
func (in RestaurantUpdateInput) SetDoc(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	if point := utils.PointFromCoordinates(in.Longitude, in.Latitude); point != nil {
		set["geo"] = point
	}
	return set
}

type ItemInput struct {
	Name                string   `json:"name" binding:"required"`
	Description         string   `json:"description" binding:"required"`
	Price               *float64 `json:"price" binding:"required,gte=0"`
	IsActive            *bool    `json:"isActive"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

func (in ItemInput) Document() Item {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	restrictions := in.DietaryRestrictions
	if restrictions == nil {
		restrictions = []string{}
	}

	return Item{
		ID:                  primitive.NewObjectID(),
		Name:                in.Name,
		Description:         in.Description,
		Price:               *in.Price,
		IsActive:            active,
		DietaryRestrictions: restrictions,
	}
}

// ItemCriteria filters a restaurant's menu in memory. All present criteria
// must hold.
type ItemCriteria struct {
	Name                string
	Price               any
	DietaryRestrictions []string
}

// FilteredItems returns the items matching criteria, preserving menu order.
// Name matches exactly and case-sensitively. Price keeps items at or below
// the requested amount; a zero or non-numeric price skips the criterion.
// Dietary restrictions match when the item carries every requested tag.
// Inactive items are not excluded here.
func (r *Restaurant) FilteredItems(criteria ItemCriteria) []Item {
	maxPrice, priceOK := utils.CoerceFloat(criteria.Price)

	matched := []Item{}
	for _, item := range r.Items {
		if criteria.Name != "" && criteria.Name != item.Name {
			continue
		}
		if priceOK && maxPrice != 0 && item.Price > maxPrice {
			continue
		}
		if !hasAllRestrictions(item.DietaryRestrictions, criteria.DietaryRestrictions) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func hasAllRestrictions(itemTags, requested []string) bool {
	for _, want := range requested {
		found := false
		for _, tag := range itemTags {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
