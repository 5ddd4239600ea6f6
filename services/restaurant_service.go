package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type RestaurantService struct {
	restaurants *mongo.Collection
}

func NewRestaurantService() *RestaurantService {
	return &RestaurantService{restaurants: config.OpenCollection("restaurants")}
}

// Search runs the whitelisted filter and sort. When the filter carries a
// $near predicate the 2dsphere index on geo serves it; an explicit sort
// still wins over distance order, matching the store's semantics.
func (s *RestaurantService) Search(ctx context.Context, params map[string]string) ([]models.Restaurant, error) {
	filter := models.RestaurantSearchFilter(params)
	field, order := utils.BuildSort(models.RestaurantSortFields, params["sortField"], params["sortOrder"])

	cursor, err := s.restaurants.Find(ctx, filter, options.Find().SetSort(utils.SortDoc(field, order)))
	if err != nil {
		return nil, fmt.Errorf("searching restaurants: %w", err)
	}

	restaurants := []models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("decoding restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *RestaurantService) FindByID(ctx context.Context, id string) (*models.Restaurant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var restaurant models.Restaurant
	err = s.restaurants.FindOne(ctx, bson.M{"_id": oid}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding restaurant: %w", err)
	}
	return &restaurant, nil
}

func (s *RestaurantService) Create(ctx context.Context, in models.RestaurantCreateInput) (*models.Restaurant, error) {
	restaurant := in.Document(time.Now().UTC())

	res, err := s.restaurants.InsertOne(ctx, restaurant)
	if err != nil {
		return nil, fmt.Errorf("creating restaurant: %w", err)
	}

	restaurant.ID = res.InsertedID.(primitive.ObjectID)
	return restaurant, nil
}

func (s *RestaurantService) Update(ctx context.Context, id string, in models.RestaurantUpdateInput) (*models.Restaurant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var restaurant models.Restaurant
	err = s.restaurants.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": in.SetDoc(time.Now().UTC())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating restaurant: %w", err)
	}
	return &restaurant, nil
}

// AddItem pushes a menu item onto the restaurant and returns the updated
// menu.
func (s *RestaurantService) AddItem(ctx context.Context, id string, in models.ItemInput) (*models.Restaurant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var restaurant models.Restaurant
	err = s.restaurants.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"items": in.Document()},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("adding item: %w", err)
	}
	return &restaurant, nil
}

// RemoveItem hard-deletes a menu item.
//
// TODO: flip isActive (or better, a deletedAt) instead of hard deleting,
// because orders keep referencing these item ids.
func (s *RestaurantService) RemoveItem(ctx context.Context, id, itemID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	itemOID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.restaurants.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$pull": bson.M{"items": bson.M{"_id": itemOID}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("removing item: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
