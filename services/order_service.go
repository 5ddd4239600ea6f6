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

type OrderService struct {
	orders *mongo.Collection
}

func NewOrderService() *OrderService {
	return &OrderService{orders: config.OpenCollection("orders")}
}

func (s *OrderService) Search(ctx context.Context, params map[string]string) ([]models.Order, error) {
	filter := models.OrderSearchFilter(params)
	field, order := utils.BuildSort(models.OrderSortFields, params["sortField"], params["sortOrder"])

	cursor, err := s.orders.Find(ctx, filter, options.Find().SetSort(utils.SortDoc(field, order)))
	if err != nil {
		return nil, fmt.Errorf("searching orders: %w", err)
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decoding orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) FindByID(ctx context.Context, id string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var order models.Order
	err = s.orders.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding order: %w", err)
	}
	return &order, nil
}

// Create places an order for the authenticated user. Every requested item
// id must belong to the named restaurant; the total is the sum of the
// matched items' prices. Nothing is reserved or charged here, and the
// referenced records can disappear afterwards without cleanup.
func (s *OrderService) Create(ctx context.Context, userID string, in models.OrderCreateInput) (*models.Order, error) {
	restaurant, err := NewRestaurantService().FindByID(ctx, in.RestaurantID)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown restaurant %q", ErrValidation, in.RestaurantID)
	}
	if err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(restaurant.Items))
	for _, item := range restaurant.Items {
		prices[item.ID.Hex()] = item.Price
	}

	var totalAmount float64
	for _, itemID := range in.ItemIDs {
		price, ok := prices[itemID]
		if !ok {
			return nil, fmt.Errorf("%w: item %q does not belong to restaurant %q", ErrValidation, itemID, in.RestaurantID)
		}
		totalAmount += price
	}

	now := time.Now().UTC()
	order := &models.Order{
		TotalAmount:  totalAmount,
		IsPaid:       false,
		UserID:       userID,
		RestaurantID: in.RestaurantID,
		ItemIDs:      in.ItemIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := s.orders.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	order.ID = res.InsertedID.(primitive.ObjectID)
	return order, nil
}
