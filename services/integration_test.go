//go:build integration

package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/config"
	"backend/models"
)

func TestMain(m *testing.M) {
	if os.Getenv("DB_NAME") == "" {
		os.Setenv("DB_NAME", "foodOrderingTest")
	}
	config.InitDB()

	code := m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = config.DB.Drop(ctx)

	os.Exit(code)
}

func uniqueEmail() string {
	return primitive.NewObjectID().Hex() + "@example.com"
}

func newUser(t *testing.T, firstName string) *models.User {
	t.Helper()
	user, err := NewUserService().Create(context.Background(), models.UserCreateInput{
		FirstName: firstName,
		LastName:  "Tester",
		Email:     uniqueEmail(),
		Password:  "hunter2",
	})
	require.NoError(t, err)
	return user
}

func TestUserCreateConflictAndSearch(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService()

	email := uniqueEmail()
	first, err := svc.Create(ctx, models.UserCreateInput{
		FirstName: "Norville",
		LastName:  "Rogers",
		Email:     email,
		Password:  "hunter2",
	})
	require.NoError(t, err)
	require.False(t, first.ID.IsZero())

	_, err = svc.Create(ctx, models.UserCreateInput{
		FirstName: "Somebody",
		LastName:  "Else",
		Email:     email,
		Password:  "hunter2",
	})
	assert.ErrorIs(t, err, ErrConflict)

	found, err := svc.Search(ctx, map[string]string{"firstName": "Norville"})
	require.NoError(t, err)
	ids := []string{}
	for _, u := range found {
		ids = append(ids, u.ID.Hex())
		assert.Equal(t, "Norville", u.FirstName)
	}
	assert.Contains(t, ids, first.ID.Hex())

	// Exact matching only, no case folding.
	none, err := svc.Search(ctx, map[string]string{"firstName": "norville"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserUpdateAndAddresses(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService()
	user := newUser(t, "Addressable")

	newFirst := "Renamed"
	updated, err := svc.Update(ctx, user.ID.Hex(), models.UserUpdateInput{FirstName: &newFirst})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FirstName)
	assert.Equal(t, user.Email, updated.Email)

	withAddress, err := svc.AddAddress(ctx, user.ID.Hex(), models.AddressInput{
		Street: "1 Main St", City: "NYC", State: "NY", Zip: "10001", Country: "USA",
	})
	require.NoError(t, err)
	require.Len(t, withAddress.Addresses, 1)

	err = svc.RemoveAddress(ctx, user.ID.Hex(), withAddress.Addresses[0].ID.Hex())
	require.NoError(t, err)

	reloaded, err := svc.FindByID(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, reloaded.Addresses)

	_, err = svc.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestaurantProximitySearch(t *testing.T) {
	ctx := context.Background()
	svc := NewRestaurantService()

	created, err := svc.Create(ctx, models.RestaurantCreateInput{
		Name:        "Ippudo",
		Description: "Ramen",
		Longitude:   "-73.9888796",
		Latitude:    "40.7312261",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Geo)

	// Roughly 1km north of the restaurant.
	searchFrom := map[string]string{
		"longitude": "-73.9888796",
		"latitude":  "40.7402261",
	}

	searchFrom["maxDistance"] = "500"
	near, err := svc.Search(ctx, searchFrom)
	require.NoError(t, err)
	assert.NotContains(t, restaurantIDs(near), created.ID.Hex())

	searchFrom["maxDistance"] = "2000"
	wider, err := svc.Search(ctx, searchFrom)
	require.NoError(t, err)
	assert.Contains(t, restaurantIDs(wider), created.ID.Hex())
}

func restaurantIDs(restaurants []models.Restaurant) []string {
	ids := []string{}
	for _, r := range restaurants {
		ids = append(ids, r.ID.Hex())
	}
	return ids
}

func TestRestaurantItemsLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewRestaurantService()

	created, err := svc.Create(ctx, models.RestaurantCreateInput{
		Name:        "Filtered Feast",
		Description: "Everything on the menu",
	})
	require.NoError(t, err)

	price := 10.0
	menu := []models.ItemInput{
		{Name: "Steak", Description: "Rare", Price: &price, DietaryRestrictions: []string{"carnivore", "salty"}},
		{Name: "Edamame", Description: "Steamed", Price: &price, DietaryRestrictions: []string{"vegan", "salty"}},
		{Name: "Burger", Description: "Plain", Price: &price, DietaryRestrictions: []string{"carnivore"}},
	}
	var restaurant *models.Restaurant
	for _, in := range menu {
		restaurant, err = svc.AddItem(ctx, created.ID.Hex(), in)
		require.NoError(t, err)
	}
	require.Len(t, restaurant.Items, 3)

	salty := restaurant.FilteredItems(models.ItemCriteria{DietaryRestrictions: []string{"salty"}})
	require.Len(t, salty, 2)
	assert.Equal(t, "Steak", salty[0].Name)
	assert.Equal(t, "Edamame", salty[1].Name)

	err = svc.RemoveItem(ctx, created.ID.Hex(), restaurant.Items[0].ID.Hex())
	require.NoError(t, err)

	reloaded, err := svc.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, reloaded.Items, 2)

	err = svc.RemoveItem(ctx, primitive.NewObjectID().Hex(), restaurant.Items[1].ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokenLifecycleAndResolveFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService()
	user := newUser(t, "Sessioned")

	_, _, err := svc.Login(ctx, user.Email, "wrong-password")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	token, loggedIn, err := svc.Login(ctx, user.Email, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	resolvedToken, resolvedUser, err := svc.Resolve(ctx, token.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, token.ID, resolvedToken.ID)
	assert.Equal(t, user.ID, resolvedUser.ID)

	require.NoError(t, svc.Logout(ctx, token.ID))
	_, _, err = svc.Resolve(ctx, token.ID.Hex())
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// Well-formed id with no token record.
	_, _, err = svc.Resolve(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// Malformed id.
	_, _, err = svc.Resolve(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// Token whose user no longer exists.
	orphan := &models.Token{
		UserID:         primitive.NewObjectID(),
		LastAccessedAt: time.Now().UTC(),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	res, err := config.OpenCollection("tokens").InsertOne(ctx, orphan)
	require.NoError(t, err)
	_, _, err = svc.Resolve(ctx, res.InsertedID.(primitive.ObjectID).Hex())
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestOrderCreateAndSearch(t *testing.T) {
	ctx := context.Background()
	restaurants := NewRestaurantService()
	orders := NewOrderService()
	user := newUser(t, "Hungry")

	created, err := restaurants.Create(ctx, models.RestaurantCreateInput{
		Name:        "Order Source",
		Description: "For order tests",
	})
	require.NoError(t, err)

	ramenPrice, sidePrice := 15.5, 4.5
	_, err = restaurants.AddItem(ctx, created.ID.Hex(), models.ItemInput{
		Name: "Ramen", Description: "Tonkotsu", Price: &ramenPrice,
	})
	require.NoError(t, err)
	restaurant, err := restaurants.AddItem(ctx, created.ID.Hex(), models.ItemInput{
		Name: "Gyoza", Description: "Fried", Price: &sidePrice,
	})
	require.NoError(t, err)

	itemIDs := []string{restaurant.Items[0].ID.Hex(), restaurant.Items[1].ID.Hex()}
	order, err := orders.Create(ctx, user.ID.Hex(), models.OrderCreateInput{
		RestaurantID: created.ID.Hex(),
		ItemIDs:      itemIDs,
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, order.TotalAmount)
	assert.False(t, order.IsPaid)
	assert.Equal(t, user.ID.Hex(), order.UserID)

	// Item from another restaurant (or nowhere) fails validation.
	_, err = orders.Create(ctx, user.ID.Hex(), models.OrderCreateInput{
		RestaurantID: created.ID.Hex(),
		ItemIDs:      []string{primitive.NewObjectID().Hex()},
	})
	assert.ErrorIs(t, err, ErrValidation)

	// Unknown restaurant fails validation too.
	_, err = orders.Create(ctx, user.ID.Hex(), models.OrderCreateInput{
		RestaurantID: primitive.NewObjectID().Hex(),
		ItemIDs:      itemIDs,
	})
	assert.ErrorIs(t, err, ErrValidation)

	found, err := orders.Search(ctx, map[string]string{
		"userId": user.ID.Hex(),
		"isPaid": "false",
	})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, order.ID, found[0].ID)
}
