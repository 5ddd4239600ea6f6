package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// InitDB loads the environment, connects to MongoDB and creates the
// indexes the query layer relies on. Startup failures are fatal.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "foodOrdering"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	Client = client
	DB = client.Database(dbName)

	if err := ensureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
}

func OpenCollection(name string) *mongo.Collection {
	return DB.Collection(name)
}

func ensureIndexes(ctx context.Context) error {
	_, err := OpenCollection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "firstName", Value: 1}}},
		{Keys: bson.D{{Key: "lastName", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = OpenCollection("restaurants").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "geo", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "items.name", Value: 1}}},
		{Keys: bson.D{{Key: "items.isActive", Value: 1}}},
		{Keys: bson.D{{Key: "items.dietaryRestrictions", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = OpenCollection("orders").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "totalAmount", Value: 1}}},
		{Keys: bson.D{{Key: "isPaid", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "restaurantId", Value: 1}}},
	})
	return err
}
