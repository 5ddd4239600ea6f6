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

type UserService struct {
	users *mongo.Collection
}

func NewUserService() *UserService {
	return &UserService{users: config.OpenCollection("users")}
}

// Search runs the whitelisted filter and sort against the users collection.
func (s *UserService) Search(ctx context.Context, params map[string]string) ([]models.User, error) {
	filter := models.UserSearchFilter(params)
	field, order := utils.BuildSort(models.UserSortFields, params["sortField"], params["sortOrder"])

	cursor, err := s.users.Find(ctx, filter, options.Find().SetSort(utils.SortDoc(field, order)))
	if err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}

// FindByEmailAndPassword backs login.
//
// TODO: hash the password at rest and compare via a constant-time check
// instead of storing and matching plaintext.
func (s *UserService) FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email, "password": password}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotAuthorized
	}
	if err != nil {
		return nil, fmt.Errorf("finding user by credentials: %w", err)
	}
	return &user, nil
}

func (s *UserService) Create(ctx context.Context, in models.UserCreateInput) (*models.User, error) {
	user := in.Document(time.Now().UTC())

	res, err := s.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, in models.UserUpdateInput) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": in.SetDoc(time.Now().UTC())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return &user, nil
}

// Delete removes the user if it exists. Deleting an unknown id is not an
// error.
func (s *UserService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := s.users.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

func (s *UserService) AddAddress(ctx context.Context, id string, in models.AddressInput) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$push": bson.M{"addresses": in.Document()},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("adding address: %w", err)
	}
	return &user, nil
}

func (s *UserService) RemoveAddress(ctx context.Context, id, addressID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	addressOID, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$pull": bson.M{"addresses": bson.M{"_id": addressOID}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("removing address: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
