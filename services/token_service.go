package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/config"
	"backend/models"
)

type TokenService struct {
	tokens *mongo.Collection
	users  *mongo.Collection
}

func NewTokenService() *TokenService {
	return &TokenService{
		tokens: config.OpenCollection("tokens"),
		users:  config.OpenCollection("users"),
	}
}

// Login verifies the credentials and mints a session token whose ObjectID
// is the bearer value handed back to the client.
func (s *TokenService) Login(ctx context.Context, email, password string) (*models.Token, *models.User, error) {
	user, err := NewUserService().FindByEmailAndPassword(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	token := &models.Token{
		UserID:         user.ID,
		LastAccessedAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res, err := s.tokens.InsertOne(ctx, token)
	if err != nil {
		return nil, nil, fmt.Errorf("creating token: %w", err)
	}
	token.ID = res.InsertedID.(primitive.ObjectID)

	return token, user, nil
}

// Resolve turns a bearer token id into its token and user records. Failure
// at either lookup is NotAuthorized; nothing distinguishes a missing token
// from a token whose user is gone.
func (s *TokenService) Resolve(ctx context.Context, tokenID string) (*models.Token, *models.User, error) {
	oid, err := primitive.ObjectIDFromHex(tokenID)
	if err != nil {
		return nil, nil, ErrNotAuthorized
	}

	var token models.Token
	err = s.tokens.FindOne(ctx, bson.M{"_id": oid}).Decode(&token)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil, ErrNotAuthorized
	}
	if err != nil {
		return nil, nil, fmt.Errorf("resolving token: %w", err)
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": token.UserID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil, ErrNotAuthorized
	}
	if err != nil {
		return nil, nil, fmt.Errorf("resolving token user: %w", err)
	}

	s.touch(ctx, token.ID)

	return &token, &user, nil
}

// touch refreshes lastAccessedAt. Best effort; a failed touch never blocks
// an otherwise valid request.
func (s *TokenService) touch(ctx context.Context, id primitive.ObjectID) {
	_, _ = s.tokens.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastAccessedAt": time.Now().UTC()}},
	)
}

// Logout deletes the presented token, ending that session.
func (s *TokenService) Logout(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.tokens.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("deleting token: %w", err)
	}
	return nil
}
