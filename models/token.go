package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Token is a bearer session record. Its ObjectID doubles as the opaque
// token value presented in the Authorization header. Created on login,
// deleted on logout; many tokens may point at one user.
type Token struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	LastAccessedAt time.Time          `bson:"lastAccessedAt" json:"lastAccessedAt"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"-"`
}
