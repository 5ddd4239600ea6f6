package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/utils"
)

// Address is embedded in a user; it has no life outside its owner.
type Address struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Street  string             `bson:"street" json:"street"`
	City    string             `bson:"city" json:"city"`
	State   string             `bson:"state" json:"state"`
	Zip     string             `bson:"zip" json:"zip"`
	Country string             `bson:"country" json:"country"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Addresses []Address          `bson:"addresses" json:"addresses"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"-"`
}

// Fields a client may filter and sort users by. Everything else in the
// query string is dropped before it reaches the database.
var (
	userFilterFields = []string{"firstName", "lastName", "email"}

	UserSortFields = []string{"firstName", "lastName", "email", "createdAt", "_id"}
)

// UserSearchFilter whitelists raw query params into an exact-match filter.
func UserSearchFilter(params map[string]string) bson.M {
	filter := bson.M{}
	for field, value := range utils.Pick(userFilterFields, params) {
		filter[field] = value
	}
	return filter
}

type AddressInput struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
	Country string `json:"country" binding:"required"`
}

func (in AddressInput) Document() Address {
	return Address{
		ID:      primitive.NewObjectID(),
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		Zip:     in.Zip,
		Country: in.Country,
	}
}

// UserCreateInput is the create-side whitelist: binding to the struct drops
// any other body fields before persistence.
type UserCreateInput struct {
	FirstName string         `json:"firstName" binding:"required"`
	LastName  string         `json:"lastName" binding:"required"`
	Email     string         `json:"email" binding:"required"`
	Password  string         `json:"password" binding:"required"`
	Addresses []AddressInput `json:"addresses"`
}

func (in UserCreateInput) Document(now time.Time) *User {
	addresses := make([]Address, 0, len(in.Addresses))
	for _, a := range in.Addresses {
		addresses = append(addresses, a.Document())
	}

	return &User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Addresses: addresses,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserUpdateInput is the update-side whitelist. Only fields present in the
// body (non-nil after binding) make it into the $set document.
type UserUpdateInput struct {
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Email     *string    `json:"email"`
	CreatedAt *time.Time `json:"createdAt"`
	Password  *string    `json:"password"`
}

func (in UserUpdateInput) SetDoc(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if in.FirstName != nil {
		set["firstName"] = *in.FirstName
	}
	if in.LastName != nil {
		set["lastName"] = *in.LastName
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.CreatedAt != nil {
		set["createdAt"] = *in.CreatedAt
	}
	if in.Password != nil {
		set["password"] = *in.Password
	}
	return set
}
