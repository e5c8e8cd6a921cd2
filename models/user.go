package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleBuyer Role = "buyer"
	RoleAdmin Role = "admin"
)

type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string        `bson:"email" json:"email"`
	Role      Role          `bson:"role" json:"role"`
	Name      string        `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL  string        `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
