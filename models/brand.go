package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Brand struct {
	ID   bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name string        `bson:"name" json:"name"`
	Slug string        `bson:"slug" json:"slug"`
	Logo string        `bson:"logo,omitempty" json:"logo,omitempty"`
}
