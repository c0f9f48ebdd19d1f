package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID        bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string        `json:"email"          bson:"email"`
	Name      string        `json:"name,omitempty"  bson:"name,omitempty"`
	Photo     string        `json:"photo,omitempty" bson:"photo,omitempty"`
	Role      string        `json:"role,omitempty"  bson:"role,omitempty"`
	CreatedAt time.Time     `json:"createdAt"      bson:"createdAt"`
}
