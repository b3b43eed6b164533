package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClientType 客戶類型（查表用）
type ClientType struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	OwnerEmail string             `json:"ownerEmail" bson:"ownerEmail"`
	Name       string             `json:"name" bson:"name"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var ClientTypeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "ownerEmail", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetName("uniq_owner_name").SetUnique(true),
	},
}
