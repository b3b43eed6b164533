package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StaffMember 員工文件
type StaffMember struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	OwnerEmail string             `json:"ownerEmail" bson:"ownerEmail"`
	Name       string             `json:"name" bson:"name"`

	Email       string `json:"email,omitempty" bson:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`

	Active     bool       `json:"active" bson:"active"`
	Archived   bool       `json:"archived" bson:"archived"`
	ArchivedAt *time.Time `json:"archivedAt,omitempty" bson:"archivedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

var StaffMemberIndexes = []mongo.IndexModel{
	{ // 同帳號下員工 email 唯一（空值允許重複）
		Keys: bson.D{{Key: "ownerEmail", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_owner_email").SetUnique(true).
			SetPartialFilterExpression(bson.M{"email": bson.M{"$gt": ""}}),
	},
	{
		Keys:    bson.D{{Key: "ownerEmail", Value: 1}, {Key: "archived", Value: 1}},
		Options: options.Index().SetName("idx_owner_archived"),
	},
}
