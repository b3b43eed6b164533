package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client 客戶文件
// archived 與 active 是兩個獨立的旗標：archived 隱藏於預設列表，
// active 只表示啟用與否，兩者互不影響。
type Client struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	OwnerEmail string             `json:"ownerEmail" bson:"ownerEmail"`
	Name       string             `json:"name" bson:"name"`

	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Suburb   string `json:"suburb,omitempty" bson:"suburb,omitempty"`
	State    string `json:"state,omitempty" bson:"state,omitempty"`
	Postcode string `json:"postcode,omitempty" bson:"postcode,omitempty"`

	ClientTypeID *primitive.ObjectID `json:"clientTypeId,omitempty" bson:"clientTypeId,omitempty"`

	PhoneNumber   string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty" bson:"contactPerson,omitempty"`
	ContactPhone  string `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	Email         string `json:"email,omitempty" bson:"email,omitempty"`

	Active     bool       `json:"active" bson:"active"`
	Archived   bool       `json:"archived" bson:"archived"`
	ArchivedAt *time.Time `json:"archivedAt,omitempty" bson:"archivedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

var ClientIndexes = []mongo.IndexModel{
	{ // 同帳號下客戶名稱唯一
		Keys:    bson.D{{Key: "ownerEmail", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetName("uniq_owner_name").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "ownerEmail", Value: 1}, {Key: "archived", Value: 1}},
		Options: options.Index().SetName("idx_owner_archived"),
	},
}
