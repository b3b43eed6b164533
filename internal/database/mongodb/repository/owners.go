package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/zungle102/shiftrec-sub000/internal/core"
	client "github.com/zungle102/shiftrec-sub000/internal/database/client"
	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OwnerRepository struct {
	collection *mongo.Collection
}

func NewOwnerRepository(mongoClient *client.MongoClient) *OwnerRepository {
	repository := &OwnerRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftrec)).Collection(string(core.MongoCollectionOwners)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *OwnerRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.OwnerIndexes)
	return nil
}

func (repository *OwnerRepository) Create(
	contextValue context.Context,
	owner *model.Owner,
) (_ *model.Owner, returnedError error) {

	nowUTC := time.Now().UTC()
	if owner.ID.IsZero() {
		owner.ID = primitive.NewObjectID()
	}
	owner.CreatedAt = nowUTC
	owner.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, owner)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	owner.ID = objectID
	return owner, nil
}

// GetByEmail：session 驗證時查帳號
func (repository *OwnerRepository) GetByEmail(
	contextValue context.Context,
	email string,
) (_ *model.Owner, returnedError error) {

	var owner model.Owner
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"email": email}).Decode(&owner); returnedError != nil {
		return nil, returnedError
	}
	return &owner, nil
}

func (repository *OwnerRepository) UpdateByEmail(
	contextValue context.Context,
	email string,
	update bson.M,
) (_ int64, returnedError error) {

	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"email": email}, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}
