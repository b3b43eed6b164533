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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClientTypeRepository struct {
	collection *mongo.Collection
}

func NewClientTypeRepository(mongoClient *client.MongoClient) *ClientTypeRepository {
	repository := &ClientTypeRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftrec)).Collection(string(core.MongoCollectionClientTypes)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ClientTypeRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ClientTypeIndexes)
	return nil
}

func (repository *ClientTypeRepository) Create(
	contextValue context.Context,
	clientType *model.ClientType,
) (_ *model.ClientType, returnedError error) {

	nowUTC := time.Now().UTC()
	if clientType.ID.IsZero() {
		clientType.ID = primitive.NewObjectID()
	}
	clientType.CreatedAt = nowUTC
	clientType.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, clientType)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	clientType.ID = objectID
	return clientType, nil
}

func (repository *ClientTypeRepository) GetByID(
	contextValue context.Context,
	ownerEmail string,
	clientTypeIdentifier primitive.ObjectID,
) (_ *model.ClientType, returnedError error) {

	var clientType model.ClientType
	filter := bson.M{"_id": clientTypeIdentifier, "ownerEmail": ownerEmail}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&clientType); returnedError != nil {
		return nil, returnedError
	}
	return &clientType, nil
}

func (repository *ClientTypeRepository) List(
	contextValue context.Context,
	ownerEmail string,
) (_ []*model.ClientType, returnedError error) {

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, findError := repository.collection.Find(contextValue, bson.M{"ownerEmail": ownerEmail}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var clientTypes []*model.ClientType
	if returnedError = cursor.All(contextValue, &clientTypes); returnedError != nil {
		return nil, returnedError
	}
	return clientTypes, nil
}

func (repository *ClientTypeRepository) FindByIDs(
	contextValue context.Context,
	ownerEmail string,
	clientTypeIdentifiers []primitive.ObjectID,
) (_ []*model.ClientType, returnedError error) {

	if len(clientTypeIdentifiers) == 0 {
		return nil, nil
	}
	filter := bson.M{"ownerEmail": ownerEmail, "_id": bson.M{"$in": clientTypeIdentifiers}}
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var clientTypes []*model.ClientType
	if returnedError = cursor.All(contextValue, &clientTypes); returnedError != nil {
		return nil, returnedError
	}
	return clientTypes, nil
}

func (repository *ClientTypeRepository) UpdateByID(
	contextValue context.Context,
	ownerEmail string,
	clientTypeIdentifier primitive.ObjectID,
	update bson.M,
) (_ int64, returnedError error) {

	filter := bson.M{"_id": clientTypeIdentifier, "ownerEmail": ownerEmail}
	result, updateError := repository.collection.UpdateOne(contextValue, filter, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

func (repository *ClientTypeRepository) DeleteByID(
	contextValue context.Context,
	ownerEmail string,
	clientTypeIdentifier primitive.ObjectID,
) (_ int64, returnedError error) {

	filter := bson.M{"_id": clientTypeIdentifier, "ownerEmail": ownerEmail}
	result, deleteError := repository.collection.DeleteOne(contextValue, filter)
	if deleteError != nil {
		return 0, deleteError
	}
	return result.DeletedCount, nil
}
