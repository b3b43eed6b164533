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

type ClientRepository struct {
	collection *mongo.Collection
}

func NewClientRepository(mongoClient *client.MongoClient) *ClientRepository {
	repository := &ClientRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftrec)).Collection(string(core.MongoCollectionClients)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ClientRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ClientIndexes)
	return nil
}

func (repository *ClientRepository) Create(
	contextValue context.Context,
	clientDocument *model.Client,
) (_ *model.Client, returnedError error) {

	nowUTC := time.Now().UTC()
	if clientDocument.ID.IsZero() {
		clientDocument.ID = primitive.NewObjectID()
	}
	clientDocument.CreatedAt = nowUTC
	clientDocument.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, clientDocument)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	clientDocument.ID = objectID
	return clientDocument, nil
}

func (repository *ClientRepository) GetByID(
	contextValue context.Context,
	ownerEmail string,
	clientIdentifier primitive.ObjectID,
) (_ *model.Client, returnedError error) {

	var clientDocument model.Client
	filter := bson.M{"_id": clientIdentifier, "ownerEmail": ownerEmail}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&clientDocument); returnedError != nil {
		return nil, returnedError
	}
	return &clientDocument, nil
}

func (repository *ClientRepository) List(
	contextValue context.Context,
	listOptions core.ListOptions,
) (_ []*model.Client, returnedError error) {

	page := listOptions.Page
	if page < 1 {
		page = 1
	}
	findOptions := options.Find().
		SetSkip((page - 1) * listOptions.Size).
		SetLimit(listOptions.Size).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, findError := repository.collection.Find(contextValue, listOptions.Filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var clients []*model.Client
	if returnedError = cursor.All(contextValue, &clients); returnedError != nil {
		return nil, returnedError
	}
	return clients, nil
}

// FindByIDs：批次 $in 讀取，列表反正規化組裝時用
func (repository *ClientRepository) FindByIDs(
	contextValue context.Context,
	ownerEmail string,
	clientIdentifiers []primitive.ObjectID,
) (_ []*model.Client, returnedError error) {

	if len(clientIdentifiers) == 0 {
		return nil, nil
	}
	filter := bson.M{"ownerEmail": ownerEmail, "_id": bson.M{"$in": clientIdentifiers}}
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var clients []*model.Client
	if returnedError = cursor.All(contextValue, &clients); returnedError != nil {
		return nil, returnedError
	}
	return clients, nil
}

// FindByNames：批次名稱查詢，舊資料以名稱（非 id）記客戶時的後援
func (repository *ClientRepository) FindByNames(
	contextValue context.Context,
	ownerEmail string,
	names []string,
) (_ []*model.Client, returnedError error) {

	if len(names) == 0 {
		return nil, nil
	}
	filter := bson.M{"ownerEmail": ownerEmail, "name": bson.M{"$in": names}}
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var clients []*model.Client
	if returnedError = cursor.All(contextValue, &clients); returnedError != nil {
		return nil, returnedError
	}
	return clients, nil
}

func (repository *ClientRepository) Count(
	contextValue context.Context,
	filter bson.M,
) (int64, error) {
	return repository.collection.CountDocuments(contextValue, filter)
}

func (repository *ClientRepository) UpdateByID(
	contextValue context.Context,
	ownerEmail string,
	clientIdentifier primitive.ObjectID,
	update bson.M,
) (_ int64, returnedError error) {

	filter := bson.M{"_id": clientIdentifier, "ownerEmail": ownerEmail}
	result, updateError := repository.collection.UpdateOne(contextValue, filter, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

func (repository *ClientRepository) DeleteByID(
	contextValue context.Context,
	ownerEmail string,
	clientIdentifier primitive.ObjectID,
) (_ int64, returnedError error) {

	filter := bson.M{"_id": clientIdentifier, "ownerEmail": ownerEmail}
	result, deleteError := repository.collection.DeleteOne(contextValue, filter)
	if deleteError != nil {
		return 0, deleteError
	}
	return result.DeletedCount, nil
}
