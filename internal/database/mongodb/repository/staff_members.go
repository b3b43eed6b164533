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

type StaffMemberRepository struct {
	collection *mongo.Collection
}

func NewStaffMemberRepository(mongoClient *client.MongoClient) *StaffMemberRepository {
	repository := &StaffMemberRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftrec)).Collection(string(core.MongoCollectionStaff)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *StaffMemberRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.StaffMemberIndexes)
	return nil
}

func (repository *StaffMemberRepository) Create(
	contextValue context.Context,
	staffMember *model.StaffMember,
) (_ *model.StaffMember, returnedError error) {

	nowUTC := time.Now().UTC()
	if staffMember.ID.IsZero() {
		staffMember.ID = primitive.NewObjectID()
	}
	staffMember.CreatedAt = nowUTC
	staffMember.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, staffMember)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	staffMember.ID = objectID
	return staffMember, nil
}

func (repository *StaffMemberRepository) GetByID(
	contextValue context.Context,
	ownerEmail string,
	staffMemberIdentifier primitive.ObjectID,
) (_ *model.StaffMember, returnedError error) {

	var staffMember model.StaffMember
	filter := bson.M{"_id": staffMemberIdentifier, "ownerEmail": ownerEmail}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&staffMember); returnedError != nil {
		return nil, returnedError
	}
	return &staffMember, nil
}

func (repository *StaffMemberRepository) List(
	contextValue context.Context,
	listOptions core.ListOptions,
) (_ []*model.StaffMember, returnedError error) {

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

	var staffMembers []*model.StaffMember
	if returnedError = cursor.All(contextValue, &staffMembers); returnedError != nil {
		return nil, returnedError
	}
	return staffMembers, nil
}

// FindByIDs：批次 $in 讀取（包含被指派與被通知的員工）
func (repository *StaffMemberRepository) FindByIDs(
	contextValue context.Context,
	ownerEmail string,
	staffMemberIdentifiers []primitive.ObjectID,
) (_ []*model.StaffMember, returnedError error) {

	if len(staffMemberIdentifiers) == 0 {
		return nil, nil
	}
	filter := bson.M{"ownerEmail": ownerEmail, "_id": bson.M{"$in": staffMemberIdentifiers}}
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var staffMembers []*model.StaffMember
	if returnedError = cursor.All(contextValue, &staffMembers); returnedError != nil {
		return nil, returnedError
	}
	return staffMembers, nil
}

func (repository *StaffMemberRepository) FindByNames(
	contextValue context.Context,
	ownerEmail string,
	names []string,
) (_ []*model.StaffMember, returnedError error) {

	if len(names) == 0 {
		return nil, nil
	}
	filter := bson.M{"ownerEmail": ownerEmail, "name": bson.M{"$in": names}}
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var staffMembers []*model.StaffMember
	if returnedError = cursor.All(contextValue, &staffMembers); returnedError != nil {
		return nil, returnedError
	}
	return staffMembers, nil
}

func (repository *StaffMemberRepository) Count(
	contextValue context.Context,
	filter bson.M,
) (int64, error) {
	return repository.collection.CountDocuments(contextValue, filter)
}

func (repository *StaffMemberRepository) UpdateByID(
	contextValue context.Context,
	ownerEmail string,
	staffMemberIdentifier primitive.ObjectID,
	update bson.M,
) (_ int64, returnedError error) {

	filter := bson.M{"_id": staffMemberIdentifier, "ownerEmail": ownerEmail}
	result, updateError := repository.collection.UpdateOne(contextValue, filter, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

func (repository *StaffMemberRepository) DeleteByID(
	contextValue context.Context,
	ownerEmail string,
	staffMemberIdentifier primitive.ObjectID,
) (_ int64, returnedError error) {

	filter := bson.M{"_id": staffMemberIdentifier, "ownerEmail": ownerEmail}
	result, deleteError := repository.collection.DeleteOne(contextValue, filter)
	if deleteError != nil {
		return 0, deleteError
	}
	return result.DeletedCount, nil
}
