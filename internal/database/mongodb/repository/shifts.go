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

type ShiftRepository struct {
	collection *mongo.Collection
}

func NewShiftRepository(mongoClient *client.MongoClient) *ShiftRepository {
	repository := &ShiftRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBShiftrec)).Collection(string(core.MongoCollectionShifts)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ShiftRepository) ensureIndexes(contextValue context.Context) error {
	_, _ = repository.collection.Indexes().CreateMany(contextValue, model.ShiftIndexes)
	return nil
}

// Create：單文件插入
func (repository *ShiftRepository) Create(
	contextValue context.Context,
	shift *model.Shift,
) (_ *model.Shift, returnedError error) {

	nowUTC := time.Now().UTC()
	if shift.ID.IsZero() {
		shift.ID = primitive.NewObjectID()
	}
	shift.CreatedAt = nowUTC
	shift.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, shift)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	shift.ID = objectID
	return shift, nil
}

// GetByID：單文件讀取；所有查詢都帶 ownerEmail，跨租戶查不到即視同不存在
func (repository *ShiftRepository) GetByID(
	contextValue context.Context,
	ownerEmail string,
	shiftIdentifier primitive.ObjectID,
) (_ *model.Shift, returnedError error) {

	var shift model.Shift
	filter := bson.M{"_id": shiftIdentifier, "ownerEmail": ownerEmail}
	if returnedError = repository.collection.FindOne(contextValue, filter).Decode(&shift); returnedError != nil {
		return nil, returnedError
	}
	return &shift, nil
}

// List：分頁查詢（page 為「1 起算」，skip = (page-1)*size）
// 依服務日倒序、開始時間倒序（最近的班表在前）
func (repository *ShiftRepository) List(
	contextValue context.Context,
	listOptions core.ListOptions,
) (_ []*model.Shift, returnedError error) {

	page := listOptions.Page
	if page < 1 {
		page = 1
	}
	findOptions := options.Find().
		SetSkip((page - 1) * listOptions.Size).
		SetLimit(listOptions.Size).
		SetSort(bson.D{{Key: "serviceDate", Value: -1}, {Key: "startTime", Value: -1}})

	cursor, findError := repository.collection.Find(contextValue, listOptions.Filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var shifts []*model.Shift
	if returnedError = cursor.All(contextValue, &shifts); returnedError != nil {
		return nil, returnedError
	}
	return shifts, nil
}

// UpdateByID：將呼叫端給的欄位寫入 $set / $unset（updatedAt 由 withUpdatedAt 蓋章）
func (repository *ShiftRepository) UpdateByID(
	contextValue context.Context,
	ownerEmail string,
	shiftIdentifier primitive.ObjectID,
	update bson.M,
) (_ int64, returnedError error) {

	filter := bson.M{"_id": shiftIdentifier, "ownerEmail": ownerEmail}
	result, updateError := repository.collection.UpdateOne(contextValue, filter, withUpdatedAt(update))
	if updateError != nil {
		return 0, updateError
	}
	return result.MatchedCount, nil
}

// DeleteByID：永久刪除（service 負責先確認已封存）
func (repository *ShiftRepository) DeleteByID(
	contextValue context.Context,
	ownerEmail string,
	shiftIdentifier primitive.ObjectID,
) (_ int64, returnedError error) {

	filter := bson.M{"_id": shiftIdentifier, "ownerEmail": ownerEmail}
	result, deleteError := repository.collection.DeleteOne(contextValue, filter)
	if deleteError != nil {
		return 0, deleteError
	}
	return result.DeletedCount, nil
}

// Count：條件計數（dashboard 用）
func (repository *ShiftRepository) Count(
	contextValue context.Context,
	filter bson.M,
) (int64, error) {
	return repository.collection.CountDocuments(contextValue, filter)
}

// CountByStatus：依狀態彙總未封存班表數（dashboard 及 cron 統計用）
func (repository *ShiftRepository) CountByStatus(
	contextValue context.Context,
	matchFilter bson.M,
) (_ map[core.ShiftStatus]int64, returnedError error) {

	if matchFilter == nil {
		matchFilter = bson.M{}
	}
	matchFilter["archived"] = false

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: matchFilter}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	counts := make(map[core.ShiftStatus]int64)
	for cursor.Next(contextValue) {
		var row struct {
			Status core.ShiftStatus `bson:"_id"`
			Count  int64            `bson:"count"`
		}
		if decodeError := cursor.Decode(&row); decodeError != nil {
			return nil, decodeError
		}
		counts[row.Status] = row.Count
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return counts, nil
}
