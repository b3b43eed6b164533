package repository

import (
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
)

// 統一管理所有 MongoDB repository
type MongoDBRepository struct {
	shiftRepo      *ShiftRepository
	clientRepo     *ClientRepository
	staffRepo      *StaffMemberRepository
	clientTypeRepo *ClientTypeRepository
	ownerRepo      *OwnerRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	shiftRepo *ShiftRepository,
	clientRepo *ClientRepository,
	staffRepo *StaffMemberRepository,
	clientTypeRepo *ClientTypeRepository,
	ownerRepo *OwnerRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		shiftRepo:      shiftRepo,
		clientRepo:     clientRepo,
		staffRepo:      staffRepo,
		clientTypeRepo: clientTypeRepo,
		ownerRepo:      ownerRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewShiftRepository,
	NewClientRepository,
	NewStaffMemberRepository,
	NewClientTypeRepository,
	NewOwnerRepository,
	NewMongoDBRepository)

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}
