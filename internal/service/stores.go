package service

import (
	"context"

	"github.com/zungle102/shiftrec-sub000/internal/core"
	fluentdModel "github.com/zungle102/shiftrec-sub000/internal/database/fluentd/model"
	fluentdRepo "github.com/zungle102/shiftrec-sub000/internal/database/fluentd/repository"
	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/model"
	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service 只依賴這組窄介面，具體實作由 mongo/fluentd repository 提供；
// 測試時換成記憶體假件即可。

type ShiftStore interface {
	Create(ctx context.Context, shift *model.Shift) (*model.Shift, error)
	GetByID(ctx context.Context, ownerEmail string, id primitive.ObjectID) (*model.Shift, error)
	List(ctx context.Context, opts core.ListOptions) ([]*model.Shift, error)
	UpdateByID(ctx context.Context, ownerEmail string, id primitive.ObjectID, update bson.M) (int64, error)
	DeleteByID(ctx context.Context, ownerEmail string, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	CountByStatus(ctx context.Context, matchFilter bson.M) (map[core.ShiftStatus]int64, error)
}

type ClientStore interface {
	Create(ctx context.Context, client *model.Client) (*model.Client, error)
	GetByID(ctx context.Context, ownerEmail string, id primitive.ObjectID) (*model.Client, error)
	List(ctx context.Context, opts core.ListOptions) ([]*model.Client, error)
	FindByIDs(ctx context.Context, ownerEmail string, ids []primitive.ObjectID) ([]*model.Client, error)
	FindByNames(ctx context.Context, ownerEmail string, names []string) ([]*model.Client, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	UpdateByID(ctx context.Context, ownerEmail string, id primitive.ObjectID, update bson.M) (int64, error)
	DeleteByID(ctx context.Context, ownerEmail string, id primitive.ObjectID) (int64, error)
}

type StaffMemberStore interface {
	Create(ctx context.Context, staffMember *model.StaffMember) (*model.StaffMember, error)
	GetByID(ctx context.Context, ownerEmail string, id primitive.ObjectID) (*model.StaffMember, error)
	List(ctx context.Context, opts core.ListOptions) ([]*model.StaffMember, error)
	FindByIDs(ctx context.Context, ownerEmail string, ids []primitive.ObjectID) ([]*model.StaffMember, error)
	FindByNames(ctx context.Context, ownerEmail string, names []string) ([]*model.StaffMember, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	UpdateByID(ctx context.Context, ownerEmail string, id primitive.ObjectID, update bson.M) (int64, error)
	DeleteByID(ctx context.Context, ownerEmail string, id primitive.ObjectID) (int64, error)
}

type ClientTypeStore interface {
	Create(ctx context.Context, clientType *model.ClientType) (*model.ClientType, error)
	GetByID(ctx context.Context, ownerEmail string, id primitive.ObjectID) (*model.ClientType, error)
	List(ctx context.Context, ownerEmail string) ([]*model.ClientType, error)
	FindByIDs(ctx context.Context, ownerEmail string, ids []primitive.ObjectID) ([]*model.ClientType, error)
	UpdateByID(ctx context.Context, ownerEmail string, id primitive.ObjectID, update bson.M) (int64, error)
	DeleteByID(ctx context.Context, ownerEmail string, id primitive.ObjectID) (int64, error)
}

type OwnerStore interface {
	Create(ctx context.Context, owner *model.Owner) (*model.Owner, error)
	GetByEmail(ctx context.Context, email string) (*model.Owner, error)
	UpdateByEmail(ctx context.Context, email string, update bson.M) (int64, error)
}

type AuditLogStore interface {
	LogAudit(ctx context.Context, audit fluentdModel.ShiftAuditLog) error
}

func ProvideShiftStore(r *repository.ShiftRepository) ShiftStore             { return r }
func ProvideClientStore(r *repository.ClientRepository) ClientStore         { return r }
func ProvideStaffMemberStore(r *repository.StaffMemberRepository) StaffMemberStore {
	return r
}
func ProvideClientTypeStore(r *repository.ClientTypeRepository) ClientTypeStore { return r }
func ProvideOwnerStore(r *repository.OwnerRepository) OwnerStore                { return r }
func ProvideAuditLogStore(r *fluentdRepo.LogRepository) AuditLogStore           { return r }
