package service

import (
	"context"
	"errors"

	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/model"
	cErr "github.com/zungle102/shiftrec-sub000/internal/pkg/error"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"go.mongodb.org/mongo-driver/mongo"
)

// OwnerService 帳號確認：session 簽發在外部系統，
// 這裡只負責驗證帳號存在且為啟用狀態。
type OwnerService struct {
	trace      *telemetry.Trace
	ownerStore OwnerStore
}

func NewOwnerService(trace *telemetry.Trace, ownerStore OwnerStore) *OwnerService {
	return &OwnerService{trace: trace, ownerStore: ownerStore}
}

// VerifyOwner 給 session middleware 用；查無或停用一律回 InvalidSession
func (s *OwnerService) VerifyOwner(ctx context.Context, email string) (_ *model.Owner, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	owner, err := s.ownerStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.InvalidSession("unknown account")
		}
		return nil, cErr.DatabaseError("database VerifyOwner error")
	}
	if !owner.Active {
		return nil, cErr.InvalidSession("account disabled")
	}
	return owner, nil
}
