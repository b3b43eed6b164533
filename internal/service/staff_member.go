package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zungle102/shiftrec-sub000/internal/core"
	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/model"
	"github.com/zungle102/shiftrec-sub000/internal/dto"
	cErr "github.com/zungle102/shiftrec-sub000/internal/pkg/error"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// StaffMemberService 員工管理：同帳號下 email 唯一
type StaffMemberService struct {
	trace      *telemetry.Trace
	staffStore StaffMemberStore
}

func NewStaffMemberService(trace *telemetry.Trace, staffStore StaffMemberStore) *StaffMemberService {
	return &StaffMemberService{trace: trace, staffStore: staffStore}
}

func (s *StaffMemberService) ListStaffMembers(ctx context.Context, ownerEmail string, includeArchived bool, page, size int64) (_ *dto.StaffMemberListResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = 50
	}
	filter := bson.M{"ownerEmail": ownerEmail}
	if !includeArchived {
		filter["archived"] = false
	}
	staffMembers, err := s.staffStore.List(ctx, core.ListOptions{Filter: filter, Page: page, Size: size})
	if err != nil {
		return nil, cErr.DatabaseError("database ListStaffMembers error")
	}
	views := make([]*dto.StaffMemberResponseDto, len(staffMembers))
	for i, staffMember := range staffMembers {
		views[i] = modelToStaffMemberResponseDto(staffMember)
	}
	return &dto.StaffMemberListResponseDto{StaffMembers: views, Page: page, Size: size}, nil
}

func (s *StaffMemberService) GetStaffMember(ctx context.Context, ownerEmail string, staffMemberID primitive.ObjectID) (_ *dto.StaffMemberResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	staffMember, err := s.staffStore.GetByID(ctx, ownerEmail, staffMemberID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("staff member not found")
		}
		return nil, cErr.DatabaseError("database GetStaffMember error")
	}
	return modelToStaffMemberResponseDto(staffMember), nil
}

func (s *StaffMemberService) CreateStaffMember(ctx context.Context, ownerEmail string, input *dto.CreateStaffMemberDto) (_ *dto.StaffMemberResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	staffMember := &model.StaffMember{
		OwnerEmail:  ownerEmail,
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Active:      active,
		Archived:    false,
	}
	created, err := s.staffStore.Create(ctx, staffMember)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict(fmt.Sprintf("staff member email %q already exists", input.Email))
		}
		return nil, cErr.DatabaseError("database CreateStaffMember error")
	}
	return modelToStaffMemberResponseDto(created), nil
}

func (s *StaffMemberService) UpdateStaffMember(ctx context.Context, ownerEmail string, staffMemberID primitive.ObjectID, input *dto.UpdateStaffMemberDto) (_ *dto.StaffMemberResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.PhoneNumber != nil {
		set["phoneNumber"] = *input.PhoneNumber
	}
	if input.Active != nil {
		set["active"] = *input.Active
	}

	if len(set) > 0 {
		matched, err := s.staffStore.UpdateByID(ctx, ownerEmail, staffMemberID, bson.M{"$set": set})
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, cErr.Conflict("staff member email already exists")
			}
			return nil, cErr.DatabaseError("database UpdateStaffMember error")
		}
		if matched == 0 {
			return nil, cErr.NotFound("staff member not found")
		}
	}
	return s.GetStaffMember(ctx, ownerEmail, staffMemberID)
}

func (s *StaffMemberService) ArchiveStaffMember(ctx context.Context, ownerEmail string, staffMemberID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	existing, err := s.staffStore.GetByID(ctx, ownerEmail, staffMemberID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("staff member not found")
		}
		return cErr.DatabaseError("database ArchiveStaffMember error")
	}
	if existing.Archived {
		return nil
	}
	update := bson.M{"$set": bson.M{"archived": true, "archivedAt": time.Now().UTC()}}
	if _, err := s.staffStore.UpdateByID(ctx, ownerEmail, staffMemberID, update); err != nil {
		return cErr.DatabaseError("database ArchiveStaffMember error")
	}
	return nil
}

func (s *StaffMemberService) RestoreStaffMember(ctx context.Context, ownerEmail string, staffMemberID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	update := bson.M{"$set": bson.M{"archived": false}, "$unset": bson.M{"archivedAt": ""}}
	matched, err := s.staffStore.UpdateByID(ctx, ownerEmail, staffMemberID, update)
	if err != nil {
		return cErr.DatabaseError("database RestoreStaffMember error")
	}
	if matched == 0 {
		return cErr.NotFound("staff member not found")
	}
	return nil
}

func (s *StaffMemberService) DeleteStaffMember(ctx context.Context, ownerEmail string, staffMemberID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	existing, err := s.staffStore.GetByID(ctx, ownerEmail, staffMemberID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("staff member not found")
		}
		return cErr.DatabaseError("database DeleteStaffMember error")
	}
	if !existing.Archived {
		return cErr.NotArchived("staff member must be archived before permanent deletion")
	}
	if _, err := s.staffStore.DeleteByID(ctx, ownerEmail, staffMemberID); err != nil {
		return cErr.DatabaseError("database DeleteStaffMember error")
	}
	return nil
}

func modelToStaffMemberResponseDto(m *model.StaffMember) *dto.StaffMemberResponseDto {
	return &dto.StaffMemberResponseDto{
		ID:          m.ID.Hex(),
		OwnerEmail:  m.OwnerEmail,
		Name:        m.Name,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Active:      m.Active,
		Archived:    m.Archived,
		ArchivedAt:  formatTimestamp(m.ArchivedAt),
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}
