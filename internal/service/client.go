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

// ClientService 客戶管理：同帳號下名稱唯一
type ClientService struct {
	trace           *telemetry.Trace
	clientStore     ClientStore
	clientTypeStore ClientTypeStore
}

func NewClientService(trace *telemetry.Trace, clientStore ClientStore, clientTypeStore ClientTypeStore) *ClientService {
	return &ClientService{trace: trace, clientStore: clientStore, clientTypeStore: clientTypeStore}
}

func (s *ClientService) ListClients(ctx context.Context, ownerEmail string, includeArchived bool, page, size int64) (_ *dto.ClientListResponseDto, returnedError error) {
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
	clients, err := s.clientStore.List(ctx, core.ListOptions{Filter: filter, Page: page, Size: size})
	if err != nil {
		return nil, cErr.DatabaseError("database ListClients error")
	}

	// 類型名稱一樣批次解析
	typeIDSet := map[primitive.ObjectID]struct{}{}
	for _, c := range clients {
		if c.ClientTypeID != nil {
			typeIDSet[*c.ClientTypeID] = struct{}{}
		}
	}
	typesByID := map[primitive.ObjectID]*model.ClientType{}
	if len(typeIDSet) > 0 {
		clientTypes, err := s.clientTypeStore.FindByIDs(ctx, ownerEmail, setToSlice(typeIDSet))
		if err != nil {
			return nil, cErr.DatabaseError("database resolve client types error")
		}
		for _, ct := range clientTypes {
			typesByID[ct.ID] = ct
		}
	}

	views := make([]*dto.ClientResponseDto, len(clients))
	for i, c := range clients {
		views[i] = modelToClientResponseDto(c, typesByID)
	}
	return &dto.ClientListResponseDto{Clients: views, Page: page, Size: size}, nil
}

func (s *ClientService) GetClient(ctx context.Context, ownerEmail string, clientID primitive.ObjectID) (_ *dto.ClientResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	clientDocument, err := s.clientStore.GetByID(ctx, ownerEmail, clientID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.NotFound("client not found")
		}
		return nil, cErr.DatabaseError("database GetClient error")
	}
	typesByID := map[primitive.ObjectID]*model.ClientType{}
	if clientDocument.ClientTypeID != nil {
		clientTypes, err := s.clientTypeStore.FindByIDs(ctx, ownerEmail, []primitive.ObjectID{*clientDocument.ClientTypeID})
		if err != nil {
			return nil, cErr.DatabaseError("database resolve client types error")
		}
		for _, ct := range clientTypes {
			typesByID[ct.ID] = ct
		}
	}
	return modelToClientResponseDto(clientDocument, typesByID), nil
}

func (s *ClientService) CreateClient(ctx context.Context, ownerEmail string, input *dto.CreateClientDto) (_ *dto.ClientResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	input.Normalize()

	clientTypeID, err := s.resolveClientTypeID(ctx, ownerEmail, input.ClientTypeID)
	if err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	clientDocument := &model.Client{
		OwnerEmail:    ownerEmail,
		Name:          input.Name,
		Address:       input.Address,
		Suburb:        input.Suburb,
		State:         input.State,
		Postcode:      input.Postcode,
		ClientTypeID:  clientTypeID,
		PhoneNumber:   input.PhoneNumber,
		ContactPerson: input.ContactPerson,
		ContactPhone:  input.ContactPhone,
		Email:         input.Email,
		Active:        active,
		Archived:      false,
	}
	created, err := s.clientStore.Create(ctx, clientDocument)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict(fmt.Sprintf("client name %q already exists", input.Name))
		}
		return nil, cErr.DatabaseError("database CreateClient error")
	}
	return s.GetClient(ctx, ownerEmail, created.ID)
}

func (s *ClientService) UpdateClient(ctx context.Context, ownerEmail string, clientID primitive.ObjectID, input *dto.UpdateClientDto) (_ *dto.ClientResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	input.Normalize()

	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Address != nil {
		set["address"] = *input.Address
	}
	if input.Suburb != nil {
		set["suburb"] = *input.Suburb
	}
	if input.State != nil {
		set["state"] = *input.State
	}
	if input.Postcode != nil {
		set["postcode"] = *input.Postcode
	}
	if input.PhoneNumber != nil {
		set["phoneNumber"] = *input.PhoneNumber
	}
	if input.ContactPerson != nil {
		set["contactPerson"] = *input.ContactPerson
	}
	if input.ContactPhone != nil {
		set["contactPhone"] = *input.ContactPhone
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.Active != nil {
		set["active"] = *input.Active
	}
	if input.ClientTypeID != nil {
		clientTypeID, err := s.resolveClientTypeID(ctx, ownerEmail, *input.ClientTypeID)
		if err != nil {
			return nil, err
		}
		set["clientTypeId"] = clientTypeID
	}

	if len(set) > 0 {
		matched, err := s.clientStore.UpdateByID(ctx, ownerEmail, clientID, bson.M{"$set": set})
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, cErr.Conflict("client name already exists")
			}
			return nil, cErr.DatabaseError("database UpdateClient error")
		}
		if matched == 0 {
			return nil, cErr.NotFound("client not found")
		}
	}
	return s.GetClient(ctx, ownerEmail, clientID)
}

func (s *ClientService) ArchiveClient(ctx context.Context, ownerEmail string, clientID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	existing, err := s.clientStore.GetByID(ctx, ownerEmail, clientID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("client not found")
		}
		return cErr.DatabaseError("database ArchiveClient error")
	}
	if existing.Archived {
		return nil
	}
	update := bson.M{"$set": bson.M{"archived": true, "archivedAt": time.Now().UTC()}}
	if _, err := s.clientStore.UpdateByID(ctx, ownerEmail, clientID, update); err != nil {
		return cErr.DatabaseError("database ArchiveClient error")
	}
	return nil
}

func (s *ClientService) RestoreClient(ctx context.Context, ownerEmail string, clientID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	update := bson.M{"$set": bson.M{"archived": false}, "$unset": bson.M{"archivedAt": ""}}
	matched, err := s.clientStore.UpdateByID(ctx, ownerEmail, clientID, update)
	if err != nil {
		return cErr.DatabaseError("database RestoreClient error")
	}
	if matched == 0 {
		return cErr.NotFound("client not found")
	}
	return nil
}

func (s *ClientService) DeleteClient(ctx context.Context, ownerEmail string, clientID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	existing, err := s.clientStore.GetByID(ctx, ownerEmail, clientID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cErr.NotFound("client not found")
		}
		return cErr.DatabaseError("database DeleteClient error")
	}
	if !existing.Archived {
		return cErr.NotArchived("client must be archived before permanent deletion")
	}
	if _, err := s.clientStore.DeleteByID(ctx, ownerEmail, clientID); err != nil {
		return cErr.DatabaseError("database DeleteClient error")
	}
	return nil
}

func (s *ClientService) resolveClientTypeID(ctx context.Context, ownerEmail, idHex string) (*primitive.ObjectID, error) {
	if idHex == "" {
		return nil, nil
	}
	clientTypeID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, cErr.InvalidReference(fmt.Sprintf("invalid clientTypeId %q", idHex))
	}
	if _, err := s.clientTypeStore.GetByID(ctx, ownerEmail, clientTypeID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, cErr.InvalidReference(fmt.Sprintf("client type %s does not exist for this account", idHex))
		}
		return nil, cErr.DatabaseError("database resolve client type error")
	}
	return &clientTypeID, nil
}

func modelToClientResponseDto(m *model.Client, typesByID map[primitive.ObjectID]*model.ClientType) *dto.ClientResponseDto {
	resp := &dto.ClientResponseDto{
		ID:            m.ID.Hex(),
		OwnerEmail:    m.OwnerEmail,
		Name:          m.Name,
		Address:       m.Address,
		Suburb:        m.Suburb,
		State:         m.State,
		Postcode:      m.Postcode,
		PhoneNumber:   m.PhoneNumber,
		ContactPerson: m.ContactPerson,
		ContactPhone:  m.ContactPhone,
		Email:         m.Email,
		Active:        m.Active,
		Archived:      m.Archived,
		ArchivedAt:    formatTimestamp(m.ArchivedAt),
		CreatedAt:     formatTime(m.CreatedAt),
		UpdatedAt:     formatTime(m.UpdatedAt),
	}
	if m.ClientTypeID != nil {
		resp.ClientTypeID = m.ClientTypeID.Hex()
		if clientType := typesByID[*m.ClientTypeID]; clientType != nil {
			resp.ClientTypeName = clientType.Name
		}
	}
	return resp
}
