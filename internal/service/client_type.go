package service

import (
	"context"
	"fmt"

	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/model"
	"github.com/zungle102/shiftrec-sub000/internal/dto"
	cErr "github.com/zungle102/shiftrec-sub000/internal/pkg/error"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientTypeService 客戶類型查表
type ClientTypeService struct {
	trace           *telemetry.Trace
	clientTypeStore ClientTypeStore
}

func NewClientTypeService(trace *telemetry.Trace, clientTypeStore ClientTypeStore) *ClientTypeService {
	return &ClientTypeService{trace: trace, clientTypeStore: clientTypeStore}
}

func (s *ClientTypeService) ListClientTypes(ctx context.Context, ownerEmail string) (_ []*dto.ClientTypeResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	clientTypes, err := s.clientTypeStore.List(ctx, ownerEmail)
	if err != nil {
		return nil, cErr.DatabaseError("database ListClientTypes error")
	}
	views := make([]*dto.ClientTypeResponseDto, len(clientTypes))
	for i, clientType := range clientTypes {
		views[i] = modelToClientTypeResponseDto(clientType)
	}
	return views, nil
}

func (s *ClientTypeService) CreateClientType(ctx context.Context, ownerEmail string, input *dto.CreateClientTypeDto) (_ *dto.ClientTypeResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	clientType := &model.ClientType{
		OwnerEmail: ownerEmail,
		Name:       input.Name,
	}
	created, err := s.clientTypeStore.Create(ctx, clientType)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, cErr.Conflict(fmt.Sprintf("client type %q already exists", input.Name))
		}
		return nil, cErr.DatabaseError("database CreateClientType error")
	}
	return modelToClientTypeResponseDto(created), nil
}

func modelToClientTypeResponseDto(m *model.ClientType) *dto.ClientTypeResponseDto {
	return &dto.ClientTypeResponseDto{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}
