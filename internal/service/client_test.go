package service

import (
	"context"
	"testing"

	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/model"
	"github.com/zungle102/shiftrec-sub000/internal/dto"
	cErr "github.com/zungle102/shiftrec-sub000/internal/pkg/error"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type clientFixture struct {
	service *ClientService
	clients *fakeClientStore
	types   *fakeClientTypeStore
}

func newClientFixture(t *testing.T) *clientFixture {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	clients := newFakeClientStore()
	types := newFakeClientTypeStore()
	return &clientFixture{
		service: NewClientService(trace, clients, types),
		clients: clients,
		types:   types,
	}
}

func TestCreateClientResolvesClientType(t *testing.T) {
	fx := newClientFixture(t)
	ndis := fx.types.add(&model.ClientType{OwnerEmail: testOwner, Name: "NDIS"})

	view, err := fx.service.CreateClient(context.Background(), testOwner, &dto.CreateClientDto{
		Name:         "Alice Doe",
		ClientTypeID: ndis.ID.Hex(),
	})
	require.NoError(t, err)

	assert.Equal(t, ndis.ID.Hex(), view.ClientTypeID)
	assert.Equal(t, "NDIS", view.ClientTypeName)
	assert.True(t, view.Active, "active defaults to true")
}

func TestCreateClientLegacyClientTypeAlias(t *testing.T) {
	fx := newClientFixture(t)
	ndis := fx.types.add(&model.ClientType{OwnerEmail: testOwner, Name: "NDIS"})

	view, err := fx.service.CreateClient(context.Background(), testOwner, &dto.CreateClientDto{
		Name:       "Alice Doe",
		ClientType: ndis.ID.Hex(),
	})
	require.NoError(t, err)

	assert.Equal(t, ndis.ID.Hex(), view.ClientTypeID)
}

func TestCreateClientRejectsForeignClientType(t *testing.T) {
	fx := newClientFixture(t)
	foreign := fx.types.add(&model.ClientType{OwnerEmail: otherOwner, Name: "Private"})

	_, err := fx.service.CreateClient(context.Background(), testOwner, &dto.CreateClientDto{
		Name:         "Alice Doe",
		ClientTypeID: foreign.ID.Hex(),
	})
	assert.Equal(t, cErr.INVALID_REFERENCE, appErrCode(t, err))
}

func TestCreateClientDuplicateNameConflict(t *testing.T) {
	fx := newClientFixture(t)
	fx.clients.createErr = mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}

	_, err := fx.service.CreateClient(context.Background(), testOwner, &dto.CreateClientDto{Name: "Alice Doe"})
	assert.Equal(t, cErr.CONFLICT, appErrCode(t, err))
}

func TestUpdateClientMergePatch(t *testing.T) {
	fx := newClientFixture(t)
	existing := fx.clients.add(&model.Client{OwnerEmail: testOwner, Name: "Alice Doe", Suburb: "Carlton", Active: true})

	newName := "Alice Smith"
	view, err := fx.service.UpdateClient(context.Background(), testOwner, existing.ID, &dto.UpdateClientDto{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", view.Name)
	assert.Equal(t, "Carlton", view.Suburb, "fields not in the patch keep their value")
}

func TestUpdateClientIsTenantScoped(t *testing.T) {
	fx := newClientFixture(t)
	existing := fx.clients.add(&model.Client{OwnerEmail: testOwner, Name: "Alice Doe"})

	newName := "hijacked"
	_, err := fx.service.UpdateClient(context.Background(), otherOwner, existing.ID, &dto.UpdateClientDto{Name: &newName})
	assert.Equal(t, cErr.NOT_FOUND, appErrCode(t, err))
	assert.Equal(t, "Alice Doe", fx.clients.clients[existing.ID].Name)
}

func TestArchiveClientIsIdempotent(t *testing.T) {
	fx := newClientFixture(t)
	existing := fx.clients.add(&model.Client{OwnerEmail: testOwner, Name: "Alice Doe"})

	require.NoError(t, fx.service.ArchiveClient(context.Background(), testOwner, existing.ID))
	require.Len(t, fx.clients.updates, 1)
	firstArchivedAt := fx.clients.clients[existing.ID].ArchivedAt
	require.NotNil(t, firstArchivedAt)

	require.NoError(t, fx.service.ArchiveClient(context.Background(), testOwner, existing.ID))
	assert.Len(t, fx.clients.updates, 1, "second archive must not write again")
	assert.Equal(t, firstArchivedAt, fx.clients.clients[existing.ID].ArchivedAt)
}

func TestRestoreClientClearsArchivedAt(t *testing.T) {
	fx := newClientFixture(t)
	existing := fx.clients.add(&model.Client{OwnerEmail: testOwner, Name: "Alice Doe"})

	require.NoError(t, fx.service.ArchiveClient(context.Background(), testOwner, existing.ID))
	require.NoError(t, fx.service.RestoreClient(context.Background(), testOwner, existing.ID))

	assert.False(t, fx.clients.clients[existing.ID].Archived)
	assert.Nil(t, fx.clients.clients[existing.ID].ArchivedAt)
}

func TestRestoreClientNotFound(t *testing.T) {
	fx := newClientFixture(t)

	err := fx.service.RestoreClient(context.Background(), testOwner, primitive.NewObjectID())
	assert.Equal(t, cErr.NOT_FOUND, appErrCode(t, err))
}

func TestDeleteClientRequiresArchivedFirst(t *testing.T) {
	fx := newClientFixture(t)
	existing := fx.clients.add(&model.Client{OwnerEmail: testOwner, Name: "Alice Doe"})

	err := fx.service.DeleteClient(context.Background(), testOwner, existing.ID)
	assert.Equal(t, cErr.NOT_ARCHIVED, appErrCode(t, err))
	assert.Contains(t, fx.clients.clients, existing.ID)

	require.NoError(t, fx.service.ArchiveClient(context.Background(), testOwner, existing.ID))
	require.NoError(t, fx.service.DeleteClient(context.Background(), testOwner, existing.ID))
	assert.NotContains(t, fx.clients.clients, existing.ID)
}

func TestListClientsExcludesArchivedByDefault(t *testing.T) {
	fx := newClientFixture(t)
	fx.clients.add(&model.Client{OwnerEmail: testOwner, Name: "Visible"})
	archived := fx.clients.add(&model.Client{OwnerEmail: testOwner, Name: "Hidden"})
	require.NoError(t, fx.service.ArchiveClient(context.Background(), testOwner, archived.ID))

	result, err := fx.service.ListClients(context.Background(), testOwner, false, 1, 50)
	require.NoError(t, err)
	require.Len(t, result.Clients, 1)
	assert.Equal(t, "Visible", result.Clients[0].Name)

	all, err := fx.service.ListClients(context.Background(), testOwner, true, 1, 50)
	require.NoError(t, err)
	assert.Len(t, all.Clients, 2)
}
