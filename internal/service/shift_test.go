package service

import (
	"context"
	"testing"
	"time"

	"github.com/zungle102/shiftrec-sub000/internal/core"
	fluentdModel "github.com/zungle102/shiftrec-sub000/internal/database/fluentd/model"
	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/model"
	"github.com/zungle102/shiftrec-sub000/internal/dto"
	cErr "github.com/zungle102/shiftrec-sub000/internal/pkg/error"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	testOwner  = "owner@example.com"
	otherOwner = "intruder@example.com"
)

// ─── in-memory fakes ───────────────────────────────────────────────────────────

type fakeShiftStore struct {
	shifts  map[primitive.ObjectID]*model.Shift
	updates []bson.M
	listed  []core.ListOptions
}

func newFakeShiftStore() *fakeShiftStore {
	return &fakeShiftStore{shifts: map[primitive.ObjectID]*model.Shift{}}
}

func (f *fakeShiftStore) Create(_ context.Context, shift *model.Shift) (*model.Shift, error) {
	if shift.ID.IsZero() {
		shift.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	shift.CreatedAt = now
	shift.UpdatedAt = now
	stored := *shift
	f.shifts[shift.ID] = &stored
	return shift, nil
}

func (f *fakeShiftStore) GetByID(_ context.Context, ownerEmail string, id primitive.ObjectID) (*model.Shift, error) {
	shift, ok := f.shifts[id]
	if !ok || shift.OwnerEmail != ownerEmail {
		return nil, mongo.ErrNoDocuments
	}
	copied := *shift
	return &copied, nil
}

func (f *fakeShiftStore) List(_ context.Context, opts core.ListOptions) ([]*model.Shift, error) {
	f.listed = append(f.listed, opts)
	var out []*model.Shift
	for _, shift := range f.shifts {
		if owner, ok := opts.Filter["ownerEmail"].(string); ok && shift.OwnerEmail != owner {
			continue
		}
		if archived, ok := opts.Filter["archived"].(bool); ok && shift.Archived != archived {
			continue
		}
		copied := *shift
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeShiftStore) UpdateByID(_ context.Context, ownerEmail string, id primitive.ObjectID, update bson.M) (int64, error) {
	shift, ok := f.shifts[id]
	if !ok || shift.OwnerEmail != ownerEmail {
		return 0, nil
	}
	f.updates = append(f.updates, update)
	if set, ok := update["$set"].(bson.M); ok {
		if archived, ok := set["archived"].(bool); ok {
			shift.Archived = archived
		}
		if archivedAt, ok := set["archivedAt"].(time.Time); ok {
			shift.ArchivedAt = &archivedAt
		}
		if status, ok := set["status"].(core.ShiftStatus); ok {
			shift.Status = status
		}
	}
	if unset, ok := update["$unset"].(bson.M); ok {
		if _, ok := unset["archivedAt"]; ok {
			shift.ArchivedAt = nil
		}
		if _, ok := unset["assignedStaffMemberId"]; ok {
			shift.AssignedStaffMemberID = nil
		}
	}
	return 1, nil
}

func (f *fakeShiftStore) DeleteByID(_ context.Context, ownerEmail string, id primitive.ObjectID) (int64, error) {
	shift, ok := f.shifts[id]
	if !ok || shift.OwnerEmail != ownerEmail {
		return 0, nil
	}
	delete(f.shifts, id)
	return 1, nil
}

func (f *fakeShiftStore) Count(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(f.shifts)), nil
}

func (f *fakeShiftStore) CountByStatus(_ context.Context, _ bson.M) (map[core.ShiftStatus]int64, error) {
	counts := map[core.ShiftStatus]int64{}
	for _, shift := range f.shifts {
		if !shift.Archived {
			counts[shift.Status]++
		}
	}
	return counts, nil
}

type fakeClientStore struct {
	clients     map[primitive.ObjectID]*model.Client
	updates     []bson.M
	createErr   error
	updateErr   error
	findByIDs   int
	findByNames int
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: map[primitive.ObjectID]*model.Client{}}
}

func (f *fakeClientStore) add(client *model.Client) *model.Client {
	if client.ID.IsZero() {
		client.ID = primitive.NewObjectID()
	}
	f.clients[client.ID] = client
	return client
}

func (f *fakeClientStore) Create(_ context.Context, client *model.Client) (*model.Client, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now
	return f.add(client), nil
}

func (f *fakeClientStore) GetByID(_ context.Context, ownerEmail string, id primitive.ObjectID) (*model.Client, error) {
	client, ok := f.clients[id]
	if !ok || client.OwnerEmail != ownerEmail {
		return nil, mongo.ErrNoDocuments
	}
	return client, nil
}

func (f *fakeClientStore) List(_ context.Context, opts core.ListOptions) ([]*model.Client, error) {
	var out []*model.Client
	for _, client := range f.clients {
		if owner, ok := opts.Filter["ownerEmail"].(string); ok && client.OwnerEmail != owner {
			continue
		}
		if archived, ok := opts.Filter["archived"].(bool); ok && client.Archived != archived {
			continue
		}
		copied := *client
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeClientStore) FindByIDs(_ context.Context, ownerEmail string, ids []primitive.ObjectID) ([]*model.Client, error) {
	f.findByIDs++
	var out []*model.Client
	for _, id := range ids {
		if client, ok := f.clients[id]; ok && client.OwnerEmail == ownerEmail {
			out = append(out, client)
		}
	}
	return out, nil
}

func (f *fakeClientStore) FindByNames(_ context.Context, ownerEmail string, names []string) ([]*model.Client, error) {
	f.findByNames++
	var out []*model.Client
	for _, name := range names {
		for _, client := range f.clients {
			if client.OwnerEmail == ownerEmail && client.Name == name {
				out = append(out, client)
			}
		}
	}
	return out, nil
}

func (f *fakeClientStore) Count(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(f.clients)), nil
}

func (f *fakeClientStore) UpdateByID(_ context.Context, ownerEmail string, id primitive.ObjectID, update bson.M) (int64, error) {
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	client, ok := f.clients[id]
	if !ok || client.OwnerEmail != ownerEmail {
		return 0, nil
	}
	f.updates = append(f.updates, update)
	if set, ok := update["$set"].(bson.M); ok {
		if name, ok := set["name"].(string); ok {
			client.Name = name
		}
		if archived, ok := set["archived"].(bool); ok {
			client.Archived = archived
		}
		if archivedAt, ok := set["archivedAt"].(time.Time); ok {
			client.ArchivedAt = &archivedAt
		}
		if clientTypeID, ok := set["clientTypeId"].(*primitive.ObjectID); ok {
			client.ClientTypeID = clientTypeID
		}
	}
	if unset, ok := update["$unset"].(bson.M); ok {
		if _, ok := unset["archivedAt"]; ok {
			client.ArchivedAt = nil
		}
	}
	return 1, nil
}

func (f *fakeClientStore) DeleteByID(_ context.Context, ownerEmail string, id primitive.ObjectID) (int64, error) {
	client, ok := f.clients[id]
	if !ok || client.OwnerEmail != ownerEmail {
		return 0, nil
	}
	delete(f.clients, id)
	return 1, nil
}

type fakeStaffStore struct {
	staff     map[primitive.ObjectID]*model.StaffMember
	updates   []bson.M
	createErr error
	findByIDs int
}

func newFakeStaffStore() *fakeStaffStore {
	return &fakeStaffStore{staff: map[primitive.ObjectID]*model.StaffMember{}}
}

func (f *fakeStaffStore) add(staffMember *model.StaffMember) *model.StaffMember {
	if staffMember.ID.IsZero() {
		staffMember.ID = primitive.NewObjectID()
	}
	f.staff[staffMember.ID] = staffMember
	return staffMember
}

func (f *fakeStaffStore) Create(_ context.Context, staffMember *model.StaffMember) (*model.StaffMember, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	now := time.Now().UTC()
	staffMember.CreatedAt = now
	staffMember.UpdatedAt = now
	return f.add(staffMember), nil
}

func (f *fakeStaffStore) GetByID(_ context.Context, ownerEmail string, id primitive.ObjectID) (*model.StaffMember, error) {
	staffMember, ok := f.staff[id]
	if !ok || staffMember.OwnerEmail != ownerEmail {
		return nil, mongo.ErrNoDocuments
	}
	return staffMember, nil
}

func (f *fakeStaffStore) List(_ context.Context, opts core.ListOptions) ([]*model.StaffMember, error) {
	var out []*model.StaffMember
	for _, staffMember := range f.staff {
		if owner, ok := opts.Filter["ownerEmail"].(string); ok && staffMember.OwnerEmail != owner {
			continue
		}
		if archived, ok := opts.Filter["archived"].(bool); ok && staffMember.Archived != archived {
			continue
		}
		copied := *staffMember
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeStaffStore) FindByIDs(_ context.Context, ownerEmail string, ids []primitive.ObjectID) ([]*model.StaffMember, error) {
	f.findByIDs++
	var out []*model.StaffMember
	for _, id := range ids {
		if staffMember, ok := f.staff[id]; ok && staffMember.OwnerEmail == ownerEmail {
			out = append(out, staffMember)
		}
	}
	return out, nil
}

func (f *fakeStaffStore) FindByNames(_ context.Context, _ string, _ []string) ([]*model.StaffMember, error) {
	return nil, nil
}

func (f *fakeStaffStore) Count(_ context.Context, _ bson.M) (int64, error) {
	return int64(len(f.staff)), nil
}

func (f *fakeStaffStore) UpdateByID(_ context.Context, ownerEmail string, id primitive.ObjectID, update bson.M) (int64, error) {
	staffMember, ok := f.staff[id]
	if !ok || staffMember.OwnerEmail != ownerEmail {
		return 0, nil
	}
	f.updates = append(f.updates, update)
	if set, ok := update["$set"].(bson.M); ok {
		if name, ok := set["name"].(string); ok {
			staffMember.Name = name
		}
		if active, ok := set["active"].(bool); ok {
			staffMember.Active = active
		}
		if archived, ok := set["archived"].(bool); ok {
			staffMember.Archived = archived
		}
		if archivedAt, ok := set["archivedAt"].(time.Time); ok {
			staffMember.ArchivedAt = &archivedAt
		}
	}
	if unset, ok := update["$unset"].(bson.M); ok {
		if _, ok := unset["archivedAt"]; ok {
			staffMember.ArchivedAt = nil
		}
	}
	return 1, nil
}

func (f *fakeStaffStore) DeleteByID(_ context.Context, ownerEmail string, id primitive.ObjectID) (int64, error) {
	staffMember, ok := f.staff[id]
	if !ok || staffMember.OwnerEmail != ownerEmail {
		return 0, nil
	}
	delete(f.staff, id)
	return 1, nil
}

type fakeClientTypeStore struct {
	clientTypes map[primitive.ObjectID]*model.ClientType
}

func newFakeClientTypeStore() *fakeClientTypeStore {
	return &fakeClientTypeStore{clientTypes: map[primitive.ObjectID]*model.ClientType{}}
}

func (f *fakeClientTypeStore) add(clientType *model.ClientType) *model.ClientType {
	if clientType.ID.IsZero() {
		clientType.ID = primitive.NewObjectID()
	}
	f.clientTypes[clientType.ID] = clientType
	return clientType
}

func (f *fakeClientTypeStore) Create(_ context.Context, clientType *model.ClientType) (*model.ClientType, error) {
	return f.add(clientType), nil
}

func (f *fakeClientTypeStore) GetByID(_ context.Context, ownerEmail string, id primitive.ObjectID) (*model.ClientType, error) {
	clientType, ok := f.clientTypes[id]
	if !ok || clientType.OwnerEmail != ownerEmail {
		return nil, mongo.ErrNoDocuments
	}
	return clientType, nil
}

func (f *fakeClientTypeStore) List(_ context.Context, _ string) ([]*model.ClientType, error) {
	return nil, nil
}

func (f *fakeClientTypeStore) FindByIDs(_ context.Context, ownerEmail string, ids []primitive.ObjectID) ([]*model.ClientType, error) {
	var out []*model.ClientType
	for _, id := range ids {
		if clientType, ok := f.clientTypes[id]; ok && clientType.OwnerEmail == ownerEmail {
			out = append(out, clientType)
		}
	}
	return out, nil
}

func (f *fakeClientTypeStore) UpdateByID(_ context.Context, _ string, _ primitive.ObjectID, _ bson.M) (int64, error) {
	return 1, nil
}

func (f *fakeClientTypeStore) DeleteByID(_ context.Context, _ string, _ primitive.ObjectID) (int64, error) {
	return 1, nil
}

type fakeAuditStore struct {
	entries []fluentdModel.ShiftAuditLog
}

func (f *fakeAuditStore) LogAudit(_ context.Context, audit fluentdModel.ShiftAuditLog) error {
	f.entries = append(f.entries, audit)
	return nil
}

// ─── fixture ──────────────────────────────────────────────────────────────────

type shiftFixture struct {
	service    *ShiftService
	shiftStore *fakeShiftStore
	clients    *fakeClientStore
	staff      *fakeStaffStore
	types      *fakeClientTypeStore
	audit      *fakeAuditStore
	client     *model.Client
}

func newShiftFixture(t *testing.T) *shiftFixture {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)

	shiftStore := newFakeShiftStore()
	clients := newFakeClientStore()
	staff := newFakeStaffStore()
	types := newFakeClientTypeStore()
	audit := &fakeAuditStore{}

	client := clients.add(&model.Client{OwnerEmail: testOwner, Name: "Alice Doe", Active: true})

	return &shiftFixture{
		service:    NewShiftService(trace, &telemetry.Metric{}, shiftStore, clients, staff, types, audit),
		shiftStore: shiftStore,
		clients:    clients,
		staff:      staff,
		types:      types,
		audit:      audit,
		client:     client,
	}
}

func (fx *shiftFixture) createShift(t *testing.T, input *dto.CreateShiftDto) *dto.ShiftResponseDto {
	t.Helper()
	if input.ServiceDate == "" {
		input.ServiceDate = "2026-09-01"
	}
	if input.StartTime == "" {
		input.StartTime = "09:00"
	}
	if input.EndTime == "" {
		input.EndTime = "17:00"
	}
	if input.ClientID == "" {
		input.ClientID = fx.client.ID.Hex()
	}
	view, err := fx.service.CreateShift(context.Background(), testOwner, input)
	require.NoError(t, err)
	return view
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*cErr.Error)
	require.True(t, ok, "expected *cErr.Error, got %T", err)
	return appErr.ErrorCode()
}

// ─── create ───────────────────────────────────────────────────────────────────

func TestCreateShiftDefaultsToDrafted(t *testing.T) {
	fx := newShiftFixture(t)

	view := fx.createShift(t, &dto.CreateShiftDto{})

	assert.Equal(t, core.ShiftStatusDrafted, view.Status)
	assert.Empty(t, view.AssignedAt)
	assert.Equal(t, "Alice Doe", view.ClientName)
}

func TestCreateShiftImplicitAssignedWhenStaffSupplied(t *testing.T) {
	fx := newShiftFixture(t)
	staffMember := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer", Active: true})

	view := fx.createShift(t, &dto.CreateShiftDto{StaffMemberID: staffMember.ID.Hex()})

	assert.Equal(t, core.ShiftStatusAssigned, view.Status)
	assert.Equal(t, staffMember.ID.Hex(), view.StaffMemberID)
	assert.Equal(t, "Bob Carer", view.StaffMemberName)
	assert.NotEmpty(t, view.AssignedAt)
}

func TestCreateShiftExplicitStatusBeatsImplicitAssignment(t *testing.T) {
	fx := newShiftFixture(t)
	staffMember := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer", Active: true})

	view := fx.createShift(t, &dto.CreateShiftDto{
		StaffMemberID: staffMember.ID.Hex(),
		Status:        string(core.ShiftStatusPublished),
	})

	assert.Equal(t, core.ShiftStatusPublished, view.Status)
	assert.NotEmpty(t, view.PublishedAt)
	assert.Empty(t, view.AssignedAt)
}

func TestCreateShiftAcceptsPendingAlias(t *testing.T) {
	fx := newShiftFixture(t)

	view := fx.createShift(t, &dto.CreateShiftDto{Status: "Pending"})

	assert.Equal(t, core.ShiftStatusPublished, view.Status)
	assert.NotEmpty(t, view.PublishedAt)
}

func TestCreateShiftRejectsUnknownStatus(t *testing.T) {
	fx := newShiftFixture(t)

	_, err := fx.service.CreateShift(context.Background(), testOwner, &dto.CreateShiftDto{
		ServiceDate: "2026-09-01", StartTime: "09:00", EndTime: "17:00",
		ClientID: fx.client.ID.Hex(),
		Status:   "Half Done",
	})

	assert.Equal(t, cErr.BAD_REQUEST_BODY, appErrCode(t, err))
}

func TestCreateShiftRejectsForeignClient(t *testing.T) {
	fx := newShiftFixture(t)
	foreign := fx.clients.add(&model.Client{OwnerEmail: otherOwner, Name: "Not Yours"})

	_, err := fx.service.CreateShift(context.Background(), testOwner, &dto.CreateShiftDto{
		ServiceDate: "2026-09-01", StartTime: "09:00", EndTime: "17:00",
		ClientID: foreign.ID.Hex(),
	})

	assert.Equal(t, cErr.INVALID_REFERENCE, appErrCode(t, err))
}

func TestCreateShiftStaffValidationIsAllOrNothing(t *testing.T) {
	fx := newShiftFixture(t)
	known := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer"})
	unknown := primitive.NewObjectID()

	_, err := fx.service.CreateShift(context.Background(), testOwner, &dto.CreateShiftDto{
		ServiceDate: "2026-09-01", StartTime: "09:00", EndTime: "17:00",
		ClientID:               fx.client.ID.Hex(),
		NotifiedStaffMemberIDs: []string{known.ID.Hex(), unknown.Hex()},
	})

	assert.Equal(t, cErr.INVALID_REFERENCE, appErrCode(t, err))
	assert.Empty(t, fx.shiftStore.shifts, "nothing should be persisted")
}

func TestCreateShiftLegacyTeamMemberAlias(t *testing.T) {
	fx := newShiftFixture(t)
	staffMember := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer"})

	view := fx.createShift(t, &dto.CreateShiftDto{TeamMemberID: staffMember.ID.Hex()})

	assert.Equal(t, staffMember.ID.Hex(), view.StaffMemberID)
	assert.Equal(t, core.ShiftStatusAssigned, view.Status)
}

func TestCreateShiftNewFieldWinsOverLegacyAlias(t *testing.T) {
	fx := newShiftFixture(t)
	current := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Current"})
	legacy := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Legacy"})

	view := fx.createShift(t, &dto.CreateShiftDto{
		StaffMemberID: current.ID.Hex(),
		TeamMemberID:  legacy.ID.Hex(),
	})

	assert.Equal(t, current.ID.Hex(), view.StaffMemberID)
}

// ─── update / status lifecycle ────────────────────────────────────────────────

func TestUpdateShiftStatusChangeStampsTimestamp(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	status := string(core.ShiftStatusPublished)
	view, err := fx.service.UpdateShift(context.Background(), testOwner, shiftID, &dto.UpdateShiftDto{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, core.ShiftStatusPublished, view.Status)
	assert.NotEmpty(t, view.PublishedAt)

	require.Len(t, fx.shiftStore.updates, 1)
	set := fx.shiftStore.updates[0]["$set"].(bson.M)
	assert.Contains(t, set, "publishedAt")

	// 狀態轉換留審計軌跡（建立算一筆）
	require.Len(t, fx.audit.entries, 2)
	assert.Equal(t, "status_change", fx.audit.entries[1].Action)
	assert.Equal(t, string(core.ShiftStatusDrafted), fx.audit.entries[1].FromStatus)
	assert.Equal(t, string(core.ShiftStatusPublished), fx.audit.entries[1].ToStatus)
}

func TestUpdateShiftSameStatusDoesNotRestamp(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{Status: string(core.ShiftStatusPublished)})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	// 重送相同狀態：不算改變，不蓋章、不寫狀態
	status := string(core.ShiftStatusPublished)
	_, err = fx.service.UpdateShift(context.Background(), testOwner, shiftID, &dto.UpdateShiftDto{Status: &status})
	require.NoError(t, err)

	assert.Empty(t, fx.shiftStore.updates, "same-status resend must not write")
}

func TestUpdateShiftStatusReversionRestamps(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{Status: string(core.ShiftStatusPublished)})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	confirmed := string(core.ShiftStatusConfirmed)
	_, err = fx.service.UpdateShift(context.Background(), testOwner, shiftID, &dto.UpdateShiftDto{Status: &confirmed})
	require.NoError(t, err)

	// 回到 Published：一樣算改變，要重新蓋 publishedAt
	published := string(core.ShiftStatusPublished)
	_, err = fx.service.UpdateShift(context.Background(), testOwner, shiftID, &dto.UpdateShiftDto{Status: &published})
	require.NoError(t, err)

	require.Len(t, fx.shiftStore.updates, 2)
	set := fx.shiftStore.updates[1]["$set"].(bson.M)
	assert.Contains(t, set, "publishedAt")
	assert.Equal(t, core.ShiftStatusPublished, set["status"])
}

func TestUpdateShiftImplicitAssignmentOnStaffPatch(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{Status: string(core.ShiftStatusPublished)})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)
	staffMember := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer"})

	staffHex := staffMember.ID.Hex()
	view, err := fx.service.UpdateShift(context.Background(), testOwner, shiftID, &dto.UpdateShiftDto{StaffMemberID: &staffHex})
	require.NoError(t, err)

	assert.Equal(t, core.ShiftStatusAssigned, view.Status)
	assert.NotEmpty(t, view.AssignedAt)
}

func TestUpdateShiftExplicitStatusSuppressesImplicitAssignment(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)
	staffMember := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer"})

	staffHex := staffMember.ID.Hex()
	confirmed := string(core.ShiftStatusConfirmed)
	view, err := fx.service.UpdateShift(context.Background(), testOwner, shiftID, &dto.UpdateShiftDto{
		StaffMemberID: &staffHex,
		Status:        &confirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, core.ShiftStatusConfirmed, view.Status)
	assert.Empty(t, view.AssignedAt)
}

func TestUpdateShiftBlankStaffClearsAssignmentWithoutTransition(t *testing.T) {
	fx := newShiftFixture(t)
	staffMember := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer"})
	created := fx.createShift(t, &dto.CreateShiftDto{StaffMemberID: staffMember.ID.Hex()})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	blank := ""
	view, err := fx.service.UpdateShift(context.Background(), testOwner, shiftID, &dto.UpdateShiftDto{StaffMemberID: &blank})
	require.NoError(t, err)

	assert.Empty(t, view.StaffMemberID)
	assert.Equal(t, core.ShiftStatusAssigned, view.Status, "clearing assignment must not change status")

	require.Len(t, fx.shiftStore.updates, 1)
	unset := fx.shiftStore.updates[0]["$unset"].(bson.M)
	assert.Contains(t, unset, "assignedStaffMemberId")
}

func TestUpdateShiftNotifiedListFullReplace(t *testing.T) {
	fx := newShiftFixture(t)
	first := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "First"})
	created := fx.createShift(t, &dto.CreateShiftDto{NotifiedStaffMemberIDs: []string{first.ID.Hex()}})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	// 空清單一樣是「有給」，整組清空
	empty := []string{}
	view, err := fx.service.UpdateShift(context.Background(), testOwner, shiftID, &dto.UpdateShiftDto{NotifiedStaffMemberIDs: &empty})
	require.NoError(t, err)

	assert.Empty(t, view.NotifiedStaffMemberIDs)
	require.Len(t, fx.shiftStore.updates, 1)
	set := fx.shiftStore.updates[0]["$set"].(bson.M)
	assert.Contains(t, set, "notifiedStaffMemberIds")
}

func TestUpdateShiftEmptyPatchSkipsWrite(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	view, err := fx.service.UpdateShift(context.Background(), testOwner, shiftID, &dto.UpdateShiftDto{})
	require.NoError(t, err)

	assert.Equal(t, created.ID, view.ID)
	assert.Empty(t, fx.shiftStore.updates)
}

// ─── tenant isolation ─────────────────────────────────────────────────────────

func TestGetShiftIsTenantScoped(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	_, err = fx.service.GetShift(context.Background(), otherOwner, shiftID)
	assert.Equal(t, cErr.NOT_FOUND, appErrCode(t, err), "foreign tenant must see not-found, not forbidden")

	view, err := fx.service.GetShift(context.Background(), testOwner, shiftID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, view.ID)
}

func TestUpdateShiftIsTenantScoped(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	note := "hijacked"
	_, err = fx.service.UpdateShift(context.Background(), otherOwner, shiftID, &dto.UpdateShiftDto{Note: &note})
	assert.Equal(t, cErr.NOT_FOUND, appErrCode(t, err))
}

// ─── archive / restore / delete ───────────────────────────────────────────────

func TestArchiveShiftIsIdempotent(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	require.NoError(t, fx.service.ArchiveShift(context.Background(), testOwner, shiftID))
	require.Len(t, fx.shiftStore.updates, 1)

	// 已封存再封存：成功但不再寫入（archivedAt 不得重蓋）
	require.NoError(t, fx.service.ArchiveShift(context.Background(), testOwner, shiftID))
	assert.Len(t, fx.shiftStore.updates, 1)
}

func TestRestoreShiftClearsArchivedAt(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	require.NoError(t, fx.service.ArchiveShift(context.Background(), testOwner, shiftID))
	require.NoError(t, fx.service.RestoreShift(context.Background(), testOwner, shiftID))

	stored := fx.shiftStore.shifts[shiftID]
	assert.False(t, stored.Archived)
	assert.Nil(t, stored.ArchivedAt)
}

func TestDeleteShiftRequiresArchivedFirst(t *testing.T) {
	fx := newShiftFixture(t)
	created := fx.createShift(t, &dto.CreateShiftDto{})
	shiftID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	err = fx.service.DeleteShift(context.Background(), testOwner, shiftID)
	assert.Equal(t, cErr.NOT_ARCHIVED, appErrCode(t, err))
	assert.Contains(t, fx.shiftStore.shifts, shiftID)

	require.NoError(t, fx.service.ArchiveShift(context.Background(), testOwner, shiftID))
	require.NoError(t, fx.service.DeleteShift(context.Background(), testOwner, shiftID))
	assert.NotContains(t, fx.shiftStore.shifts, shiftID)
}

// ─── list / reference resolution ──────────────────────────────────────────────

func TestListShiftsBatchesReferenceLookups(t *testing.T) {
	fx := newShiftFixture(t)
	staffMember := fx.staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer"})
	for i := 0; i < 3; i++ {
		fx.createShift(t, &dto.CreateShiftDto{StaffMemberID: staffMember.ID.Hex()})
	}
	fx.clients.findByIDs = 0
	fx.staff.findByIDs = 0

	result, err := fx.service.ListShifts(context.Background(), testOwner, ListShiftsQuery{Page: 1, Size: 50})
	require.NoError(t, err)

	assert.Len(t, result.Shifts, 3)
	assert.Equal(t, 1, fx.clients.findByIDs, "whole page must resolve clients with one batch query")
	assert.Equal(t, 1, fx.staff.findByIDs, "whole page must resolve staff with one batch query")
}

func TestListShiftsResolvesLegacyClientNameFallback(t *testing.T) {
	fx := newShiftFixture(t)
	// 舊世代文件：沒有 clientId，只有 clientName
	legacy := &model.Shift{
		OwnerEmail:  testOwner,
		ServiceDate: "2026-09-01", StartTime: "09:00", EndTime: "17:00",
		ClientName: "Alice Doe",
		Status:     core.ShiftStatusDrafted,
	}
	_, err := fx.shiftStore.Create(context.Background(), legacy)
	require.NoError(t, err)

	result, err := fx.service.ListShifts(context.Background(), testOwner, ListShiftsQuery{Page: 1, Size: 50})
	require.NoError(t, err)
	require.Len(t, result.Shifts, 1)

	view := result.Shifts[0]
	assert.Equal(t, fx.client.ID.Hex(), view.ClientID, "name fallback should surface the resolved client id")
	assert.Equal(t, "Alice Doe", view.ClientName)
}

func TestListShiftsDropsDanglingReferencesSilently(t *testing.T) {
	fx := newShiftFixture(t)
	ghostStaff := primitive.NewObjectID()
	shift := &model.Shift{
		OwnerEmail:  testOwner,
		ServiceDate: "2026-09-01", StartTime: "09:00", EndTime: "17:00",
		ClientID:              &fx.client.ID,
		AssignedStaffMemberID: &ghostStaff,
		Status:                core.ShiftStatusAssigned,
	}
	_, err := fx.shiftStore.Create(context.Background(), shift)
	require.NoError(t, err)

	result, err := fx.service.ListShifts(context.Background(), testOwner, ListShiftsQuery{Page: 1, Size: 50})
	require.NoError(t, err)
	require.Len(t, result.Shifts, 1)

	view := result.Shifts[0]
	assert.Equal(t, ghostStaff.Hex(), view.StaffMemberID, "id still shown")
	assert.Empty(t, view.StaffMemberName, "unresolvable reference drops display fields, not the shift")
}

func TestListShiftsExcludesArchivedByDefault(t *testing.T) {
	fx := newShiftFixture(t)
	keep := fx.createShift(t, &dto.CreateShiftDto{})
	archived := fx.createShift(t, &dto.CreateShiftDto{})
	archivedID, err := primitive.ObjectIDFromHex(archived.ID)
	require.NoError(t, err)
	require.NoError(t, fx.service.ArchiveShift(context.Background(), testOwner, archivedID))

	result, err := fx.service.ListShifts(context.Background(), testOwner, ListShiftsQuery{Page: 1, Size: 50})
	require.NoError(t, err)
	require.Len(t, result.Shifts, 1)
	assert.Equal(t, keep.ID, result.Shifts[0].ID)

	all, err := fx.service.ListShifts(context.Background(), testOwner, ListShiftsQuery{IncludeArchived: true, Page: 1, Size: 50})
	require.NoError(t, err)
	assert.Len(t, all.Shifts, 2)
}

func TestListShiftsValidatesDateRange(t *testing.T) {
	fx := newShiftFixture(t)

	_, err := fx.service.ListShifts(context.Background(), testOwner, ListShiftsQuery{DateFrom: "01/09/2026", Page: 1, Size: 50})
	assert.Equal(t, cErr.BAD_REQUEST_BODY, appErrCode(t, err))

	_, err = fx.service.ListShifts(context.Background(), testOwner, ListShiftsQuery{DateFrom: "2026-09-01", DateTo: "2026-09-30", Page: 1, Size: 50})
	require.NoError(t, err)
	require.Len(t, fx.shiftStore.listed, 1)
	assert.Equal(t, bson.M{"$gte": "2026-09-01", "$lte": "2026-09-30"}, fx.shiftStore.listed[0].Filter["serviceDate"])
}

func TestListShiftsClampsPagination(t *testing.T) {
	fx := newShiftFixture(t)
	fx.createShift(t, &dto.CreateShiftDto{})

	result, err := fx.service.ListShifts(context.Background(), testOwner, ListShiftsQuery{Page: 0, Size: 9999})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Page)
	assert.Equal(t, int64(50), result.Size)
	require.Len(t, fx.shiftStore.listed, 1)
	assert.Equal(t, int64(1), fx.shiftStore.listed[0].Page)
	assert.Equal(t, int64(50), fx.shiftStore.listed[0].Size)
}
