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
	"go.mongodb.org/mongo-driver/mongo"
)

func newStaffFixture(t *testing.T) (*StaffMemberService, *fakeStaffStore) {
	t.Helper()
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)
	staff := newFakeStaffStore()
	return NewStaffMemberService(trace, staff), staff
}

func TestCreateStaffMemberDefaultsActive(t *testing.T) {
	service, _ := newStaffFixture(t)

	view, err := service.CreateStaffMember(context.Background(), testOwner, &dto.CreateStaffMemberDto{
		Name:  "Bob Carer",
		Email: "bob@example.com",
	})
	require.NoError(t, err)

	assert.True(t, view.Active)
	assert.Equal(t, "Bob Carer", view.Name)
}

func TestCreateStaffMemberDuplicateEmailConflict(t *testing.T) {
	service, staff := newStaffFixture(t)
	staff.createErr = mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}

	_, err := service.CreateStaffMember(context.Background(), testOwner, &dto.CreateStaffMemberDto{
		Name:  "Bob Carer",
		Email: "bob@example.com",
	})
	assert.Equal(t, cErr.CONFLICT, appErrCode(t, err))
}

func TestUpdateStaffMemberMergePatch(t *testing.T) {
	service, staff := newStaffFixture(t)
	existing := staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer", Email: "bob@example.com", Active: true})

	inactive := false
	view, err := service.UpdateStaffMember(context.Background(), testOwner, existing.ID, &dto.UpdateStaffMemberDto{Active: &inactive})
	require.NoError(t, err)

	assert.False(t, view.Active)
	assert.Equal(t, "Bob Carer", view.Name, "untouched fields keep their value")
}

func TestDeleteStaffMemberRequiresArchivedFirst(t *testing.T) {
	service, staff := newStaffFixture(t)
	existing := staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer"})

	err := service.DeleteStaffMember(context.Background(), testOwner, existing.ID)
	assert.Equal(t, cErr.NOT_ARCHIVED, appErrCode(t, err))

	require.NoError(t, service.ArchiveStaffMember(context.Background(), testOwner, existing.ID))
	require.NoError(t, service.DeleteStaffMember(context.Background(), testOwner, existing.ID))
	assert.NotContains(t, staff.staff, existing.ID)
}

func TestArchiveStaffMemberIsTenantScoped(t *testing.T) {
	service, staff := newStaffFixture(t)
	existing := staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer"})

	err := service.ArchiveStaffMember(context.Background(), otherOwner, existing.ID)
	assert.Equal(t, cErr.NOT_FOUND, appErrCode(t, err))
	assert.False(t, staff.staff[existing.ID].Archived)
}
