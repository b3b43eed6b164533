package service

import (
	"context"
	"testing"

	"github.com/zungle102/shiftrec-sub000/internal/core"
	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/model"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummaryAggregatesStatusCounts(t *testing.T) {
	trace, err := telemetry.NewTrace(nil)
	require.NoError(t, err)

	shiftStore := newFakeShiftStore()
	clients := newFakeClientStore()
	staff := newFakeStaffStore()
	service := NewDashboardService(trace, shiftStore, clients, staff)

	for _, status := range []core.ShiftStatus{
		core.ShiftStatusDrafted,
		core.ShiftStatusDrafted,
		core.ShiftStatusPublished,
		core.ShiftStatusCompleted,
	} {
		_, createErr := shiftStore.Create(context.Background(), &model.Shift{
			OwnerEmail:  testOwner,
			ServiceDate: "2026-09-01", StartTime: "09:00", EndTime: "17:00",
			Status: status,
		})
		require.NoError(t, createErr)
	}
	clients.add(&model.Client{OwnerEmail: testOwner, Name: "Alice Doe"})
	staff.add(&model.StaffMember{OwnerEmail: testOwner, Name: "Bob Carer"})

	summary, err := service.Summary(context.Background(), testOwner)
	require.NoError(t, err)

	assert.Equal(t, int64(4), summary.TotalShifts)
	assert.Equal(t, int64(2), summary.ShiftsByStatus[string(core.ShiftStatusDrafted)])
	assert.Equal(t, int64(1), summary.ShiftsByStatus[string(core.ShiftStatusPublished)])
	assert.Equal(t, int64(1), summary.ShiftsByStatus[string(core.ShiftStatusCompleted)])
	assert.Equal(t, int64(1), summary.TotalClients)
	assert.Equal(t, int64(1), summary.TotalStaff)
}
