package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateShiftDtoNormalizeLegacyAliases(t *testing.T) {
	tests := []struct {
		name         string
		input        CreateShiftDto
		wantStaff    string
		wantNotified []string
	}{
		{
			name:         "legacy teamMemberId fills staffMemberId",
			input:        CreateShiftDto{TeamMemberID: "abc"},
			wantStaff:    "abc",
			wantNotified: nil,
		},
		{
			name:      "new field wins over legacy",
			input:     CreateShiftDto{StaffMemberID: "new", TeamMemberID: "old"},
			wantStaff: "new",
		},
		{
			name:         "legacy notified list fills new list",
			input:        CreateShiftDto{NotifiedTeamMemberIDs: []string{"a", "b"}},
			wantNotified: []string{"a", "b"},
		},
		{
			name:         "empty new notified list blocks legacy fallback",
			input:        CreateShiftDto{NotifiedStaffMemberIDs: []string{}, NotifiedTeamMemberIDs: []string{"a"}},
			wantNotified: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Normalize()
			assert.Equal(t, tt.wantStaff, tt.input.StaffMemberID)
			assert.Equal(t, tt.wantNotified, tt.input.NotifiedStaffMemberIDs)
		})
	}
}

func TestCreateShiftDtoNormalizeIsIdempotent(t *testing.T) {
	input := CreateShiftDto{TeamMemberID: "abc"}
	input.Normalize()
	input.Normalize()
	assert.Equal(t, "abc", input.StaffMemberID)
}

func TestUpdateShiftDtoNormalizeLegacyAliases(t *testing.T) {
	legacy := "old"
	current := "new"
	legacyList := []string{"a"}

	t.Run("legacy pointer fills missing new field", func(t *testing.T) {
		input := UpdateShiftDto{TeamMemberID: &legacy}
		input.Normalize()
		assert.Equal(t, &legacy, input.StaffMemberID)
	})

	t.Run("new pointer wins", func(t *testing.T) {
		input := UpdateShiftDto{StaffMemberID: &current, TeamMemberID: &legacy}
		input.Normalize()
		assert.Equal(t, &current, input.StaffMemberID)
	})

	t.Run("legacy notified list maps across", func(t *testing.T) {
		input := UpdateShiftDto{NotifiedTeamMemberIDs: &legacyList}
		input.Normalize()
		assert.Equal(t, &legacyList, input.NotifiedStaffMemberIDs)
	})

	t.Run("absent on both sides stays absent", func(t *testing.T) {
		input := UpdateShiftDto{}
		input.Normalize()
		assert.Nil(t, input.StaffMemberID)
		assert.Nil(t, input.NotifiedStaffMemberIDs)
	})
}
