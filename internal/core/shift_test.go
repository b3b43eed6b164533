package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeShiftStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   ShiftStatus
		wantOK bool
	}{
		{"Drafted", ShiftStatusDrafted, true},
		{"Published", ShiftStatusPublished, true},
		{"Pending", ShiftStatusPublished, true}, // 舊版別名
		{"In Progress", ShiftStatusInProgress, true},
		{"Timesheet Submitted", ShiftStatusTimesheetSubmitted, true},
		{"pending", "", false}, // 大小寫敏感
		{"published", "", false},
		{"Done", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeShiftStatus(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShiftStatusTimestampFieldsCoverAllButDrafted(t *testing.T) {
	for _, status := range ShiftStatuses {
		field, ok := ShiftStatusTimestampFields[status]
		if status == ShiftStatusDrafted {
			assert.False(t, ok, "Drafted has no timestamp field")
			continue
		}
		assert.True(t, ok, "status %q must map to a timestamp field", status)
		assert.NotEmpty(t, field)
	}
}
