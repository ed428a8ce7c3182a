package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveOverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		results  []ChecklistResultInput
		expected InspectionStatus
	}{
		{
			name:     "all ok passes",
			results:  []ChecklistResultInput{{ChecklistItemID: 1, Status: ChecklistOK}, {ChecklistItemID: 2, Status: ChecklistOK}},
			expected: StatusPass,
		},
		{
			name:     "single defect fails",
			results:  []ChecklistResultInput{{ChecklistItemID: 1, Status: ChecklistOK}, {ChecklistItemID: 2, Status: ChecklistDefect}},
			expected: StatusFail,
		},
		{
			name:     "not applicable does not fail",
			results:  []ChecklistResultInput{{ChecklistItemID: 1, Status: ChecklistNotApplicable}},
			expected: StatusPass,
		},
		{
			name:     "empty results pass",
			results:  nil,
			expected: StatusPass,
		},
		{
			name:     "defect among not applicable fails",
			results:  []ChecklistResultInput{{ChecklistItemID: 1, Status: ChecklistNotApplicable}, {ChecklistItemID: 2, Status: ChecklistDefect}, {ChecklistItemID: 3, Status: ChecklistOK}},
			expected: StatusFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveOverallStatus(tt.results))
		})
	}
}

func TestShiftValid(t *testing.T) {
	assert.True(t, ShiftMorning.Valid())
	assert.True(t, ShiftAfternoon.Valid())
	assert.True(t, ShiftNight.Valid())
	assert.False(t, Shift("evening").Valid())
	assert.False(t, Shift("").Valid())
}

func TestInspectionStatusValid(t *testing.T) {
	assert.True(t, StatusPass.Valid())
	assert.True(t, StatusFail.Valid())
	assert.True(t, StatusNeedsAttention.Valid())
	assert.False(t, InspectionStatus("broken").Valid())
}

func TestChecklistStatusValid(t *testing.T) {
	assert.True(t, ChecklistOK.Valid())
	assert.True(t, ChecklistDefect.Valid())
	assert.True(t, ChecklistNotApplicable.Valid())
	assert.False(t, ChecklistStatus("n/a").Valid())
}
