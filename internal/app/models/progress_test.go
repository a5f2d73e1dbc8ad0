package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferStatus(t *testing.T) {
	tests := []struct {
		name       string
		percentage int
		explicit   ProgressStatus
		expected   ProgressStatus
	}{
		{name: "zero percent infers not started", percentage: 0, explicit: "", expected: StatusNotStarted},
		{name: "partial percent infers in progress", percentage: 1, explicit: "", expected: StatusInProgress},
		{name: "mid percent infers in progress", percentage: 55, explicit: "", expected: StatusInProgress},
		{name: "full percent infers completed", percentage: 100, explicit: "", expected: StatusCompleted},
		{name: "explicit status wins over percentage", percentage: 100, explicit: StatusInProgress, expected: StatusInProgress},
		{name: "explicit regression is accepted", percentage: 0, explicit: StatusInProgress, expected: StatusInProgress},
		{name: "explicit completed at zero percent", percentage: 0, explicit: StatusCompleted, expected: StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferStatus(tt.percentage, tt.explicit))
		})
	}
}

func TestRoleTypeValid(t *testing.T) {
	assert.True(t, RoleEmployee.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, RoleType("manager").Valid())
	assert.False(t, RoleType("").Valid())
}

func TestProgressStatusValid(t *testing.T) {
	assert.True(t, StatusNotStarted.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, ProgressStatus("paused").Valid())
}
