package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SkillList
		wantErr bool
	}{
		{name: "array", input: `["Go","SQL"]`, want: SkillList{"Go", "SQL"}},
		{name: "single string", input: `"Go"`, want: SkillList{"Go"}},
		{name: "empty array", input: `[]`, want: SkillList{}},
		{name: "number", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SkillList
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleFaculty.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestApplicationStatus_Decision(t *testing.T) {
	assert.True(t, StatusAccepted.Decision())
	assert.True(t, StatusRejected.Decision())
	assert.False(t, StatusPending.Decision())
	assert.False(t, ApplicationStatus("Waitlisted").Decision())
}
