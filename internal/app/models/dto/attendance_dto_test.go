package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBoolUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr bool
	}{
		{name: "json true", input: `true`, want: true},
		{name: "json false", input: `false`, want: false},
		{name: "string true", input: `"true"`, want: true},
		{name: "string false", input: `"false"`, want: false},
		{name: "other string", input: `"yes"`, wantErr: true},
		{name: "number", input: `1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b FlexBool
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bool(b))
		})
	}
}

func TestDailyRecordRequestUnmarshal(t *testing.T) {
	// Clients send present both as a boolean and as a string. An omitted
	// field stays nil so the service can tell it apart from false.
	payload := `[
		{"studentId": "S001", "date": "2024-05-01", "present": true},
		{"studentId": "S002", "date": "2024-05-01", "present": "false"},
		{"studentId": "S003", "date": "2024-05-01"}
	]`

	var records []DailyRecordRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Len(t, records, 3)
	require.NotNil(t, records[0].Present)
	assert.True(t, bool(*records[0].Present))
	require.NotNil(t, records[1].Present)
	assert.False(t, bool(*records[1].Present))
	assert.Nil(t, records[2].Present)
}
