package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    UID
		wantErr bool
	}{
		{name: "uuid string", in: `{"uid":"550e8400-e29b-41d4-a716-446655440000"}`, want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "number", in: `{"uid":42}`, want: "42"},
		{name: "null", in: `{"uid":null}`, want: ""},
		{name: "missing", in: `{"id":"user1"}`, want: ""},
		{name: "bool", in: `{"uid":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			err := json.Unmarshal([]byte(tt.in), &u)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.UID)
		})
	}
}

func TestRegistration_NicknameOmittedWhenEmpty(t *testing.T) {
	b, err := json.Marshal(Registration{ID: "abc", Password: "password1", Name: "A", PhoneNumber: "010", Email: "a@b.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc","password":"password1","name":"A","phoneNumber":"010","email":"a@b.com"}`, string(b))
}
