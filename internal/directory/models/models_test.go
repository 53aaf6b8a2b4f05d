package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryObjectKind(t *testing.T) {
	cases := []struct {
		odataType string
		want      ObjectKind
	}{
		{ODataTypeUser, KindUser},
		{ODataTypeGroup, KindGroup},
		{ODataTypeDirectoryRole, KindDirectoryRole},
		{ODataTypeServicePrincipal, KindServicePrincipal},
		{"#microsoft.graph.device", KindOther},
		{"", KindOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DirectoryObject{ODataType: tc.odataType}.Kind(), tc.odataType)
	}
}

func TestAuthenticationMethodIsPassword(t *testing.T) {
	assert.True(t, AuthenticationMethod{ODataType: ODataTypePasswordMethod}.IsPassword())
	assert.False(t, AuthenticationMethod{
		ODataType: "#microsoft.graph.microsoftAuthenticatorAuthenticationMethod",
	}.IsPassword())
}

// The same instant must serialize to identical text regardless of the
// precision or offset it arrived with.
func TestTimestampCanonicalForm(t *testing.T) {
	inputs := []string{
		`"2026-03-01T10:30:00Z"`,
		`"2026-03-01T10:30:00.0000000Z"`,
		`"2026-03-01T11:30:00+01:00"`,
		`"2026-03-01T10:30:00"`,
	}
	for _, input := range inputs {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(input), &ts), input)

		out, err := json.Marshal(ts)
		require.NoError(t, err)
		assert.Equal(t, `"2026-03-01T10:30:00Z"`, string(out), input)
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"not-a-time"`), &ts))
}

// Read models serialize explicit nulls so every record in a collection
// carries the same field set.
func TestUserSerializesExplicitNulls(t *testing.T) {
	out, err := json.Marshal(User{ID: "u1"})
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &m))
	for _, field := range []string{"displayName", "mail", "userPrincipalName", "accountEnabled", "createdDateTime"} {
		raw, ok := m[field]
		require.True(t, ok, field)
		assert.Equal(t, "null", string(raw), field)
	}
}

// The write model must omit unset fields so a PATCH only touches what the
// caller set.
func TestUserWriteOmitsUnsetFields(t *testing.T) {
	title := "Lead"
	out, err := json.Marshal(UserWrite{JobTitle: &title})
	require.NoError(t, err)
	assert.JSONEq(t, `{"jobTitle":"Lead"}`, string(out))
}
