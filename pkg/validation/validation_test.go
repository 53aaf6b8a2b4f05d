package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "entragraph/pkg/domain-errors"
)

type createPayload struct {
	DisplayName       string `json:"displayName" validate:"required,notblank"`
	UserPrincipalName string `json:"userPrincipalName" validate:"required"`
	MailNickname      string `json:"mailNickname" validate:"required"`
	Password          string `json:"password" validate:"required,min=8"`
}

func TestValidateReportsEveryMissingField(t *testing.T) {
	err := Validate(&createPayload{})
	require.Error(t, err)
	require.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	msg := err.Error()
	assert.Contains(t, msg, "displayName is required")
	assert.Contains(t, msg, "userPrincipalName is required")
	assert.Contains(t, msg, "mailNickname is required")
	assert.Contains(t, msg, "password is required")
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	err := Validate(&createPayload{
		DisplayName:       "Ada Lovelace",
		UserPrincipalName: "ada@contoso.com",
		MailNickname:      "ada",
		Password:          "short",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password must be at least 8")
}

func TestValidatePassesCompletePayload(t *testing.T) {
	err := Validate(&createPayload{
		DisplayName:       "Ada Lovelace",
		UserPrincipalName: "ada@contoso.com",
		MailNickname:      "ada",
		Password:          "correct-horse-9T@",
	})
	assert.NoError(t, err)
}
