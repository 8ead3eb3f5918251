package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

var tokenService = NewService("test-signing-key", "test-issuer")

func Test_GenerateAndValidate(t *testing.T) {
	token, err := tokenService.Generate(123, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	customerID, err := tokenService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, id.CustomerID(123), customerID)
}

func Test_Validate_InvalidToken(t *testing.T) {
	_, err := tokenService.Validate("invalid-token-string")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func Test_Validate_ExpiredToken(t *testing.T) {
	token, err := tokenService.Generate(123, -time.Minute)
	require.NoError(t, err)

	_, err = tokenService.Validate(token)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}

func Test_Validate_WrongKey(t *testing.T) {
	other := NewService("different-signing-key", "test-issuer")
	token, err := other.Generate(123, time.Hour)
	require.NoError(t, err)

	_, err = tokenService.Validate(token)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnauthorized, dErrors.CodeOf(err))
}
