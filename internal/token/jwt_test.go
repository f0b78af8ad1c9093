// internal/token/jwt_test.go
package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	manager := NewJWT("secret")
	userID := uuid.New()

	tokenString, err := manager.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsedID, err := manager.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestParseWrongSecret(t *testing.T) {
	tokenString, err := NewJWT("secret").Generate(uuid.New())
	require.NoError(t, err)

	parsedID, err := NewJWT("other-secret").Parse(tokenString)

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestParseGarbage(t *testing.T) {
	manager := NewJWT("secret")

	parsedID, err := manager.Parse("not-a-token")

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}
