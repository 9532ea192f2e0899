package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/apiErrors"
)

func TestService_IssueAndValidate(t *testing.T) {
	service := NewService("segredo")

	token, err := service.IssueToken(1, "operador", 1, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "operador", claims.UserName)
	assert.Equal(t, 1, claims.UserRoleID)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer := &Service{secretKey: []byte("segredo"), now: func() time.Time { return issued }}

	token, err := issuer.IssueToken(1, "operador", 1, time.Hour)
	require.NoError(t, err)

	t.Run("Token expirado", func(t *testing.T) {
		later := &Service{secretKey: []byte("segredo"), now: func() time.Time { return issued.Add(2 * time.Hour) }}

		_, err := later.ValidateToken(token)

		assert.True(t, errors.Is(err, ErrExpiredToken))
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrExpiredToken, authErr.Code)
	})

	t.Run("Assinatura de outra chave", func(t *testing.T) {
		other := &Service{secretKey: []byte("outra"), now: func() time.Time { return issued }}

		_, err := other.ValidateToken(token)

		assert.True(t, errors.Is(err, ErrInvalidToken))
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := NewService("segredo").ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_IssueToken_Errors(t *testing.T) {
	_, err := NewService("").IssueToken(1, "operador", 1, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewService("segredo").IssueToken(1, "operador", 0, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidRole)
}
