package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	s := NewSigner("test-secret", "vendoriq", time.Hour)

	token, err := s.Sign("user-42", "user@example.com")
	require.NoError(t, err)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "vendoriq", claims.Issuer)
}

func TestVerifyExpiredToken(t *testing.T) {
	s := NewSigner("test-secret", "vendoriq", -time.Minute)

	token, err := s.Sign("user-42", "")
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewSigner("secret-a", "vendoriq", time.Hour).Sign("user-42", "")
	require.NoError(t, err)

	_, err = NewSigner("secret-b", "vendoriq", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	s := NewSigner("test-secret", "vendoriq", time.Hour)
	_, err := s.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
