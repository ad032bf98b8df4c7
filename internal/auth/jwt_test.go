package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harishrd0x/flight-reservation-system/internal/domain"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Issue(11, domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(11), userID)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, err := issuer.Issue(11, domain.RoleCustomer)
	require.NoError(t, err)

	_, _, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue(11, domain.RoleCustomer)
	require.NoError(t, err)

	_, _, err = manager.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Verify_Garbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, _, err := manager.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
