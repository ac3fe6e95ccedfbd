package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	u := &models.User{ID: 7, Username: "admin", Role: models.RoleAdmin}

	token, exp, err := issuer.Issue(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, 5*time.Second)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.ID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenIssuer("one").Issue(&models.User{ID: 1, Username: "a", Role: "admin"})
	require.NoError(t, err)

	_, err = NewTokenIssuer("two").Verify(token)
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
	assert.True(t, httperr.IsKind(err, httperr.KindAuth))
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	issued := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, _, err := issuer.Issue(&models.User{ID: 1, Username: "a", Role: "admin"})
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(23 * time.Hour) }
	_, err = issuer.Verify(token)
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(25 * time.Hour) }
	_, err = issuer.Verify(token)
	assert.True(t, httperr.IsBusiness(err, "token_expired"))
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		ID:   1,
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret").Verify(unsigned)
	assert.True(t, httperr.IsKind(err, httperr.KindAuth))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret").Verify("not-a-token")
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))
}

func TestRequireRole(t *testing.T) {
	assert.NoError(t, RequireRole(&Claims{Role: models.RoleAdmin}, models.RoleAdmin))

	err := RequireRole(&Claims{Role: models.RoleUser}, models.RoleAdmin)
	assert.True(t, httperr.IsKind(err, httperr.KindPermission))
	assert.True(t, httperr.IsBusiness(err, "admin_required"))

	err = RequireRole(nil, models.RoleAdmin)
	assert.True(t, httperr.IsKind(err, httperr.KindAuth))
}
