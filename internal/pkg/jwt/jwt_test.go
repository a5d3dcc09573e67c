package jwt_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaritu/core/internal/pkg/jwt"
)

func TestSignAndParse(t *testing.T) {
	token, err := jwt.Sign("admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestParse_ExpiredToken(t *testing.T) {
	token, err := jwt.Sign("admin", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.Parse(token)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := jwt.Parse("not.a.token")
	assert.Error(t, err)
}

func TestParse_RejectsForeignToken(t *testing.T) {
	// A token signed with the right secret but without our issuer and
	// audience is not an admin session.
	jwt.SetSecret("shared-secret")
	t.Cleanup(func() { jwt.SetSecret("yaritu-secret-change-me") })

	foreign := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub_name": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = jwt.Parse(signed)
	assert.Error(t, err)
}

func TestSetSecret_InvalidatesOldTokens(t *testing.T) {
	jwt.SetSecret("first-secret")
	token, err := jwt.Sign("admin", time.Hour)
	require.NoError(t, err)

	jwt.SetSecret("second-secret")
	t.Cleanup(func() { jwt.SetSecret("first-secret") })

	_, err = jwt.Parse(token)
	assert.Error(t, err)
}
