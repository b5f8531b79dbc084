package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("api-side-secret"))
	require.NoError(t, err)
	return token
}

func TestParse(t *testing.T) {
	token := signed(t, Claims{
		UserID: "u-1",
		Name:   "Priya Sharma",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Priya Sharma", claims.Subject())
	assert.NotNil(t, claims.ExpiresAt())
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("not-a-token")
	assert.Error(t, err)
}

func TestCheckExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		exp     *jwt.NumericDate
		leeway  time.Duration
		wantErr error
	}{
		{name: "valid", exp: jwt.NewNumericDate(now.Add(time.Minute))},
		{name: "expired", exp: jwt.NewNumericDate(now.Add(-time.Minute)), wantErr: ErrTokenExpired},
		{name: "within leeway", exp: jwt.NewNumericDate(now.Add(-10 * time.Second)), leeway: 30 * time.Second},
		{name: "no exp claim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signed(t, Claims{Email: "ops@urbancabz.in", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: tt.exp}})

			claims, err := CheckExpiry(token, now, tt.leeway)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ops@urbancabz.in", claims.Subject())
		})
	}
}
