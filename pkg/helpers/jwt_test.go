package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestIsValid(t *testing.T) {
	parser := NewTokenParser(testSecret)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"valid", signToken(t, testSecret, jwt.MapClaims{"sub": "u1"}), true},
		{"wrong key", signToken(t, "other-secret", jwt.MapClaims{"sub": "u1"}), false},
		{"empty", "", false},
		{"garbage", "not.a.token", false},
		{"expired", signToken(t, testSecret, jwt.MapClaims{
			"sub": "u1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.IsValid(tt.token))
		})
	}
}

func TestExtractSubject(t *testing.T) {
	parser := NewTokenParser(testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{"sub": "user-42"})
	sub, err := parser.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)

	_, err = parser.ExtractSubject("garbage")
	assert.Error(t, err)
}

func TestExtractRoles(t *testing.T) {
	parser := NewTokenParser(testSecret)

	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   []string
	}{
		{"list of strings", jwt.MapClaims{"sub": "u1", "roles": []string{"admin", "user"}}, []string{"admin", "user"}},
		{"mixed types coerced", jwt.MapClaims{"sub": "u1", "roles": []any{"admin", 7}}, []string{"admin", "7"}},
		{"absent", jwt.MapClaims{"sub": "u1"}, []string{}},
		{"non-list shape", jwt.MapClaims{"sub": "u1", "roles": "admin"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, testSecret, tt.claims)
			assert.Equal(t, tt.want, parser.ExtractRoles(token))
		})
	}
}

func TestExtractRolesInvalidToken(t *testing.T) {
	parser := NewTokenParser(testSecret)
	assert.Empty(t, parser.ExtractRoles("garbage"))
}
