package helpers

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenParser verifies HMAC-signed bearer tokens and extracts identity
// claims. The key is derived once from the configured secret (UTF-8 bytes)
// and is immutable afterwards. Token issuance is out of scope.
type TokenParser struct {
	key []byte
}

func NewTokenParser(secret string) *TokenParser {
	return &TokenParser{key: []byte(secret)}
}

// IsValid reports whether the token parses as a JWS signed with the shared
// key. Every verification failure, including malformed input, a wrong
// signature, an unexpected signing method, or expiry, yields false.
func (p *TokenParser) IsValid(token string) bool {
	_, err := p.parse(token)
	return err == nil
}

// ExtractSubject returns the sub claim. Callers must gate with IsValid;
// an invalid token yields an error here.
func (p *TokenParser) ExtractSubject(token string) (string, error) {
	claims, err := p.parse(token)
	if err != nil {
		return "", err
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	return sub, nil
}

// ExtractRoles returns the roles claim coerced to strings. A missing or
// non-list roles claim yields an empty slice, as does an invalid token.
func (p *TokenParser) ExtractRoles(token string) []string {
	claims, err := p.parse(token)
	if err != nil {
		return []string{}
	}
	list, ok := claims["roles"].([]interface{})
	if !ok {
		return []string{}
	}
	roles := make([]string, 0, len(list))
	for _, r := range list {
		roles = append(roles, fmt.Sprint(r))
	}
	return roles
}

func (p *TokenParser) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
