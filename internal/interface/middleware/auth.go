package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Koundinya12/UserService/pkg/helpers"
	"github.com/Koundinya12/UserService/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxRolesKey  = "roles"
)

// Auth validates the Authorization bearer token and injects the token's
// subject and roles into the Gin context.
func Auth(parser *helpers.TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		if !parser.IsValid(token) {
			response.Unauthorized(c, "invalid bearer token")
			c.Abort()
			return
		}
		sub, err := parser.ExtractSubject(token)
		if err != nil {
			response.Unauthorized(c, "invalid bearer token")
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, sub)
		c.Set(CtxRolesKey, parser.ExtractRoles(token))
		c.Next()
	}
}

// RequireRole denies the request unless the authenticated token carries
// the given role. Must run after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, _ := c.Get(CtxRolesKey)
		list, _ := roles.([]string)
		for _, r := range list {
			if r == role {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "missing role "+role)
		c.Abort()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
