package middleware

import (
	"net/http"
	"strings"

	ctxlog "github.com/ErlanBelekov/period/internal/log"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const errUnauthorized = "Unauthorized"

// SubjectKey is the gin context key holding the authenticated token subject.
const SubjectKey = "subject"

// Auth validates an HS256 Bearer JWT carrying "sub" and "exp" claims and
// stores the subject under SubjectKey and on the request context, where the
// ContextHandler picks it up for log records.
func Auth(jwtKey []byte) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	keyFunc := func(*jwt.Token) (any, error) { return jwtKey, nil }

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		var claims jwt.RegisteredClaims
		token, err := parser.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), &claims, keyFunc)
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Request = c.Request.WithContext(ctxlog.WithSubject(c.Request.Context(), claims.Subject))
		c.Next()
	}
}
