package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL bounds credential validity; there is no server-side revocation.
const tokenTTL = 8 * time.Hour

const identityKey = "identity"

func jwtSecret() []byte {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return []byte(val)
	}
	return []byte("dev_secret") // fallback for local development only
}

// Identity is the caller identity embedded in a signed token.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// GenerateToken signs a time-limited credential carrying the identity claims.
func GenerateToken(ident Identity) (string, error) {
	claims := jwt.MapClaims{
		"id":        ident.ID,
		"username":  ident.Username,
		"full_name": ident.FullName,
		"role":      ident.Role,
		"exp":       time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseIdentity verifies a token string and recovers the embedded identity.
func ParseIdentity(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return Identity{}, err
	}
	if !token.Valid {
		return Identity{}, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	var ident Identity
	if v, ok := claims["id"].(float64); ok {
		ident.ID = uint(v)
	}
	if v, ok := claims["username"].(string); ok {
		ident.Username = v
	}
	if v, ok := claims["full_name"].(string); ok {
		ident.FullName = v
	}
	if v, ok := claims["role"].(string); ok {
		ident.Role = v
	}
	return ident, nil
}

// RequireAuth ensures a valid, unexpired token is present and attaches the
// caller identity to the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		// A bare token without the Bearer prefix is accepted too.
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		ident, err := ParseIdentity(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// CurrentIdentity returns the identity attached by RequireAuth.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	return ident, ok
}
