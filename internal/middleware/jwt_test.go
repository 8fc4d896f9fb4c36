package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ident := Identity{ID: 7, Username: "clerk1", FullName: "Maria Clerk", Role: "Staff"}

	token, err := GenerateToken(ident)
	require.NoError(t, err)

	parsed, err := ParseIdentity(token)
	require.NoError(t, err)
	assert.Equal(t, ident, parsed)
}

func TestParseIdentityRejectsExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"id":        float64(7),
		"username":  "clerk1",
		"full_name": "Maria Clerk",
		"role":      "Staff",
		"exp":       time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	require.NoError(t, err)

	_, err = ParseIdentity(token)
	assert.Error(t, err)
}

func TestParseIdentityRejectsGarbage(t *testing.T) {
	_, err := ParseIdentity("not.a.token")
	assert.Error(t, err)
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		ident, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, ident)
	})
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestRequireAuthInvalidToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestRequireAuthValidToken(t *testing.T) {
	token, err := GenerateToken(Identity{ID: 3, Username: "sec", FullName: "Ana Cruz", Role: "Secretary"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"sec"`)
}

func TestRequireAuthAcceptsBareToken(t *testing.T) {
	token, err := GenerateToken(Identity{ID: 3, Username: "sec", FullName: "Ana Cruz", Role: "Secretary"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
