package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("mw-secret")

func sign(t *testing.T, key []byte, claims jwt.StandardClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func serve(header string) (*httptest.ResponseRecorder, uint64) {
	gin.SetMode(gin.TestMode)
	var seen uint64
	r := gin.New()
	r.GET("/", JWTAuthMiddleware(secret), func(c *gin.Context) {
		seen = UserID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr, seen
}

func TestValidTokenSetsUserID(t *testing.T) {
	token := sign(t, secret, jwt.StandardClaims{Subject: "42", ExpiresAt: time.Now().Add(time.Hour).Unix()})

	rr, userID := serve("Bearer " + token)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, uint64(42), userID)
}

func TestRejectedTokens(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	cases := map[string]string{
		"missing":      "",
		"not bearer":   "Basic abc",
		"garbage":      "Bearer abc.def.ghi",
		"wrong key":    "Bearer " + sign(t, []byte("other"), jwt.StandardClaims{Subject: "1", ExpiresAt: future}),
		"expired":      "Bearer " + sign(t, secret, jwt.StandardClaims{Subject: "1", ExpiresAt: time.Now().Add(-time.Hour).Unix()}),
		"bad subject":  "Bearer " + sign(t, secret, jwt.StandardClaims{Subject: "son", ExpiresAt: future}),
		"zero subject": "Bearer " + sign(t, secret, jwt.StandardClaims{Subject: "0", ExpiresAt: future}),
	}
	for name, header := range cases {
		rr, userID := serve(header)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, name)
		assert.Zero(t, userID, name)
	}
}
