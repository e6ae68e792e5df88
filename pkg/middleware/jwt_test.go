package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventdesk/ticket-api/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newJWTRouter(cfg *JWTConfig, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(JWTMiddleware(cfg))
	handlers := append(extra, func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.String(http.StatusOK, userID)
	})
	r.GET("/api/v1/events", handlers...)
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func doRequest(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *response.ErrorData {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	return body.Error
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	r := newJWTRouter(&JWTConfig{Secret: testSecret})
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "5f0c7a52-1d5e-4c59-9a3f-0c1f6e2b9d11",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(r, "/api/v1/events", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5f0c7a52-1d5e-4c59-9a3f-0c1f6e2b9d11", w.Body.String())
}

func TestJWTMiddleware_FallsBackToUserIDClaim(t *testing.T) {
	r := newJWTRouter(&JWTConfig{Secret: testSecret})
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "organizer-7",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doRequest(r, "/api/v1/events", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "organizer-7", w.Body.String())
}

func TestJWTMiddleware_Rejects(t *testing.T) {
	valid := jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()}

	tests := []struct {
		name  string
		cfg   *JWTConfig
		token string
	}{
		{"missing token", &JWTConfig{Secret: testSecret}, ""},
		{"bad signature", &JWTConfig{Secret: testSecret}, signToken(t, "other-secret", valid)},
		{"expired", &JWTConfig{Secret: testSecret}, signToken(t, testSecret, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Minute).Unix()})},
		{"no subject", &JWTConfig{Secret: testSecret}, signToken(t, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})},
		{"wrong issuer", &JWTConfig{Secret: testSecret, Issuer: "ticket-auth"}, signToken(t, testSecret, jwt.MapClaims{"sub": "u1", "iss": "someone-else"})},
		{"garbage", &JWTConfig{Secret: testSecret}, "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(newJWTRouter(tt.cfg), "/api/v1/events", tt.token)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, response.ErrCodeUnauthorized, decodeError(t, w).Code)
		})
	}
}

func TestJWTMiddleware_IssuerMatches(t *testing.T) {
	r := newJWTRouter(&JWTConfig{Secret: testSecret, Issuer: "ticket-auth"})
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "u1", "iss": "ticket-auth"})

	w := doRequest(r, "/api/v1/events", token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTMiddleware_SkipPaths(t *testing.T) {
	r := newJWTRouter(&JWTConfig{Secret: testSecret, SkipPaths: []string{"/health"}})

	w := doRequest(r, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestParseToken_ExpiredIsDistinguishable(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix()})

	_, err := ParseToken(token, &JWTConfig{Secret: testSecret})

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"sub": "u1"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(token, &JWTConfig{Secret: testSecret})

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		status int
	}{
		{"allowed role", jwt.MapClaims{"sub": "u1", "role": "ORGANIZER"}, http.StatusOK},
		{"case insensitive", jwt.MapClaims{"sub": "u1", "role": "organizer"}, http.StatusOK},
		{"other role", jwt.MapClaims{"sub": "u1", "role": "customer"}, http.StatusForbidden},
		{"no role", jwt.MapClaims{"sub": "u1"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newJWTRouter(&JWTConfig{Secret: testSecret}, RequireRole("ORGANIZER", "ADMIN"))

			w := doRequest(r, "/api/v1/events", signToken(t, testSecret, tt.claims))

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusForbidden {
				assert.Equal(t, response.ErrCodeForbidden, decodeError(t, w).Code)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	tok, err := bearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	tok, err = bearerToken("bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	_, err = bearerToken("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = bearerToken("Bearer ")
	assert.ErrorIs(t, err, ErrMissingToken)
}
