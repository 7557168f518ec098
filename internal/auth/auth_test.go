package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"business-manager-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key-for-jwt-operations"

func newTestService(t *testing.T) *AuthService {
	service, err := NewAuthService(testSecret)
	require.NoError(t, err)
	return service
}

func TestNewAuthService(t *testing.T) {
	_, err := NewAuthService("")
	assert.Error(t, err)
}

func TestJWTOperations(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateJWT("u-1024", "jane@example.com", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1024", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, Issuer, claims.Issuer)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)

	_, err = service.GenerateJWT("", "", time.Hour)
	assert.Error(t, err)
}

func TestJWTExpiration(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateJWT("u-1024", "", -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTRejectsForeignTokens(t *testing.T) {
	service := newTestService(t)

	other, err := NewAuthService("another-secret")
	require.NoError(t, err)
	token, err := other.GenerateJWT("u-1024", "", time.Hour)
	require.NoError(t, err)
	_, err = service.ValidateJWT(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{
		UserID: "u-1024",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := foreign.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = service.ValidateJWT(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestJWTFallsBackToSubject(t *testing.T) {
	service := newTestService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   "u-2048",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := service.ValidateJWT(signed)
	require.NoError(t, err)
	assert.Equal(t, "u-2048", claims.UserID)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	valid, err := service.GenerateJWT("u-1024", "jane@example.com", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.Use(NewAuthMiddleware(service).RequireAuth())
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": ActorID(c), "email": c.GetString(logger.EmailKey)})
	})

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "u-1024", body["user"])
				assert.Equal(t, "jane@example.com", body["email"])
			} else {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, CodeUnauthorized, body["code"])
			}
		})
	}
}

func TestLocalActor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(LocalActor("local-operator"))
	router.GET("/whoami", func(c *gin.Context) {
		_, hasEmail := c.Get(logger.EmailKey)
		c.JSON(http.StatusOK, gin.H{"user": ActorID(c), "email": hasEmail})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"local-operator","email":false}`, w.Body.String())
}
