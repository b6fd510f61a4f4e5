package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "garden-planner-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService("")

	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "JWT secret is required")
}

func TestJWTRoundTrip(t *testing.T) {
	service, err := NewAuthService("test-secret")
	require.NoError(t, err)

	token, err := service.GenerateJWT("gardener", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "gardener", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestValidateJWT_Rejects(t *testing.T) {
	service, err := NewAuthService("test-secret")
	require.NoError(t, err)
	other, err := NewAuthService("other-secret")
	require.NoError(t, err)

	wrongSecret, err := other.GenerateJWT("gardener", "admin", time.Hour)
	require.NoError(t, err)
	expired, err := service.GenerateJWT("gardener", "admin", -time.Minute)
	require.NoError(t, err)
	noneSigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "gardener"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret": wrongSecret,
		"expired":      expired,
		"alg none":     noneSigned,
		"garbage":      "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := service.ValidateJWT(token)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidToken))
		})
	}
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service, err := NewAuthService("test-secret")
	require.NoError(t, err)

	router := gin.New()
	router.POST("/admin", NewAuthMiddleware(service).RequireAuth(), func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing claims"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subject": claims.Subject})
	})
	return router, service
}

func TestRequireAuth(t *testing.T) {
	router, service := setupAuthRouter(t)
	valid, err := service.GenerateJWT("gardener", "admin", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedError  string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header is required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Invalid authorization header format"},
		{"bad token", "Bearer nope", http.StatusUnauthorized, "Invalid token"},
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.Equal(t, "gardener", body["subject"])
			}
		})
	}
}
