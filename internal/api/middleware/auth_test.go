package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// captureViewer records the viewer seen by the downstream handler
func captureViewer(viewer **Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*viewer = GetViewer(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithViewer_ValidToken(t *testing.T) {
	auth := NewAuthMiddleware(testSecret)

	var seen *Viewer
	handler := auth.WithViewer(captureViewer(&seen))

	req := httptest.NewRequest(http.MethodGet, "/api/posts/1/comments", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.MapClaims{
		"sub":     "42",
		"premium": true,
		"admin":   false,
	}))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	assert.Equal(t, int64(42), seen.UserID)
	assert.True(t, seen.Premium)
	assert.False(t, seen.Admin)
}

func TestWithViewer_NoHeaderIsAnonymous(t *testing.T) {
	auth := NewAuthMiddleware(testSecret)

	var seen *Viewer
	handler := auth.WithViewer(captureViewer(&seen))

	req := httptest.NewRequest(http.MethodGet, "/api/posts/1/comments", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, seen)
}

func TestWithViewer_BadTokenRejected(t *testing.T) {
	auth := NewAuthMiddleware(testSecret)

	called := false
	handler := auth.WithViewer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/posts/1/comments", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", jwt.MapClaims{"sub": "42"}))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	// A present-but-invalid token is an error, not an anonymous downgrade
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)
}

func TestWithViewer_MissingSubjectRejected(t *testing.T) {
	auth := NewAuthMiddleware(testSecret)

	handler := auth.WithViewer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/votes", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.MapClaims{"premium": true}))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAuth(t *testing.T) {
	auth := NewAuthMiddleware(testSecret)

	handler := auth.WithViewer(auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	// Anonymous request is rejected
	req := httptest.NewRequest(http.MethodPost, "/api/votes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Authenticated request passes through
	req = httptest.NewRequest(http.MethodPost, "/api/votes", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.MapClaims{"sub": "42"}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRequireAdmin(t *testing.T) {
	auth := NewAuthMiddleware(testSecret)

	handler := auth.WithViewer(auth.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	// Non-admin viewer gets 403, not 401
	req := httptest.NewRequest(http.MethodDelete, "/api/moderation/posts/1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.MapClaims{"sub": "42"}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// Admin viewer passes through
	req = httptest.NewRequest(http.MethodDelete, "/api/moderation/posts/1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.MapClaims{"sub": "42", "admin": true}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Anonymous request gets 401
	req = httptest.NewRequest(http.MethodDelete, "/api/moderation/posts/1", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
