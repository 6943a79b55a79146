package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Context keys for storing viewer identity
type contextKey string

const viewerKey contextKey = "viewer"

// Viewer is the identity the external provider attached to this request.
// The core never verifies credentials; it only consumes these claims.
type Viewer struct {
	UserID  int64
	Premium bool
	Admin   bool
}

// AuthMiddleware extracts viewer identity from session tokens issued by the
// identity provider. Tokens are HS256-signed with a shared secret.
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates a new auth middleware with the shared secret
func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

// WithViewer injects the viewer into the request context when a bearer token
// is present. Requests without a token proceed anonymously; requests with a
// bad token are rejected rather than silently downgraded to anonymous.
func (m *AuthMiddleware) WithViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		viewer, err := m.parseBearer(authHeader)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, SetViewer(r, viewer))
	})
}

// SetViewer returns a copy of the request carrying the viewer identity.
// Used by WithViewer and by handler tests that bypass token parsing.
func SetViewer(r *http.Request, viewer *Viewer) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), viewerKey, viewer))
}

// RequireAuth ensures a viewer is present; 401 otherwise.
// Must be mounted after WithViewer.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetViewer(r) == nil {
			writeAuthError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin ensures the viewer carries the admin claim; 403 otherwise
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer := GetViewer(r)
		if viewer == nil {
			writeAuthError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !viewer.Admin {
			writeAuthError(w, http.StatusForbidden, "Admin rights required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetViewer returns the authenticated viewer, or nil for anonymous requests
func GetViewer(r *http.Request) *Viewer {
	viewer, _ := r.Context().Value(viewerKey).(*Viewer)
	return viewer
}

func (m *AuthMiddleware) parseBearer(authHeader string) (*Viewer, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("invalid authorization header format")
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subject %q: %w", sub, err)
	}

	premium, _ := claims["premium"].(bool)
	admin, _ := claims["admin"].(bool)

	return &Viewer{UserID: userID, Premium: premium, Admin: admin}, nil
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	errorType := "AuthRequired"
	if status == http.StatusForbidden {
		errorType = "Forbidden"
	}
	fmt.Fprintf(w, `{"error":%q,"message":%q}`, errorType, message)
}
