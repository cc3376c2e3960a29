package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := AuthMiddleware("secret", nil, detector)(okHandler())

	t.Run("valid key passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/world/map", nil)
		req.Header.Set(HeaderAPIKey, "secret")
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/world/map", nil)
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/world/map", nil)
		req.Header.Set(HeaderAPIKey, "wrong")
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("public paths bypass auth", func(t *testing.T) {
		for _, path := range PublicPaths {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		}
	})

	t.Run("empty configured key disables auth", func(t *testing.T) {
		open := AuthMiddleware("", nil, detector)(okHandler())
		req := httptest.NewRequest(http.MethodGet, "/api/v1/world/map", nil)
		rec := httptest.NewRecorder()
		open.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	mw := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := RateLimitMiddleware(nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	for i := 0; i < 1000; i++ {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		want           string
	}{
		{
			name:       "direct connection",
			remoteAddr: "192.168.1.5:4567",
			want:       "192.168.1.5",
		},
		{
			name:         "forwarded header ignored from untrusted peer",
			remoteAddr:   "192.168.1.5:4567",
			forwardedFor: "1.2.3.4",
			want:         "192.168.1.5",
		},
		{
			name:           "forwarded header honored from trusted proxy",
			remoteAddr:     "10.0.0.1:4567",
			forwardedFor:   "1.2.3.4, 5.6.7.8",
			trustedProxies: []string{"10.0.0.1"},
			want:           "5.6.7.8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trustedProxies))
		})
	}
}
