package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opengamebackend/auth/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitAllowsWithinLimit(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}
	h := httpx.Chain(okHandler(), httpx.RateLimitByIP(cfg))

	for range 3 {
		rec := doRequest(t, h, "10.0.0.1:1234")
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := httpx.Chain(okHandler(), httpx.RateLimitByIP(cfg))

	doRequest(t, h, "10.0.0.2:1234")
	doRequest(t, h, "10.0.0.2:1234")

	rec := doRequest(t, h, "10.0.0.2:1234")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimitIsolatesClients(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := httpx.Chain(okHandler(), httpx.RateLimitByIP(cfg))

	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.3:1234").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(t, h, "10.0.0.3:1234").Code)

	// A different client still has tokens.
	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.4:1234").Code)
}

func TestIPKeyExtractorPrefersForwardedFor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.5")
	require.Equal(t, "203.0.113.9", httpx.IPKeyExtractor(req))

	req.Header.Del("X-Forwarded-For")
	req.Header.Set("X-Real-IP", "203.0.113.10")
	require.Equal(t, "203.0.113.10", httpx.IPKeyExtractor(req))

	req.Header.Del("X-Real-IP")
	require.Equal(t, "10.0.0.5", httpx.IPKeyExtractor(req))
}
