package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// selfSignedPEM wraps key's public half in a self-signed certificate, as Google does.
func selfSignedPEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "securetoken.system.gserviceaccount.com"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

// newCertServer serves certs with the given Cache-Control and counts requests.
func newCertServer(t *testing.T, certs map[string]string, cacheControl string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Cache-Control", cacheControl)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(certs)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestHTTPKeySource_PublicKey(t *testing.T) {
	key := generateTestKey(t)
	server, hits := newCertServer(
		t,
		map[string]string{"kid-1": selfSignedPEM(t, key)},
		"public, max-age=3600, must-revalidate, no-transform",
	)

	source := NewHTTPKeySource(server.URL, server.Client())
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	source.now = func() time.Time { return now }

	t.Run("Success_FetchesAndCaches", func(t *testing.T) {
		publicKey, err := source.PublicKey(context.Background(), "kid-1")
		require.NoError(t, err)
		assert.True(t, key.PublicKey.Equal(publicKey))

		_, err = source.PublicKey(context.Background(), "kid-1")
		require.NoError(t, err)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("Error_UnknownKidDoesNotRefetchFreshSet", func(t *testing.T) {
		_, err := source.PublicKey(context.Background(), "kid-unknown")
		assert.ErrorIs(t, err, ErrUnknownKeyID)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("Success_RefreshesAfterMaxAge", func(t *testing.T) {
		now = now.Add(time.Hour + time.Second)

		_, err := source.PublicKey(context.Background(), "kid-1")
		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})
}

func TestHTTPKeySource_ConcurrentRefreshCollapsed(t *testing.T) {
	certPEM := selfSignedPEM(t, generateTestKey(t))
	release := make(chan struct{})
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Header().Set("Cache-Control", "max-age=600")
		_ = json.NewEncoder(w).Encode(map[string]string{"kid-1": certPEM})
	}))
	defer server.Close()

	source := NewHTTPKeySource(server.URL, server.Client())

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := source.PublicKey(context.Background(), "kid-1")
			errs <- err
		}()
	}

	// Let the goroutines reach the in-flight fetch before answering it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestHTTPKeySource_Errors(t *testing.T) {
	t.Run("Error_BadStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		source := NewHTTPKeySource(server.URL, server.Client())

		_, err := source.PublicKey(context.Background(), "kid-1")
		assert.ErrorContains(t, err, "status 503")
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		source := NewHTTPKeySource(server.URL, server.Client())

		_, err := source.PublicKey(context.Background(), "kid-1")
		assert.ErrorContains(t, err, "failed to decode signing certificates")
	})

	t.Run("Error_InvalidPEM", func(t *testing.T) {
		server, _ := newCertServer(t, map[string]string{"kid-1": "garbage"}, "max-age=60")

		source := NewHTTPKeySource(server.URL, server.Client())

		_, err := source.PublicKey(context.Background(), "kid-1")
		assert.ErrorContains(t, err, "failed to parse certificate")
	})

	t.Run("Error_EmptySet", func(t *testing.T) {
		server, _ := newCertServer(t, map[string]string{}, "max-age=60")

		source := NewHTTPKeySource(server.URL, server.Client())

		_, err := source.PublicKey(context.Background(), "kid-1")
		assert.EqualError(t, err, "no signing certificates published")
	})

	t.Run("Error_CanceledContext", func(t *testing.T) {
		block := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-block
		}))
		defer server.Close()
		defer close(block)

		source := NewHTTPKeySource(server.URL, server.Client())
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := source.PublicKey(ctx, "kid-1")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestMaxAge(t *testing.T) {
	tests := []struct {
		header string
		want   time.Duration
	}{
		{"public, max-age=19302, must-revalidate, no-transform", 19302 * time.Second},
		{"max-age=60", time.Minute},
		{"Max-Age=\"30\"", 30 * time.Second},
		{"no-cache", 0},
		{"max-age=abc", 0},
		{"max-age=-5", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, maxAge(tt.header))
		})
	}
}

func TestStaticKeySource(t *testing.T) {
	key := generateTestKey(t)
	source := StaticKeySource{"kid-1": &key.PublicKey}

	publicKey, err := source.PublicKey(context.Background(), "kid-1")
	require.NoError(t, err)
	assert.Same(t, &key.PublicKey, publicKey)

	_, err = source.PublicKey(context.Background(), "kid-2")
	assert.ErrorIs(t, err, ErrUnknownKeyID)
}
