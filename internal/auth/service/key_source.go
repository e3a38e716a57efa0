package service

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

// GoogleSecureTokenCertsURL publishes the x509 certificates that sign Firebase ID tokens.
const GoogleSecureTokenCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

// ErrUnknownKeyID indicates no published certificate matches the token's kid header.
var ErrUnknownKeyID = errors.New("unknown signing key id")

// HTTPKeySource fetches and caches the certificate set served at a URL. The set is kept
// until the Cache-Control max-age of the response elapses.
type HTTPKeySource struct {
	url    string
	client *http.Client
	now    func() time.Time

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time

	group singleflight.Group
}

// NewHTTPKeySource creates a key source for url. A nil client gets a 10 second timeout.
func NewHTTPKeySource(url string, client *http.Client) *HTTPKeySource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPKeySource{
		url:    url,
		client: client,
		now:    time.Now,
	}
}

// PublicKey returns the key for kid, refreshing the cached set when it has expired.
func (s *HTTPKeySource) PublicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	keys, fresh := s.cached()
	if !fresh {
		var err error
		keys, err = s.refresh(ctx)
		if err != nil {
			return nil, err
		}
	}

	key, ok := keys[kid]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyID, kid)
	}
	return key, nil
}

func (s *HTTPKeySource) cached() (map[string]*rsa.PublicKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys, s.keys != nil && s.now().Before(s.expiresAt)
}

// refresh collapses concurrent refreshes into one fetch. The fetch is detached from the
// caller's cancellation so one abandoned request does not fail the others waiting on it.
func (s *HTTPKeySource) refresh(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	ch := s.group.DoChan("keys", func() (any, error) {
		return s.fetch(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[string]*rsa.PublicKey), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *HTTPKeySource) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build certificate request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch signing certificates: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch signing certificates: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read signing certificates: %w", err)
	}

	keys, err := parseCertificates(body)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.keys = keys
	s.expiresAt = s.now().Add(maxAge(resp.Header.Get("Cache-Control")))
	s.mu.Unlock()

	return keys, nil
}

// parseCertificates decodes a {"kid": "-----BEGIN CERTIFICATE-----..."} document.
func parseCertificates(body []byte) (map[string]*rsa.PublicKey, error) {
	var certs map[string]string
	if err := json.Unmarshal(body, &certs); err != nil {
		return nil, fmt.Errorf("failed to decode signing certificates: %w", err)
	}
	if len(certs) == 0 {
		return nil, errors.New("no signing certificates published")
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pem := range certs {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			return nil, fmt.Errorf("failed to parse certificate %q: %w", kid, err)
		}
		keys[kid] = key
	}
	return keys, nil
}

// maxAge extracts the max-age directive in seconds; zero when absent or invalid.
func maxAge(cacheControl string) time.Duration {
	for _, directive := range strings.Split(cacheControl, ",") {
		name, value, found := strings.Cut(strings.TrimSpace(directive), "=")
		if !found || !strings.EqualFold(name, "max-age") {
			continue
		}
		seconds, err := strconv.Atoi(strings.Trim(value, `"`))
		if err != nil || seconds < 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}
	return 0
}

// StaticKeySource serves a fixed key set, used for tests and local tooling.
type StaticKeySource map[string]*rsa.PublicKey

// PublicKey returns the key for kid or ErrUnknownKeyID.
func (s StaticKeySource) PublicKey(_ context.Context, kid string) (*rsa.PublicKey, error) {
	key, ok := s[kid]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyID, kid)
	}
	return key, nil
}
