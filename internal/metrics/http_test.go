package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("foodshare_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "foodshare_test"))
	router.GET("/foods/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"_id": c.Param("id")})
	})
	router.POST("/foods", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"acknowledged": true})
	})

	for _, path := range []string{"/foods/a1", "/foods/b2", "/foods/c3"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/foods", nil))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	output := scrape(t, provider)

	assertMetricLine(
		t,
		output,
		`foodshare_test_http_requests_total`,
		`method="GET".*path="/foods/:id".*status_code="200"`,
		`3`,
	)
	assertMetricLine(
		t,
		output,
		`foodshare_test_http_requests_total`,
		`method="POST".*path="/foods".*status_code="201"`,
		`1`,
	)
	assertMetricLine(
		t,
		output,
		`foodshare_test_http_requests_total`,
		`method="GET".*path="unknown".*status_code="404"`,
		`1`,
	)
	assertMetricLine(
		t,
		output,
		`foodshare_test_http_request_duration_seconds_count`,
		`method="GET".*path="/foods/:id".*status_code="200"`,
		`3`,
	)
	assertMetricLine(t, output, `foodshare_test_http_requests_in_flight`, ``, `0`)
	assert.NotContains(t, output, "/foods/a1")
}

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/foods/:id", "/foods/:id"},
		{"/myFood", "/myFood"},
		{"/", "/"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizePath(tt.input))
		})
	}
}
