// Package integration runs the assembled API against a real MongoDB. Identity tokens
// are minted for the Firebase Auth emulator, so no Google credentials are needed.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodshare/server/internal/app"
	"github.com/foodshare/server/internal/config"
	"github.com/foodshare/server/internal/testutil"
)

const projectID = "foodshare-it"

type apiTestContext struct {
	server *httptest.Server
}

func setupAPI(t *testing.T) *apiTestContext {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupMongoDB(t)

	cfg := &config.Config{
		ServerHost:               "localhost",
		MongoURI:                 testutil.GetMongoTestURI(),
		MongoDatabase:            db.Name(),
		MongoConnectTimeout:      5 * time.Second,
		LogLevel:                 "error",
		FirebaseProjectID:        projectID,
		FirebaseAuthEmulatorHost: "localhost:9099",
		AuthVerifyTimeout:        time.Second,
		CORSEnabled:              true,
		CORSAllowOrigins:         "*",
	}

	container := app.NewContainer(cfg)
	t.Cleanup(func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	})

	apiServer, err := container.HTTPServer()
	require.NoError(t, err)

	server := httptest.NewServer(apiServer.Handler())
	t.Cleanup(server.Close)

	return &apiTestContext{server: server}
}

// emulatorToken mints an unsigned ID token as the Auth emulator does.
func emulatorToken(t *testing.T, uid, email string) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"iss":       "https://securetoken.google.com/" + projectID,
		"aud":       projectID,
		"sub":       uid,
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
		"auth_time": now.Unix(),
		"email":     email,
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return signed
}

func (a *apiTestContext) request(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestAPI_FoodLifecycle(t *testing.T) {
	api := setupAPI(t)
	jane := emulatorToken(t, "uid-jane", "jane@example.com")

	status, body := api.request(t, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Food code is cooking", string(body))

	status, _ = api.request(t, http.MethodGet, "/ready", nil, "")
	require.Equal(t, http.StatusOK, status)

	// Create two listings for jane.
	var created struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	for _, food := range []map[string]any{
		{
			"name":           "Vegetable Rice",
			"quantity":       4,
			"pickupLocation": "Dhaka",
			"expireDate":     "2026-12-01",
			"donorName":      "Jane",
			"donorEmail":     "jane@example.com",
		},
		{
			"name":           "Lentil Soup",
			"quantity":       2,
			"pickupLocation": "Dhaka",
			"expireDate":     "2026-11-20",
			"donorName":      "Jane",
			"donorEmail":     "jane@example.com",
		},
	} {
		status, body = api.request(t, http.MethodPost, "/foods", food, "")
		require.Equal(t, http.StatusCreated, status, string(body))
		require.NoError(t, json.Unmarshal(body, &created))
		assert.True(t, created.Acknowledged)
		assert.Len(t, created.InsertedID, 24)
	}
	soupID := created.InsertedID

	// Public catalogue, soonest expiry first, searchable.
	var foods []map[string]any
	status, body = api.request(t, http.MethodGet, "/foods", nil, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &foods))
	require.Len(t, foods, 2)
	assert.Equal(t, "Lentil Soup", foods[0]["name"])
	assert.Equal(t, "available", foods[0]["status"])

	status, body = api.request(t, http.MethodGet, "/foods?search=RICE", nil, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &foods))
	require.Len(t, foods, 1)
	assert.Equal(t, "Vegetable Rice", foods[0]["name"])

	// Update then fetch.
	status, body = api.request(t, http.MethodPatch, "/foods/"+soupID, map[string]any{"quantity": 1}, "")
	require.Equal(t, http.StatusOK, status, string(body))
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}`, string(body))

	var food map[string]any
	status, body = api.request(t, http.MethodGet, "/foods/"+soupID, nil, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &food))
	assert.Equal(t, float64(1), food["quantity"])

	// Owner listing is gated.
	status, body = api.request(t, http.MethodGet, "/myFood?email=jane@example.com", nil, jane)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &foods))
	assert.Len(t, foods, 2)

	status, body = api.request(t, http.MethodGet, "/myFood?email=john@example.com", nil, jane)
	assert.Equal(t, http.StatusForbidden, status)
	assert.JSONEq(t, `{"message":"forbidden access"}`, string(body))

	status, body = api.request(t, http.MethodGet, "/myFood?email=jane@example.com", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"message":"unauthorized access"}`, string(body))

	status, _ = api.request(t, http.MethodGet, "/myFood?email=jane@example.com", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)

	// Delete, then the listing is gone.
	status, body = api.request(t, http.MethodDelete, "/foods/"+soupID, nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, string(body))

	status, _ = api.request(t, http.MethodGet, "/foods/"+soupID, nil, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.request(t, http.MethodGet, "/foods/not-an-id", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// Bodies are stored as sent, loosely typed fields included.
	status, body = api.request(t, http.MethodPost, "/foods", map[string]any{
		"name":       "   ",
		"quantity":   "5",
		"expireDate": "tomorrow evening",
		"donorEmail": "jane",
	}, "")
	require.Equal(t, http.StatusCreated, status, string(body))
	require.NoError(t, json.Unmarshal(body, &created))

	status, body = api.request(t, http.MethodGet, "/foods/"+created.InsertedID, nil, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &food))
	assert.Equal(t, "5", food["quantity"])
	assert.Equal(t, "tomorrow evening", food["expireDate"])
	assert.Equal(t, "jane", food["donorEmail"])

	status, body = api.request(t, http.MethodGet, "/foods", nil, "")
	require.Equal(t, http.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &foods))
	assert.Len(t, foods, 2)
}

func TestAPI_FoodRequests(t *testing.T) {
	api := setupAPI(t)
	john := emulatorToken(t, "uid-john", "john@example.com")

	foodID := "64b7f0c2a1b2c3d4e5f60718"
	for _, requestDate := range []string{"2026-10-01T09:00:00Z", "2026-10-05T09:00:00Z"} {
		status, body := api.request(t, http.MethodPost, "/requests", map[string]any{
			"foodId":      foodID,
			"foodName":    "Vegetable Rice",
			"donorEmail":  "jane@example.com",
			"userEmail":   "john@example.com",
			"requestDate": requestDate,
		}, "")
		require.Equal(t, http.StatusOK, status, string(body))
	}

	var requests []map[string]any
	status, body := api.request(t, http.MethodGet, "/myRequests?email=john@example.com", nil, john)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &requests))
	require.Len(t, requests, 2)
	assert.Equal(t, "2026-10-05T09:00:00Z", requests[0]["requestDate"])

	status, _ = api.request(t, http.MethodGet, "/myRequests?email=jane@example.com", nil, john)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = api.request(t, http.MethodGet, "/myRequests", nil, john)
	assert.Equal(t, http.StatusForbidden, status)
}
