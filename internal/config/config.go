// Package config provides application configuration through environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout bounds graceful shutdown of the HTTP servers.
	ShutdownTimeout time.Duration

	// MongoURI is the MongoDB connection string.
	MongoURI string
	// MongoDatabase is the database holding the foods and requests collections.
	MongoDatabase string
	// MongoConnectTimeout bounds the initial connection and ping.
	MongoConnectTimeout time.Duration
	// MongoMaxPoolSize is the maximum number of pooled connections per server.
	MongoMaxPoolSize uint64

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// FirebaseProjectID is the project whose ID tokens are accepted.
	FirebaseProjectID string
	// FirebaseCredentialsFile is the service account JSON used to discover the project ID.
	FirebaseCredentialsFile string
	// FirebaseAuthEmulatorHost switches verification to the Auth emulator (unsigned tokens).
	FirebaseAuthEmulatorHost string
	// AuthVerifyTimeout bounds a single call to the identity authority.
	AuthVerifyTimeout time.Duration

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", env.GetInt("PORT", 3000)),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 30, time.Second),

		// MongoDB configuration
		MongoURI:            env.GetString("MONGO_URI", defaultMongoURI()),
		MongoDatabase:       env.GetString("MONGO_DATABASE", "food_sharing_platform"),
		MongoConnectTimeout: env.GetDuration("MONGO_CONNECT_TIMEOUT_SECONDS", 10, time.Second),
		MongoMaxPoolSize:    uint64(env.GetInt("MONGO_MAX_POOL_SIZE", 100)),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Identity authority
		FirebaseProjectID:        env.GetString("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsFile:  env.GetString("FIREBASE_CREDENTIALS_FILE", "firebase-admin-service-key.json"),
		FirebaseAuthEmulatorHost: env.GetString("FIREBASE_AUTH_EMULATOR_HOST", ""),
		AuthVerifyTimeout:        env.GetDuration("AUTH_VERIFY_TIMEOUT_SECONDS", 10, time.Second),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", true),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", "*"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "foodshare"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// ResolveFirebaseProjectID returns FirebaseProjectID, falling back to the project_id
// field of the service account file.
func (c *Config) ResolveFirebaseProjectID() (string, error) {
	if c.FirebaseProjectID != "" {
		return c.FirebaseProjectID, nil
	}
	if c.FirebaseCredentialsFile == "" {
		return "", fmt.Errorf("FIREBASE_PROJECT_ID or FIREBASE_CREDENTIALS_FILE is required")
	}

	data, err := os.ReadFile(c.FirebaseCredentialsFile)
	if err != nil {
		return "", fmt.Errorf("failed to read firebase credentials file: %w", err)
	}

	var serviceAccount struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(data, &serviceAccount); err != nil {
		return "", fmt.Errorf("failed to parse firebase credentials file: %w", err)
	}
	if serviceAccount.ProjectID == "" {
		return "", fmt.Errorf("firebase credentials file has no project_id")
	}

	return serviceAccount.ProjectID, nil
}

// defaultMongoURI builds an Atlas SRV URI from DB_USER, DB_PASS and MONGO_HOST when all
// are present, otherwise it points to a local server.
func defaultMongoURI() string {
	user := env.GetString("DB_USER", "")
	pass := env.GetString("DB_PASS", "")
	host := env.GetString("MONGO_HOST", "")
	if user == "" || pass == "" || host == "" {
		return "mongodb://localhost:27017"
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
