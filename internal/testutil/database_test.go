package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMongoTestURI(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     string
	}{
		{
			name:     "default URI when env var not set",
			envValue: "",
			want:     defaultMongoTestURI,
		},
		{
			name:     "custom URI from env var",
			envValue: "mongodb://custom:27017",
			want:     "mongodb://custom:27017",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_MONGO_URI", tt.envValue)

			assert.Equal(t, tt.want, GetMongoTestURI())
		})
	}
}

func TestTestDatabaseName(t *testing.T) {
	first := TestDatabaseName(t)
	second := TestDatabaseName(t)

	assert.True(t, strings.HasPrefix(first, "test_TestTestDatabaseName_"))
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "/")
	assert.LessOrEqual(t, len(first), 63)
}
