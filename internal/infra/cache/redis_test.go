package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/commission-tracker/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + server.Addr() + "/0", DB: 2})
	if err != nil {
		t.Fatalf("NewRedisClient() error = %v", err)
	}
	defer client.Close()

	if client.Options().DB != 2 {
		t.Errorf("DB = %d, want 2", client.Options().DB)
	}
	if !HealthChecker(client)() {
		t.Error("HealthChecker() = false, want true")
	}

	server.Close()
	if HealthChecker(client)() {
		t.Error("HealthChecker() after close = true, want false")
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	if _, err := NewRedisClient(&config.RedisConfig{URL: "not-a-url"}); err == nil {
		t.Error("NewRedisClient(invalid) error = nil, want error")
	}
}
