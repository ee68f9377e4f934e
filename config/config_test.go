package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Without REDIS_ADDR the address must come back empty so the wiring
// can pick the in-process revocation store instead of dialing a Redis
// that is not there.
func TestLoadRedisAddrDefaultsEmpty(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")

	cfg := Load()

	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadRedisAddrFromEnv(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg := Load()

	assert.Equal(t, "redis:6379", cfg.RedisAddr)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("NODE_ENV", "")

	cfg := Load()

	assert.Equal(t, ":2001", cfg.HTTPAddr)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.Production)
}

func TestLoadKafkaBrokersCSV(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092,")

	cfg := Load()

	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
}
