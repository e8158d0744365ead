package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/domain/rooms"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "HTTP_ADDR", "CORS_ALLOW_ORIGINS", "ROOM_INVENTORY", "MONGO_URI", "MONGO_DB",
	"KAFKA_BROKERS", "KAFKA_TOPIC_PREFIX", "NOTIFICATION_TOPIC", "IDEMP_TTL", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, map[rooms.RoomType]int{rooms.TypeStandard: 10, rooms.TypeSuite: 5, rooms.TypeDeluxe: 3}, cfg.RoomInventory)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROOM_INVENTORY", "suite=1, deluxe=0")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("IDEMP_TTL", "1h")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, map[rooms.RoomType]int{rooms.TypeSuite: 1, rooms.TypeDeluxe: 0}, cfg.RoomInventory)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("IDEMP_TTL", "forever")

	_, err := FromEnv()

	assert.ErrorContains(t, err, "invalid IDEMP_TTL duration")
}

func TestParseInventory_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown type":   "penthouse=2",
		"missing count":  "standard",
		"not a number":   "standard=many",
		"negative count": "standard=-1",
		"empty":          " , ",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInventory(raw)
			assert.Error(t, err)
		})
	}

	_, err := ParseInventory("penthouse=2")
	assert.ErrorIs(t, err, rooms.ErrInvalidRoomType)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("HTTP_ADDR")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:9090\n"), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.NoError(t, err)
}
