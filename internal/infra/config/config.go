package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"hotelbooking/internal/domain/rooms"
)

const defaultInventory = "standard=10,suite=5,deluxe=3"

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env               string
	LogLevel          string
	HTTPAddr          string
	CORSAllowOrigins  []string
	RoomInventory     map[rooms.RoomType]int
	MongoURI          string
	MongoDB           string
	KafkaBrokers      []string
	KafkaTopicPrefix  string
	NotificationTopic string
	IdempotencyTTL    time.Duration
	ShutdownTimeout   time.Duration
}

// Load reads an optional .env file and then parses the current environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv parses configuration from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Env:               getEnv("APP_ENV", "dev"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getEnv("MONGO_DB", "hotel"),
		KafkaTopicPrefix:  getEnv("KAFKA_TOPIC_PREFIX", ""),
		NotificationTopic: getEnv("NOTIFICATION_TOPIC", "reservations.notifications"),
	}
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.CORSAllowOrigins = splitList(getEnv("CORS_ALLOW_ORIGINS", "*"))

	inventory, err := ParseInventory(getEnv("ROOM_INVENTORY", defaultInventory))
	if err != nil {
		return Config{}, err
	}
	cfg.RoomInventory = inventory

	idempotencyTTL, err := parseDurationEnv("IDEMP_TTL", 168*time.Hour)
	if err != nil {
		return Config{}, err
	}
	cfg.IdempotencyTTL = idempotencyTTL

	shutdown, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.ShutdownTimeout = shutdown
	return cfg, nil
}

// Default returns the configuration used when the environment is unusable.
func Default() Config {
	inventory, _ := ParseInventory(defaultInventory)
	return Config{
		Env:               "dev",
		LogLevel:          "info",
		HTTPAddr:          ":8080",
		CORSAllowOrigins:  []string{"*"},
		RoomInventory:     inventory,
		MongoDB:           "hotel",
		NotificationTopic: "reservations.notifications",
		IdempotencyTTL:    168 * time.Hour,
		ShutdownTimeout:   5 * time.Second,
	}
}

// ParseInventory reads "type=count" pairs separated by commas.
func ParseInventory(raw string) (map[rooms.RoomType]int, error) {
	out := make(map[rooms.RoomType]int)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, countRaw, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid ROOM_INVENTORY entry %q: expected type=count", part)
		}
		roomType := rooms.RoomType(strings.ToLower(strings.TrimSpace(name)))
		if !roomType.Known() {
			return nil, fmt.Errorf("invalid ROOM_INVENTORY entry %q: %w", part, rooms.ErrInvalidRoomType)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countRaw))
		if err != nil {
			return nil, fmt.Errorf("invalid ROOM_INVENTORY count %q: %w", part, err)
		}
		if count < 0 {
			return nil, fmt.Errorf("invalid ROOM_INVENTORY count %q: must not be negative", part)
		}
		out[roomType] = count
	}
	if len(out) == 0 {
		return nil, errors.New("ROOM_INVENTORY is empty")
	}
	return out, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
