package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/wojg58/Thursday/internal/constants"
)

type DBconfig struct {
	URL      string
	MaxConns int32
}

type RESTconfig struct {
	PORT           string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

type TourAPIConfig struct {
	BaseURL        string
	ServiceKey     string
	MobileApp      string
	Parallelism    int
	RandomDelay    time.Duration
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Enabled   bool
	Address   string
	Password  string
	DB        int
	DetailTTL time.Duration
	ListTTL   time.Duration
}

type RabbitMQConfig struct {
	Enabled          bool
	URL              string
	BookmarkExchange string
}

type FeedConfig struct {
	IdleTTL      time.Duration
	JanitorEvery time.Duration
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Database     DBconfig
	Rest         RESTconfig
	TourAPI      TourAPIConfig
	Redis        RedisConfig
	RabbitMQ     RabbitMQConfig
	Feeds        FeedConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения. Файл .env
// необязателен: в контейнере переменные приходят снаружи.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		if len(envPath) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
		}
		log.Printf("Info: .env file not found, using process environment only")
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "tour-service")

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	cfg.Database.MaxConns = int32(getEnvAsInt("DATABASE_MAX_CONNS", 10))

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	cfg.Rest.RequestTimeout = getEnvAsDuration("HTTP_REQUEST_TIMEOUT", 30*time.Second)

	cfg.TourAPI.BaseURL = getEnvAsString("TOUR_API_BASE_URL", "https://apis.data.go.kr/B551011/KorService2")
	cfg.TourAPI.ServiceKey = os.Getenv("TOUR_API_SERVICE_KEY")
	if cfg.TourAPI.ServiceKey == "" {
		return nil, fmt.Errorf("TOUR_API_SERVICE_KEY environment variable is required")
	}
	cfg.TourAPI.MobileApp = getEnvAsString("TOUR_API_MOBILE_APP", cfg.AppName)
	cfg.TourAPI.Parallelism = getEnvAsInt("TOUR_API_PARALLELISM", 4)
	cfg.TourAPI.RandomDelay = getEnvAsDuration("TOUR_API_RANDOM_DELAY", 0)
	cfg.TourAPI.RequestTimeout = getEnvAsDuration("TOUR_API_REQUEST_TIMEOUT", 10*time.Second)

	cfg.Redis.Enabled = getEnvAsBool("REDIS_ENABLED", false)
	if cfg.Redis.Enabled {
		cfg.Redis.Address = os.Getenv("REDIS_ADDRESS")
		if cfg.Redis.Address == "" {
			log.Println("WARNING: REDIS_ENABLED is true, but REDIS_ADDRESS is not set. Disabling cache.")
			cfg.Redis.Enabled = false
		}
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)
	}
	cfg.Redis.DetailTTL = getEnvAsDuration("CACHE_DETAIL_TTL", 6*time.Hour)
	cfg.Redis.ListTTL = getEnvAsDuration("CACHE_LIST_TTL", 10*time.Minute)

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	if cfg.RabbitMQ.Enabled {
		cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
		if cfg.RabbitMQ.URL == "" {
			return nil, fmt.Errorf("RABBITMQ_URL is required when RABBITMQ_ENABLED is true")
		}
	}
	cfg.RabbitMQ.BookmarkExchange = getEnvAsString("BOOKMARK_EXCHANGE", constants.BookmarkExchange)

	cfg.Feeds.IdleTTL = getEnvAsDuration("FEED_IDLE_TTL", 30*time.Minute)
	cfg.Feeds.JanitorEvery = getEnvAsDuration("FEED_JANITOR_INTERVAL", time.Minute)
	if cfg.Feeds.JanitorEvery <= 0 {
		cfg.Feeds.JanitorEvery = time.Minute
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("Warning: invalid integer value for %s: %q. Using default %d.", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("Warning: invalid boolean value for %s: %q. Using default %t.", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsDuration принимает формат time.ParseDuration ("10m", "6h").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(strings.TrimSpace(valueStr))
	if err != nil || value < 0 {
		log.Printf("Warning: invalid duration value for %s: %q. Using default %s.", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsList - значения через запятую, пустые элементы отбрасываются.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
