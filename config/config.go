package config

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	BackendS3       = "s3"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"

	BrokerKafka = "kafka"
	BrokerNATS  = "nats"
)

type Config struct {
	Env      string `env:"ENV" env-default:"production"`
	APIKey   string `env:"ApiKey"`
	HTTP     HTTPConfig
	Storage  StorageConfig
	Geocoder GeocoderConfig
	Redis    RedisConfig
	Broker   BrokerConfig
	SMTP     SMTPConfig
}

type HTTPConfig struct {
	Addr      string `env:"HTTP_ADDR" env-default:":80"`
	BodyLimit int    `env:"HTTP_BODY_LIMIT" env-default:"16777216"`
}

type StorageConfig struct {
	Backend     string `env:"STORAGE_BACKEND" env-default:"s3"`
	Endpoint    string `env:"CLOUDFLARE_R2_ENDPOINT"`
	AccessKey   string `env:"CLOUDFLARE_R2_ACCESS_KEY_ID"`
	SecretKey   string `env:"CLOUDFLARE_R2_SECRET_ACCESS_KEY"`
	Bucket      string `env:"CLOUDFLARE_R2_BUCKET"`
	PublicURL   string `env:"CLOUDFLARE_R2_PUBLIC_URL"`
	Region      string `env:"CLOUDFLARE_R2_REGION" env-default:"auto"`
	ListingsKey string `env:"LISTINGS_KEY" env-default:"listings.json"`
	DatabaseURL string `env:"DB_CONN_STR"`
}

type GeocoderConfig struct {
	BaseURL      string        `env:"GEOCODER_URL" env-default:"https://nominatim.openstreetmap.org"`
	UserAgent    string        `env:"GEOCODER_USER_AGENT" env-default:"housing-api-go/1.0"`
	CountryCodes string        `env:"GEOCODER_COUNTRY_CODES" env-default:"fr"`
	Country      string        `env:"GEOCODER_COUNTRY" env-default:"France"`
	Timeout      time.Duration `env:"GEOCODER_TIMEOUT" env-default:"10s"`
}

type RedisConfig struct {
	Addr     string        `env:"RedisAddr"`
	Password string        `env:"RedisPassword"`
	TTL      time.Duration `env:"CACHE_TTL" env-default:"5m"`
}

type BrokerConfig struct {
	Kind         string `env:"BROKER"`
	KafkaBrokers string `env:"KAFKA_BROKERS"`
	NATSURL      string `env:"NATS_URL" env-default:"nats://localhost:4222"`
	Topic        string `env:"LISTING_EVENTS_TOPIC" env-default:"topic.listings.created"`
}

type SMTPConfig struct {
	Host        string `env:"SMTP_HOST"`
	Port        int    `env:"SMTP_PORT" env-default:"587"`
	Username    string `env:"SMTP_USERNAME"`
	Password    string `env:"SMTP_PASSWORD"`
	SenderEmail string `env:"SMTP_SENDER_EMAIL"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}

// MustLoadServer also fails fast when the storage backend is misconfigured.
func MustLoadServer() *Config {
	cfg := MustLoad()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}

// Validate fails when the selected storage backend lacks a required setting.
// The public URL is checked per upload instead.
func (c *Config) Validate() error {
	var missing []string

	switch c.Storage.Backend {
	case BackendS3:
		for name, value := range map[string]string{
			"CLOUDFLARE_R2_ENDPOINT":          c.Storage.Endpoint,
			"CLOUDFLARE_R2_ACCESS_KEY_ID":     c.Storage.AccessKey,
			"CLOUDFLARE_R2_SECRET_ACCESS_KEY": c.Storage.SecretKey,
			"CLOUDFLARE_R2_BUCKET":            c.Storage.Bucket,
		} {
			if value == "" {
				missing = append(missing, name)
			}
		}
	case BackendPostgres:
		if c.Storage.DatabaseURL == "" {
			missing = append(missing, "DB_CONN_STR")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTP.Host != "" && c.SMTP.SenderEmail != ""
}

func (c *Config) Brokers() []string {
	if c.Broker.KafkaBrokers == "" {
		return nil
	}
	return strings.Split(c.Broker.KafkaBrokers, ",")
}
