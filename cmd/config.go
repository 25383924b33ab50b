package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Events   EventsConfig   `mapstructure:"events"`
	Outbox   OutboxConfig   `mapstructure:"outbox"`
}

type HTTPConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AuthConfig selects who issues bearer tokens: firebase, or this service
// itself (jwt) using the credentials table.
type AuthConfig struct {
	Provider                string        `mapstructure:"provider"`
	JWTSecret               string        `mapstructure:"jwt_secret"`
	JWTIssuer               string        `mapstructure:"jwt_issuer"`
	TokenTTL                time.Duration `mapstructure:"token_ttl"`
	FirebaseCredentialsFile string        `mapstructure:"firebase_credentials_file"`
}

type StorageConfig struct {
	Driver        string        `mapstructure:"driver"`
	BucketPrefix  string        `mapstructure:"bucket_prefix"`
	LocalDir      string        `mapstructure:"local_dir"`
	PublicURL     string        `mapstructure:"public_url"`
	SigningSecret string        `mapstructure:"signing_secret"`
	SignedURLTTL  time.Duration `mapstructure:"signed_url_ttl"`
}

type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type EventsConfig struct {
	Driver                     string   `mapstructure:"driver"`
	KafkaBrokers               []string `mapstructure:"kafka_brokers"`
	KafkaTopic                 string   `mapstructure:"kafka_topic"`
	ServiceBusConnectionString string   `mapstructure:"servicebus_connection_string"`
	ServiceBusQueue            string   `mapstructure:"servicebus_queue"`
}

type OutboxConfig struct {
	Schedule    string `mapstructure:"schedule"`
	BatchSize   int    `mapstructure:"batch_size"`
	MaxAttempts int    `mapstructure:"max_attempts"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.shutdown_timeout", 15*time.Second)

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("auth.provider", "jwt")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_issuer", "messdelivery")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("auth.firebase_credentials_file", "")

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.bucket_prefix", "")
	v.SetDefault("storage.local_dir", "./data/blobs")
	v.SetDefault("storage.public_url", "http://localhost:8080/files")
	v.SetDefault("storage.signing_secret", "")
	v.SetDefault("storage.signed_url_ttl", 300*time.Second)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 15*time.Minute)

	v.SetDefault("events.driver", "log")
	v.SetDefault("events.kafka_brokers", []string{})
	v.SetDefault("events.kafka_topic", "delivery-events")
	v.SetDefault("events.servicebus_connection_string", "")
	v.SetDefault("events.servicebus_queue", "delivery-events")

	v.SetDefault("outbox.schedule", "@every 2s")
	v.SetDefault("outbox.batch_size", 50)
	v.SetDefault("outbox.max_attempts", 10)
}

// LoadConfig reads defaults, then the optional config file, then MESS_*
// environment variables (a .env file in the working directory is loaded
// into the environment first). http.port becomes MESS_HTTP_PORT.
func LoadConfig(configFile string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings the chosen drivers depend on.
func (c Config) Validate() error {
	var problems []error
	if c.Database.DSN == "" {
		problems = append(problems, errors.New("database.dsn is required"))
	}

	switch c.Auth.Provider {
	case "jwt":
		if len(c.Auth.JWTSecret) < 32 {
			problems = append(problems, errors.New("auth.jwt_secret must be at least 32 bytes"))
		}
	case "firebase":
		if c.Auth.FirebaseCredentialsFile == "" {
			problems = append(problems, errors.New("auth.firebase_credentials_file is required for firebase"))
		}
	default:
		problems = append(problems, fmt.Errorf("auth.provider %q is not firebase or jwt", c.Auth.Provider))
	}

	switch c.Storage.Driver {
	case "local":
		if c.Storage.SigningSecret == "" && c.Auth.JWTSecret == "" {
			problems = append(problems, errors.New("storage.signing_secret is required for local storage"))
		}
	case "gcs":
		if c.Auth.FirebaseCredentialsFile == "" {
			problems = append(problems, errors.New("auth.firebase_credentials_file is required for gcs"))
		}
	default:
		problems = append(problems, fmt.Errorf("storage.driver %q is not gcs or local", c.Storage.Driver))
	}

	switch c.Events.Driver {
	case "log":
	case "kafka":
		if len(c.Events.KafkaBrokers) == 0 {
			problems = append(problems, errors.New("events.kafka_brokers is required for kafka"))
		}
	case "servicebus":
		if c.Events.ServiceBusConnectionString == "" {
			problems = append(problems, errors.New("events.servicebus_connection_string is required for servicebus"))
		}
	default:
		problems = append(problems, fmt.Errorf("events.driver %q is not kafka, servicebus or log", c.Events.Driver))
	}

	return errors.Join(problems...)
}

// blobSigningSecret falls back to the token secret so a dev setup needs one.
func (c Config) blobSigningSecret() []byte {
	if c.Storage.SigningSecret != "" {
		return []byte(c.Storage.SigningSecret)
	}
	return []byte(c.Auth.JWTSecret)
}
