package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"messdelivery/internal/adapters/out/auth"
	"messdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "jwt", cfg.Auth.Provider)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, 300*time.Second, cfg.Storage.SignedURLTTL)
	assert.Equal(t, "log", cfg.Events.Driver)
	assert.Equal(t, "@every 2s", cfg.Outbox.Schedule)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	file := filepath.Join(dir, "messdelivery.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
http:
  port: 9000
events:
  driver: kafka
  kafka_topic: from-file
`), 0o600))

	t.Setenv("MESS_HTTP_PORT", "9100")
	t.Setenv("MESS_EVENTS_KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("MESS_CACHE_TTL", "90s")

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.Equal(t, "kafka", cfg.Events.Driver)
	assert.Equal(t, "from-file", cfg.Events.KafkaTopic)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.KafkaBrokers)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Database: DatabaseConfig{DSN: "postgres://localhost/mess"},
			Auth:     AuthConfig{Provider: "jwt", JWTSecret: testSecret},
			Storage:  StorageConfig{Driver: "local"},
			Events:   EventsConfig{Driver: "log"},
		}
	}

	require.NoError(t, valid().Validate())

	tests := map[string]struct {
		mutate func(*Config)
		want   string
	}{
		"no dsn":              {func(c *Config) { c.Database.DSN = "" }, "database.dsn"},
		"short secret":        {func(c *Config) { c.Auth.JWTSecret = "short" }, "auth.jwt_secret"},
		"firebase no creds":   {func(c *Config) { c.Auth.Provider = "firebase" }, "firebase_credentials_file"},
		"unknown storage":     {func(c *Config) { c.Storage.Driver = "s3" }, "storage.driver"},
		"kafka no brokers":    {func(c *Config) { c.Events.Driver = "kafka" }, "kafka_brokers"},
		"servicebus no conn":  {func(c *Config) { c.Events.Driver = "servicebus" }, "servicebus_connection_string"},
		"unknown auth":        {func(c *Config) { c.Auth.Provider = "ldap" }, "auth.provider"},
		"gcs without project": {func(c *Config) { c.Storage.Driver = "gcs" }, "gcs"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTokenCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MESS_DATABASE_DSN", "postgres://localhost/mess")
	t.Setenv("MESS_AUTH_JWT_SECRET", testSecret)
	profileID := kernel.NewUUID()

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"token", "--profile-id", profileID.String(), "--role", "delivery_personnel"})

	require.NoError(t, root.ExecuteContext(context.Background()))

	token, _, _ := strings.Cut(out.String(), "\n")
	tokens, err := auth.NewJWTTokens([]byte(testSecret), "messdelivery", time.Hour)
	require.NoError(t, err)
	subject, err := tokens.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, subject.IsEqual(profileID))
}

func TestTokenCommand_UnknownRole(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MESS_DATABASE_DSN", "postgres://localhost/mess")
	t.Setenv("MESS_AUTH_JWT_SECRET", testSecret)

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"token", "--profile-id", kernel.NewUUID().String(), "--role", "chef"})

	require.Error(t, root.ExecuteContext(context.Background()))
}
