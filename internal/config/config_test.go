package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8081

[database]
host = "localhost"
port = 5432
user = "booking"
password = "${TEST_DB_PASSWORD}"
dbname = "courts"

[logs]
level = "debug"

[auth]
jwt_secret = "secret"

[booking]
timezone = "Europe/Moscow"

[payments]
enabled = true
webhook_secret = "whsec_test"
currency = "EUR"
`

func TestLoad(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cr3t")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, "s3cr3t", cfg.Database.Password)
	assert.Equal(t, "host=localhost port=5432 user=booking password=s3cr3t dbname=courts sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "eur", cfg.Payments.Currency)
	assert.Equal(t, "court_booking.events", cfg.RabbitMQ.Exchange)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestParse_Validation(t *testing.T) {
	t.Run("jwt secret is required", func(t *testing.T) {
		_, err := Parse(`[server]
http_port = 8080`)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := Parse(`[auth]
jwt_secret = "x"
[booking]
timezone = "Mars/Olympus"`)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := Parse(`[auth`)
		assert.ErrorIs(t, err, ErrParseConfig)
	})
}

func TestBookingLocation_DefaultsToUTC(t *testing.T) {
	loc, err := BookingConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}
