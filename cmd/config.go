package cmd

import (
	"fmt"
	"time"
)

// Config holds all deployment settings, loaded from the environment.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	RedisAddr            string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword        string `envconfig:"REDIS_PASSWORD"`
	NotificationQueueKey string `envconfig:"NOTIFICATION_QUEUE_KEY"`

	// TimeZone is the IANA zone name governing the withdrawal window and
	// the daily quota day boundaries.
	TimeZone string `envconfig:"TIME_ZONE" default:"UTC"`
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// Location resolves the configured time zone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}
