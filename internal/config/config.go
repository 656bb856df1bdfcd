package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production            bool          `env:"PRODUCTION" envDefault:"false"`
	Port                  string        `env:"PORT" envDefault:"80"`
	PostgresUrl           string        `env:"POSTGRES_URL,required"`
	RedisUrl              string        `env:"REDIS_URL" envDefault:"redis:6379"`
	SnapshotTTL           time.Duration `env:"SNAPSHOT_TTL" envDefault:"1h"`
	ReconcileSchedule     string        `env:"RECONCILE_SCHEDULE" envDefault:"@every 10m"`
	EventFallbackDuration time.Duration `env:"EVENT_FALLBACK_DURATION" envDefault:"2h"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

func PostgresURL() string {
	return conf.PostgresUrl
}

func RedisURL() string {
	return conf.RedisUrl
}

func SnapshotTTL() time.Duration {
	return conf.SnapshotTTL
}

func ReconcileSchedule() string {
	return conf.ReconcileSchedule
}

func EventFallbackDuration() time.Duration {
	return conf.EventFallbackDuration
}
