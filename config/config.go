package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		AdminID  string `envconfig:"ADMIN_ID"`
		WorkerID string `envconfig:"WORKER_ID"`
		APIKey   string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	DB struct {
		SQLite struct {
			Path           string `envconfig:"PATH"`
			BusyTimeoutMS  int    `envconfig:"BUSY_TIMEOUT_MS"`
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
		} `envconfig:"SQLITE"`
	} `envconfig:"DB"`

	Remote struct {
		BaseURL        string `envconfig:"BASE_URL"`
		SigningKey     string `envconfig:"SIGNING_KEY"`
		TokenExpireMin int    `envconfig:"TOKEN_EXPIRE_MIN"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS"`
	} `envconfig:"REMOTE"`

	Sync struct {
		IntervalSeconds          int `envconfig:"INTERVAL_SECONDS"`
		BatchSize                int `envconfig:"BATCH_SIZE"`
		BatchDelayMS             int `envconfig:"BATCH_DELAY_MS"`
		UpdateDelayMS            int `envconfig:"UPDATE_DELAY_MS"`
		ReconcileIntervalSeconds int `envconfig:"RECONCILE_INTERVAL_SECONDS"`
		SettingsTTLHours         int `envconfig:"SETTINGS_TTL_HOURS"`
	} `envconfig:"SYNC"`

	Network struct {
		ProbeURL         string `envconfig:"PROBE_URL"`
		FallbackProbeURL string `envconfig:"FALLBACK_PROBE_URL"`
		ProbeTimeoutMS   int    `envconfig:"PROBE_TIMEOUT_MS"`
		OfflineThreshold int    `envconfig:"OFFLINE_THRESHOLD"`
		FastTickSeconds  int    `envconfig:"FAST_TICK_SECONDS"`
		SyncTickSeconds  int    `envconfig:"SYNC_TICK_SECONDS"`
	} `envconfig:"NETWORK"`

	Archive struct {
		Enable          bool   `envconfig:"ENABLE"`
		BucketName      string `envconfig:"BUCKET_NAME"`
		Directory       string `envconfig:"DIRECTORY"`
		APIEndpoint     string `envconfig:"API_ENDPOINT"`
		AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
		SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
	} `envconfig:"ARCHIVE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
