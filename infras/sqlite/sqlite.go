package sqlite

import (
	"fmt"
	"siesta/config"
	"siesta/shared/constant"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// sqlite allows one writer at a time; a single pooled connection serializes
// writes without busy errors surfacing to callers.
const (
	sqliteMaxIdleConnection = 1
	sqliteMaxOpenConnection = 1
)

type Connection struct {
	DB *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		DB: CreateSQLiteConnection(*config),
	}
}

// Descriptor builds the DSN for the local store: WAL journaling so a write in
// progress never corrupts the row on crash, foreign keys on, and a busy
// timeout so concurrent local readers wait instead of failing.
func Descriptor(config config.Config) string {
	busyTimeout := config.DB.SQLite.BusyTimeoutMS
	if busyTimeout == 0 {
		busyTimeout = constant.DefaultSQLiteBusyTimeoutMS
	}

	return fmt.Sprintf(
		"file:%s?_journal_mode=WAL&_busy_timeout=%d&_foreign_keys=on",
		config.DB.SQLite.Path,
		busyTimeout,
	)
}

// CreateSQLiteConnection opens the embedded database, retrying on failure.
func CreateSQLiteConnection(config config.Config) *sqlx.DB {
	descriptor := Descriptor(config)

	maxRetry := config.DB.SQLite.MaxRetry
	if maxRetry == 0 {
		maxRetry = 1
	}

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("sqlite3", descriptor)
		if err == nil {
			log.
				Info().
				Str("path", config.DB.SQLite.Path).
				Msg("Connected to local store")
			sqlDB.SetMaxIdleConns(sqliteMaxIdleConnection)
			sqlDB.SetMaxOpenConns(sqliteMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("path", config.DB.SQLite.Path).
			Int("attempt", retry+1).
			Msg("Failed opening local store, retrying")

		time.Sleep(time.Duration(config.DB.SQLite.RetryWaitTime) * time.Second)
	}

	return nil
}
