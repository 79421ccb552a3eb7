package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mansakrishna23/simple-message-bank/models"
)

type DB struct {
	*gorm.DB
	path string
}

// Open connects to the SQLite file at path, creating it if needed, and makes
// sure the messages table exists with the expected shape.
func Open(ctx context.Context, path string, busyTimeout time.Duration) (*DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(dsn(path, busyTimeout)), &gorm.Config{
		Logger: gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", models.ErrStorageUnavailable, path, err)
	}

	db := &DB{DB: gormDB, path: path}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := db.VerifySchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logrus.WithField("path", path).Info("Database ready")
	return db, nil
}

// dsn builds a file: URI for path. The path is escaped so '?', '#' and '%'
// stay part of the file name instead of becoming query or fragment.
func dsn(path string, busyTimeout time.Duration) string {
	query := url.Values{}
	query.Set("_busy_timeout", strconv.FormatInt(busyTimeout.Milliseconds(), 10))
	query.Set("_journal_mode", "WAL")

	u := url.URL{Scheme: "file", Opaque: url.PathEscape(path), RawQuery: query.Encode()}
	return u.String()
}

func (db *DB) Path() string {
	return db.path
}

func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return StorageError(err)
	}
	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// StorageError marks errors caused by the backing file itself (missing,
// read-only, full, not a database) as models.ErrStorageUnavailable. Other
// errors are returned unchanged.
func StorageError(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.Code {
	case sqlite3.ErrCantOpen, sqlite3.ErrReadonly, sqlite3.ErrFull,
		sqlite3.ErrIoErr, sqlite3.ErrPerm, sqlite3.ErrNotADB, sqlite3.ErrCorrupt:
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return err
}
