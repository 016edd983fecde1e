// Package database opens the relational store behind the repositories and
// keeps its schema up to date.
package database

import (
	"context"
	"fmt"
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forumapi/forum-api/internal/config"
	"github.com/forumapi/forum-api/internal/repository/relational/model"
)

// DSN renders the connection string for cfg.Driver.
func DSN(cfg config.DatabaseConfig) (string, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return "", err
	}

	switch cfg.Driver {
	case config.DriverMySQL:
		c := mysqldriver.NewConfig()
		c.User = cfg.User
		c.Passwd = cfg.Pass
		c.Net = "tcp"
		c.Addr = net.JoinHostPort(cfg.Host, cfg.DefaultPort())
		c.DBName = cfg.Name
		c.ParseTime = true
		c.Loc = loc
		return c.FormatDSN(), nil
	case config.DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			cfg.Host, cfg.User, cfg.Pass, cfg.Name, cfg.DefaultPort(), cfg.SSLMode, loc.String()), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Dialector picks the gorm dialect for cfg.Driver.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverPostgres {
		return postgres.Open(dsn), nil
	}
	return mysql.Open(dsn), nil
}

// Open connects and pings, retrying up to cfg.MaxRetry times.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		// duplicate keys come back as gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}

	var db *gorm.DB
	for i := range cfg.MaxRetry {
		db, err = gorm.Open(dialector, gormConfig)
		if err == nil {
			err = Ping(ctx, db)
			if err == nil {
				return db, nil
			}
			_ = Close(db)
		}

		logrus.WithError(err).Warnf("failed to connect to database (attempt %d/%d)", i+1, cfg.MaxRetry)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", cfg.MaxRetry, err)
}

// Ping checks the underlying connection pool answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates every forum table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(model.All()...)
}
