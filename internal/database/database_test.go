package database

import (
	"context"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/forumapi/forum-api/internal/config"
)

func baseConfig(driver string) config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:   driver,
		Host:     "db",
		User:     "forum",
		Pass:     "secret",
		Name:     "forumapi",
		Timezone: "UTC",
		SSLMode:  "disable",
		MaxRetry: 1,
	}
}

func TestDSNMySQL(t *testing.T) {
	dsn, err := DSN(baseConfig(config.DriverMySQL))
	require.NoError(t, err)

	parsed, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "forum", parsed.User)
	assert.Equal(t, "secret", parsed.Passwd)
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "forumapi", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, "UTC", parsed.Loc.String())
}

func TestDSNPostgres(t *testing.T) {
	cfg := baseConfig(config.DriverPostgres)
	cfg.Port = "6543"

	dsn, err := DSN(cfg)
	require.NoError(t, err)
	assert.Equal(t, "host=db user=forum password=secret dbname=forumapi port=6543 sslmode=disable TimeZone=UTC", dsn)
}

func TestDSNErrors(t *testing.T) {
	_, err := DSN(baseConfig("sqlite"))
	assert.Error(t, err)

	cfg := baseConfig(config.DriverMySQL)
	cfg.Timezone = "Mars/Olympus"
	_, err = DSN(cfg)
	assert.Error(t, err)
}

func TestDialector(t *testing.T) {
	d, err := Dialector(baseConfig(config.DriverMySQL))
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = Dialector(baseConfig(config.DriverPostgres))
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())
}

func TestPing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	assert.NoError(t, Ping(context.TODO(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
