package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"orderadmin/internal/adapters/out/database/catalogrepo"
	"orderadmin/internal/adapters/out/database/detailrepo"
	"orderadmin/internal/adapters/out/database/orderrepo"

	"github.com/avast/retry-go"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

const (
	DefaultPostgresPort = "5432"
	DefaultMySQLPort    = "3306"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config describes how to reach the order database.
// Host, Port, User, Password, Name and SSLMode apply to postgres and mysql;
// Path applies to sqlite and may be ":memory:".
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	ConnectAttempts uint
	ConnectDelay    time.Duration
	SlowThreshold   time.Duration
}

// Open connects to the configured database, retrying while the server is not yet
// reachable, and verifies the connection with a ping.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*gorm.DB, error) {
	attempts := cfg.ConnectAttempts
	if attempts == 0 {
		attempts = 1
	}

	var db *gorm.DB
	err := retry.Do(
		func() error {
			var openErr error
			db, openErr = open(ctx, cfg, logger)
			return openErr
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(cfg.ConnectDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ErrUnsupportedDriver)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("database not ready, retrying",
				zap.String("driver", cfg.Driver),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	return db, nil
}

// AutoMigrate creates or updates the tables used by the service.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.UserDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&detailrepo.OrderDetailDTO{},
	)
}

func open(ctx context.Context, cfg Config, logger *zap.Logger) (*gorm.DB, error) {
	dialector, err := newDialector(cfg, logger)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(logger, cfg.SlowThreshold),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Driver == DriverSQLite {
		// one connection keeps an in-memory database alive and matches SQLite's single writer
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

func newDialector(cfg Config, logger *zap.Logger) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres:
		connConfig, err := pgx.ParseConfig(PostgresDSN(cfg))
		if err != nil {
			return nil, err
		}
		connConfig.Tracer = &tracelog.TraceLog{
			Logger:   newZapTracer(logger),
			LogLevel: tracelog.LogLevelWarn,
		}
		return postgres.New(postgres.Config{Conn: stdlib.OpenDB(*connConfig)}), nil
	case DriverMySQL:
		return mysql.Open(MySQLDSN(cfg)), nil
	case DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// PostgresDSN renders cfg as a postgres:// URL. Credentials and the database
// name are percent-encoded, and an empty port falls back to DefaultPostgresPort.
func PostgresDSN(cfg Config) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(cfg.Host, portOrDefault(cfg.Port, DefaultPostgresPort)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	switch {
	case cfg.User != "" && cfg.Password != "":
		dsn.User = url.UserPassword(cfg.User, cfg.Password)
	case cfg.User != "":
		dsn.User = url.User(cfg.User)
	}
	return dsn.String()
}

func portOrDefault(port, fallback string) string {
	if port == "" {
		return fallback
	}
	return port
}

// MySQLDSN renders cfg with the driver's own DSN builder so credentials are escaped.
func MySQLDSN(cfg Config) string {
	mc := mysqldriver.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, portOrDefault(cfg.Port, DefaultMySQLPort))
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}
