package cmd

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"orderadmin/internal/adapters/out/database"
	redisadapter "orderadmin/internal/adapters/out/redis"
	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/jobs"
	"orderadmin/internal/pkg/errs"
)

const (
	defaultHTTPPort          = "8080"
	defaultDBDriver          = database.DriverPostgres
	defaultDBConnectAttempts = 10
	defaultDBConnectDelay    = 2 * time.Second
	defaultOrderDeletedTopic = "orders.deleted"
	defaultPurgeRetention    = 30 * 24 * time.Hour
	defaultPurgeBatchSize    = 500
	defaultUserCacheSize     = 1024
	defaultLogLevel          = "info"
)

type Config struct {
	HTTPPort string
	LogLevel string

	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBPath            string
	DBMaxOpenConns    int
	DBConnectAttempts uint
	DBConnectDelay    time.Duration
	DBAutoMigrate     bool

	KafkaBrokers           []string
	KafkaOrderDeletedTopic string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// LockTTL is the lease length of cross-replica locks.
	LockTTL time.Duration

	// PurgeSchedule empty disables the purge job.
	PurgeSchedule  string
	PurgeRetention time.Duration
	PurgeBatchSize int
	// PurgeLockRefresh must be shorter than LockTTL.
	PurgeLockRefresh time.Duration

	UserCacheSize int

	DeleteSucceededMessage    string
	DeleteFailedMessagePrefix string
}

// LoadConfig reads the configuration through getenv, applying defaults to unset keys.
func LoadConfig(getenv func(string) string) (Config, error) {
	r := envReader{getenv: getenv}

	config := Config{
		HTTPPort: r.get("HTTP_PORT", defaultHTTPPort),
		LogLevel: r.get("LOG_LEVEL", defaultLogLevel),

		DBDriver:          strings.ToLower(r.get("DB_DRIVER", defaultDBDriver)),
		DBHost:            r.get("DB_HOST", ""),
		DBPort:            r.get("DB_PORT", ""),
		DBUser:            r.get("DB_USER", ""),
		DBPassword:        r.get("DB_PASSWORD", ""),
		DBName:            r.get("DB_NAME", ""),
		DBSslMode:         r.get("DB_SSLMODE", ""),
		DBPath:            r.get("DB_PATH", ""),
		DBMaxOpenConns:    r.getInt("DB_MAX_OPEN_CONNS", 0),
		DBConnectAttempts: uint(r.getInt("DB_CONNECT_ATTEMPTS", defaultDBConnectAttempts)),
		DBConnectDelay:    r.getDuration("DB_CONNECT_DELAY", defaultDBConnectDelay),
		DBAutoMigrate:     r.getBool("DB_AUTO_MIGRATE", false),

		KafkaBrokers:           r.getList("KAFKA_BROKERS"),
		KafkaOrderDeletedTopic: r.get("KAFKA_ORDER_DELETED_TOPIC", defaultOrderDeletedTopic),

		RedisAddr:     r.get("REDIS_ADDR", ""),
		RedisPassword: r.get("REDIS_PASSWORD", ""),
		RedisDB:       r.getInt("REDIS_DB", 0),
		LockTTL:       r.getDuration("LOCK_TTL", redisadapter.DefaultLockTTL),

		PurgeSchedule:    r.get("PURGE_SCHEDULE", ""),
		PurgeRetention:   r.getDuration("PURGE_RETENTION", defaultPurgeRetention),
		PurgeBatchSize:   r.getInt("PURGE_BATCH_SIZE", defaultPurgeBatchSize),
		PurgeLockRefresh: r.getDuration("PURGE_LOCK_REFRESH", jobs.DefaultLockRefresh),

		UserCacheSize: r.getInt("USER_CACHE_SIZE", defaultUserCacheSize),

		DeleteSucceededMessage:    r.get("DELETE_SUCCEEDED_MESSAGE", commands.DefaultSucceededMessage),
		DeleteFailedMessagePrefix: r.get("DELETE_FAILED_MESSAGE_PREFIX", commands.DefaultFailedMessagePrefix),
	}

	if err := errors.Join(append(r.errs, config.validate())...); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) validate() error {
	var errList []error

	switch c.DBDriver {
	case database.DriverPostgres, database.DriverMySQL:
		if c.DBHost == "" {
			errList = append(errList, errs.NewValueIsRequiredError("DB_HOST"))
		}
		if c.DBName == "" {
			errList = append(errList, errs.NewValueIsRequiredError("DB_NAME"))
		}
		if c.DBUser == "" {
			errList = append(errList, errs.NewValueIsRequiredError("DB_USER"))
		}
	case database.DriverSQLite:
		if c.DBPath == "" {
			errList = append(errList, errs.NewValueIsRequiredError("DB_PATH"))
		}
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("DB_DRIVER", database.ErrUnsupportedDriver))
	}

	if c.PurgeSchedule != "" {
		if c.PurgeRetention < 0 {
			errList = append(errList, errs.NewValueIsOutOfRangeError("PURGE_RETENTION", c.PurgeRetention, 0, "unbounded"))
		}
		if c.PurgeBatchSize < 1 || c.PurgeBatchSize > commands.MaxPurgeBatchSize {
			errList = append(errList, errs.NewValueIsOutOfRangeError(
				"PURGE_BATCH_SIZE", c.PurgeBatchSize, 1, commands.MaxPurgeBatchSize))
		}
		if c.PurgeLockRefresh <= 0 || c.PurgeLockRefresh >= c.LockTTL {
			errList = append(errList, errs.NewValueIsOutOfRangeError(
				"PURGE_LOCK_REFRESH", c.PurgeLockRefresh, time.Duration(0), c.LockTTL))
		}
	}

	return errors.Join(errList...)
}

// Database returns the connection settings for database.Open.
func (c Config) Database() database.Config {
	return database.Config{
		Driver:          c.DBDriver,
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSslMode,
		Path:            c.DBPath,
		MaxOpenConns:    c.DBMaxOpenConns,
		ConnectAttempts: c.DBConnectAttempts,
		ConnectDelay:    c.DBConnectDelay,
		SlowThreshold:   200 * time.Millisecond,
	}
}

// Purge returns the purge job settings.
func (c Config) Purge() jobs.PurgeConfig {
	return jobs.PurgeConfig{
		Schedule:    c.PurgeSchedule,
		Retention:   c.PurgeRetention,
		BatchSize:   c.PurgeBatchSize,
		LockRefresh: c.PurgeLockRefresh,
	}
}

func (c Config) Messages() commands.Messages {
	return commands.Messages{
		Succeeded:    c.DeleteSucceededMessage,
		FailedPrefix: c.DeleteFailedMessagePrefix,
	}
}

// envReader collects parse errors so that every bad key is reported at once.
type envReader struct {
	getenv func(string) string
	errs   []error
}

func (r *envReader) get(key, fallback string) string {
	if value := strings.TrimSpace(r.getenv(key)); value != "" {
		return value
	}
	return fallback
}

func (r *envReader) getInt(key string, fallback int) int {
	raw := r.get(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return value
}

func (r *envReader) getBool(key string, fallback bool) bool {
	raw := r.get(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return value
}

func (r *envReader) getDuration(key string, fallback time.Duration) time.Duration {
	raw := r.get(key, "")
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return value
}

func (r *envReader) getList(key string) []string {
	var items []string
	for _, item := range strings.Split(r.get(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
