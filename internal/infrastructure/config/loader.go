package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "CL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from the environment's yaml file, .env and
// CL_* variables. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.lockTimeout", 3000)   // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)           // seconds
	v.SetDefault("database.slowQueryThreshold", 200) // milliseconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("auth.tokenTTL", 60) // minutes
	v.SetDefault("auth.issuer", "card-ledger")
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("ledger.sweepSchedule", "0 0 0 * * *")
	v.SetDefault("ledger.sweepOnStartup", true)
	v.SetDefault("ledger.sweepTimeout", 300) // seconds
	v.SetDefault("ledger.defaultPageSize", 20)
	v.SetDefault("ledger.maxPageSize", 100)
	v.SetDefault("ledger.timezone", "UTC")

	v.SetDefault("admin.username", "admin")

	v.SetDefault("cors.allowedOrigins", []string{"*"})
}

// getEnvironment reads CL_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies the short-form variables that don't follow the
// key replacer naming (CL_DB_* rather than CL_DATABASE_*)
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"DB_DRIVER":       "database.driver",
		"DB_HOST":         "database.host",
		"DB_PORT":         "database.port",
		"DB_USERNAME":     "database.username",
		"DB_PASSWORD":     "database.password",
		"DB_NAME":         "database.database",
		"DB_SSL_MODE":     "database.sslMode",
		"SERVER_HOST":     "server.host",
		"SERVER_PORT":     "server.port",
		"LOGGER_LEVEL":    "logger.level",
		"JWT_SECRET":      "auth.jwtSecret",
		"ADMIN_USERNAME":  "admin.username",
		"ADMIN_PASSWORD":  "admin.password",
		"LEDGER_TIMEZONE": "ledger.timezone",
		"SWEEP_SCHEDULE":  "ledger.sweepSchedule",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"DB_LOCK_TIMEOUT_MS":            "database.lockTimeout",
		"DB_RETRY_ATTEMPTS":             "database.retryAttempts",
		"DB_RETRY_DELAY_SECONDS":        "database.retryDelay",
		"AUTH_TOKEN_TTL_MINUTES":        "auth.tokenTTL",
		"AUTH_BCRYPT_COST":              "auth.bcryptCost",
		"LEDGER_DEFAULT_PAGE_SIZE":      "ledger.defaultPageSize",
		"LEDGER_MAX_PAGE_SIZE":          "ledger.maxPageSize",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(EnvPrefix+"_"+env, -1); value >= 0 {
			v.Set(key, value)
		}
	}

	if origins := os.Getenv(EnvPrefix + "_CORS_ALLOWED_ORIGINS"); origins != "" {
		v.Set("cors.allowedOrigins", strings.Split(origins, ","))
	}
}

func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw unit counts read from config into durations
func processDurations(config *Config) {
	// seconds
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Ledger.SweepTimeout = time.Duration(config.Ledger.SweepTimeout) * time.Second

	// minutes
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute

	// milliseconds
	config.Database.LockTimeout = time.Duration(config.Database.LockTimeout) * time.Millisecond
	config.Database.SlowQueryThreshold = time.Duration(config.Database.SlowQueryThreshold) * time.Millisecond
}
