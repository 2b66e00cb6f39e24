package utils

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Session  SessionConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name     string
	Port     string
	Debug    bool
	LogPath  string
	Timezone string

	// AllowedOrigins lists the browser origins CORS admits; "*" admits any
	AllowedOrigins []string
}

// StoreConfig selects the document store backend: "postgres" or "mongo".
type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig is optional. An empty Addr disables the snapshot cache and
// falls back to an in-process submission guard.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	ExpiryHours int
}

type BookingConfig struct {
	SubmitGuard time.Duration
	CacheTTL    time.Duration
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

// Location returns the configured time zone, UTC when it cannot be loaded.
func (c AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("travel-booking", pflag.ContinueOnError)
	flags.String("env", ".env", "path to the .env config file")
	flags.String("port", "", "HTTP port (overrides PORT)")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	envPath, _ := flags.GetString("env")
	viper.SetConfigFile(envPath)
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "travel-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TIMEZONE", "Asia/Ho_Chi_Minh")
	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("MONGO_DB", "travel")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("SUBMIT_GUARD_SECONDS", 5)
	viper.SetDefault("CACHE_TTL_SECONDS", 300)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	if err := viper.BindPFlag("PORT", flags.Lookup("port")); err != nil {
		return nil, err
	}
	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}

	config := &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Port:     port,
			Debug:    viper.GetBool("DEBUG"),
			LogPath:  viper.GetString("LOG_PATH"),
			Timezone: viper.GetString("TIMEZONE"),

			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Store: StoreConfig{
			Driver: viper.GetString("STORE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DB"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Booking: BookingConfig{
			SubmitGuard: time.Duration(viper.GetInt("SUBMIT_GUARD_SECONDS")) * time.Second,
			CacheTTL:    time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
	}

	return config, nil
}

// splitList reads a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
