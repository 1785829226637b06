package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// PortalConfig configures the citizen-report portal (session auth).
type PortalConfig struct {
	RunAddress    string `env:"PORTAL_RUN_ADDRESS"`
	DatabaseDSN   string `env:"PORTAL_DATABASE_URI"`
	MigrationsDir string `env:"PORTAL_MIGRATIONS_DIR"`
	SessionSecret string `env:"PORTAL_SESSION_SECRET"`
}

// SalesConfig configures the order-tracking service (JWT auth).
type SalesConfig struct {
	RunAddress    string `env:"SALES_RUN_ADDRESS"`
	DatabaseDSN   string `env:"SALES_DATABASE_URI"`
	MigrationsDir string `env:"SALES_MIGRATIONS_DIR"`
	JWTSecret     string `env:"SALES_JWT_SECRET"`
	AdminUsername string `env:"SALES_ADMIN_USERNAME"`
	AdminPassword string `env:"SALES_ADMIN_PASSWORD"`
}

// LoadPortalConfig merges env vars over command line flags. Env wins.
func LoadPortalConfig() (*PortalConfig, error) {
	_ = godotenv.Load()

	var envConfig, flagsConfig PortalConfig
	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	flag.StringVar(&flagsConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagsConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagsConfig.MigrationsDir, "m", "migrations/portal", "Database migrations directory")
	flag.StringVar(&flagsConfig.SessionSecret, "s", "", "Session cookie secret")
	flag.Parse()

	conf := &PortalConfig{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		SessionSecret: defaultIfBlank(envConfig.SessionSecret, flagsConfig.SessionSecret),
	}
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.SessionSecret == "" {
		return nil, errors.New("session secret is not set")
	}
	return conf, nil
}

func MustLoadPortalConfig() *PortalConfig {
	conf, err := LoadPortalConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

// LoadSalesConfig merges env vars over command line flags. Env wins.
func LoadSalesConfig() (*SalesConfig, error) {
	_ = godotenv.Load()

	var envConfig, flagsConfig SalesConfig
	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	flag.StringVar(&flagsConfig.RunAddress, "a", "localhost:8081", "Run address in format host:port")
	flag.StringVar(&flagsConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagsConfig.MigrationsDir, "m", "migrations/sales", "Database migrations directory")
	flag.StringVar(&flagsConfig.JWTSecret, "j", "", "JWT signing secret")
	flag.StringVar(&flagsConfig.AdminUsername, "u", "admin", "Seed admin username")
	flag.StringVar(&flagsConfig.AdminPassword, "p", "", "Seed admin password")
	flag.Parse()

	conf := &SalesConfig{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:     defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		AdminUsername: defaultIfBlank(envConfig.AdminUsername, flagsConfig.AdminUsername),
		AdminPassword: defaultIfBlank(envConfig.AdminPassword, flagsConfig.AdminPassword),
	}
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadSalesConfig() *SalesConfig {
	conf, err := LoadSalesConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
