package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config keeps runtime settings for the dashboard process.
type Config struct {
	DatabaseURL  string
	ListenAddr   string
	SnapshotPath string
}

const (
	defaultDatabaseURL  = "postgresql://localhost:5432/workplan_db"
	defaultListenAddr   = ":8080"
	defaultSnapshotPath = "workplan_data.json"
)

// Load resolves configuration. The store DSN comes from the secrets file
// first, then the DATABASE_URL environment variable, then the default.
func Load() Config {
	return load(".", "./config")
}

func load(secretsDirs ...string) Config {
	cfg := Config{
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ListenAddr:   strings.TrimSpace(os.Getenv("WORKPLAN_ADDR")),
		SnapshotPath: strings.TrimSpace(os.Getenv("WORKPLAN_SNAPSHOT")),
	}

	if url := secretsDatabaseURL(secretsDirs); url != "" {
		cfg.DatabaseURL = url
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = defaultSnapshotPath
	}
	return cfg
}

// secretsDatabaseURL reads database.url from an optional secrets.toml.
// A missing or unreadable secrets file is treated as absent; the chain
// falls through to the environment.
func secretsDatabaseURL(dirs []string) string {
	v := viper.New()
	v.SetConfigName("secrets")
	v.SetConfigType("toml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return strings.TrimSpace(v.GetString("database.url"))
}
