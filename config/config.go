package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "WIDGETBRAIN"

type Configuration struct {
	ApiPort string `json:"api_port" mapstructure:"api_port"`
	LogPath string `json:"log_path" mapstructure:"log_path"`
	LogMode string `json:"log_mode" mapstructure:"log_mode"` // "dev" ou "prod"

	Database   string `json:"database" mapstructure:"database"` // "sqlite3" ou "postgres"
	DbHost     string `json:"db_host" mapstructure:"db_host"`
	DbPort     string `json:"db_port" mapstructure:"db_port"`
	DbUser     string `json:"db_user" mapstructure:"db_user"`
	DbName     string `json:"db_name" mapstructure:"db_name"`
	DbPass     string `json:"db_pass" mapstructure:"db_pass"`
	DbSSLMode  string `json:"db_sslmode" mapstructure:"db_sslmode"`
	SqlitePath string `json:"sqlite_path" mapstructure:"sqlite_path"`
	DebugSQL   bool   `json:"debug_sql" mapstructure:"debug_sql"`

	// Tabela onde vive o contexto de treinamento de cada widget.
	ContextTable string `json:"context_table" mapstructure:"context_table"`
	RoutePath    string `json:"route_path" mapstructure:"route_path"`
}

var defaults = map[string]any{
	"api_port":      "8080",
	"log_path":      "",
	"log_mode":      "dev",
	"database":      "sqlite3",
	"db_host":       "localhost",
	"db_port":       "5432",
	"db_user":       "postgres",
	"db_name":       "widgetbrain",
	"db_pass":       "",
	"db_sslmode":    "disable",
	"sqlite_path":   "db/database.db",
	"debug_sql":     false,
	"context_table": "360ia_db",
	"route_path":    "/",
}

// Load reads the JSON config at path (optional) and applies WIDGETBRAIN_* env overrides.
func Load(path string) (Configuration, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Configuration{}, err
			}
			// sem arquivo: seguimos com defaults + env
		}
	}

	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return Configuration{}, err
	}

	if strings.TrimSpace(c.Database) == "" {
		c.Database = "sqlite3"
	}
	if strings.TrimSpace(c.ContextTable) == "" {
		c.ContextTable = "360ia_db"
	}
	if !strings.HasPrefix(c.RoutePath, "/") {
		c.RoutePath = "/" + c.RoutePath
	}

	return c, nil
}
