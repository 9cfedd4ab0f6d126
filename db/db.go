package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"widgetbrain/config"
	"widgetbrain/logger"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

const memoryDSN = ":memory:"

// Connect abre conexão com o DB (sqlite3 por padrão, ou postgres).
// O schema é externo: nenhuma migração é feita aqui.
func Connect(conf config.Configuration, log *logger.Logger) (*gorm.DB, error) {
	dialect, dsn, err := dataSource(conf)
	if err != nil {
		return nil, err
	}

	log.Info("Connecting to database...", "dialect", dialect, "host", conf.DbHost, "db_name", conf.DbName)
	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		log.Error("Failed to connect to database", "dialect", dialect, "error", err)
		return nil, fmt.Errorf("connect %s: %w", dialect, err)
	}

	if dialect == "sqlite3" {
		// um único writer; com :memory: cada conexão seria um banco diferente
		db.DB().SetMaxOpenConns(1)
	}

	db.SetLogger(log.With("component", "gorm"))
	db.LogMode(conf.DebugSQL)

	return db, nil
}

func dataSource(conf config.Configuration) (dialect string, dsn string, err error) {
	switch strings.ToLower(strings.TrimSpace(conf.Database)) {
	case "postgres", "postgresql":
		pairs := [][2]string{
			{"host", conf.DbHost},
			{"port", conf.DbPort},
			{"user", conf.DbUser},
			{"dbname", conf.DbName},
			{"password", conf.DbPass},
			{"sslmode", conf.DbSSLMode},
		}
		parts := make([]string, 0, len(pairs))
		for _, kv := range pairs {
			parts = append(parts, kv[0]+"="+quoteDSNValue(kv[1]))
		}
		return "postgres", strings.Join(parts, " "), nil
	case "", "sqlite", "sqlite3":
		path := conf.SqlitePath
		if path == "" {
			path = "db/database.db"
		}
		if path != memoryDSN {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return "", "", fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		return "sqlite3", path, nil
	default:
		return "", "", fmt.Errorf("unsupported database %q", conf.Database)
	}
}

// quoteDSNValue quotes a key/value connection-string value for lib/pq.
// Unquoted, an empty value would swallow the next key and a space would split the value.
func quoteDSNValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
