package database

import (
	"fmt"
	"strings"
	"time"

	"go-web/pkg/resource"
)

const (
	ClientSQL  = "sql"
	ClientGorm = "gorm"
)

// Config describes the Postgres connection shared by both database clients
type Config struct {
	Client          string
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	Schema          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ConfigFromProperties reads the app.db.* properties
func ConfigFromProperties() Config {
	return Config{
		Client:          resource.GetStringOrDefault("app.db.client", ClientSQL),
		Host:            resource.GetString("app.db.host"),
		Port:            resource.GetString("app.db.port"),
		Username:        resource.GetString("app.db.username"),
		Password:        resource.GetString("app.db.password"),
		Database:        resource.GetString("app.db.database"),
		Schema:          resource.GetStringOrDefault("app.db.schema", "public"),
		SSLMode:         resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
		MaxOpenConns:    resource.GetInt("app.db.max-open-conns"),
		MaxIdleConns:    resource.GetInt("app.db.max-idle-conns"),
		ConnMaxLifetime: resource.GetDuration("app.db.conn-max-lifetime"),
	}
}

// DSN renders the key=value connection string understood by lib/pq and pgx.
// Values are quoted so empty values and spaces survive.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		quote(c.Host), quote(c.Port), quote(c.Username), quote(c.Password),
		quote(c.Database), quote(c.SSLMode), quote(c.Schema))
}

func quote(value string) string {
	return "'" + dsnEscaper.Replace(value) + "'"
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
