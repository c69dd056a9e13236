package config

import (
	"fmt"
	"strings"
)

// Defaults applied when discrete connection components are omitted. The
// password deliberately has no default.
const (
	DefaultPort     = "5432"
	DefaultDatabase = "postgres"
	DefaultUser     = "postgres"
)

// ConnectionParams describes a PostgreSQL connection target, either as a full
// URL or as discrete components.
type ConnectionParams struct {
	URL      string
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

// DSN resolves the parameters into a lib/pq connection string. A non-blank
// URL is used verbatim; otherwise the discrete components are assembled into
// a keyword/value string with defaults for port, database, and user. Host and
// password are required in component form.
func (p ConnectionParams) DSN() (string, error) {
	if p.URL != "" {
		return p.URL, nil
	}

	if p.Host == "" {
		return "", fmt.Errorf("host is required")
	}
	if p.Password == "" {
		return "", fmt.Errorf("password is required")
	}

	port := p.Port
	if port == "" {
		port = DefaultPort
	}
	database := p.Database
	if database == "" {
		database = DefaultDatabase
	}
	user := p.User
	if user == "" {
		user = DefaultUser
	}

	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=require",
		p.Host, port, database, user, p.Password), nil
}

// Redacted returns a loggable description of the connection target with the
// password removed.
func (p ConnectionParams) Redacted() string {
	if p.URL != "" {
		return redactPassword(p.URL)
	}

	dsn, err := p.DSN()
	if err != nil {
		return ""
	}
	parts := strings.Fields(dsn)
	for i, part := range parts {
		if strings.HasPrefix(part, "password=") {
			parts[i] = "password=***"
		}
	}
	return strings.Join(parts, " ")
}

// redactPassword removes the password from a connection URL for safe logging.
func redactPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgresql://") || strings.HasPrefix(connStr, "postgres://") {
		parts := strings.SplitN(connStr, "@", 2)
		if len(parts) == 2 {
			userParts := strings.Split(parts[0], ":")
			if len(userParts) >= 3 {
				return userParts[0] + "://" + userParts[1] + ":***@" + parts[1]
			}
		}
	}
	return connStr
}
