// Package database opens the libsql connection shared by the server
// and the schema tool.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Open dials a libsql database. url is a libsql://, https:// or wss://
// endpoint; token may be empty for a local sqld without auth.
func Open(url, token string) (*sql.DB, error) {
	dsn := url
	if token != "" {
		dsn = fmt.Sprintf("%s?authToken=%s", url, token)
	}

	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
