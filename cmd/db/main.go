package main

import (
	"log"
	"os"
	"strings"

	"github.com/mhojune/idea-creator/config"
	"github.com/mhojune/idea-creator/internal/database"
)

// Applies init.sql to the configured database. Statements run one by
// one inside a transaction, so a broken schema file leaves nothing
// behind.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := database.Open(cfg.Database.URL, cfg.Database.Token)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	sqlBytes, err := os.ReadFile("init.sql")
	if err != nil {
		log.Fatalf("Failed to read init.sql: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatal(err)
	}

	for _, stmt := range strings.Split(string(sqlBytes), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			log.Fatalf("SQL failed:\n%s\nERROR: %v", stmt, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}

	log.Println("DONE")
}
