// Command migrate creates the famcal tables in the configured Postgres
// database. Every statement is idempotent, so it is safe to rerun.
package main

import (
	"context"
	"database/sql"
	_ "embed"
	"flag"
	"fmt"
	"strings"
	"time"

	"famcal/config"
	"famcal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schema string

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// statements splits the schema into single statements, dropping blanks.
func statements(src string) []string {
	var out []string
	for _, s := range strings.Split(src, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func migrate(ctx context.Context, db *sql.DB, stmts []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

func main() {
	dryRun := flag.Bool("dry-run", false, "print the schema instead of applying it")
	flag.Parse()

	cfg := config.Load()
	utils.SetupLogger(cfg.LogLevel, cfg.IsProduction())

	stmts := statements(schema)
	if *dryRun {
		for _, s := range stmts {
			fmt.Println(s + ";")
		}
		return
	}

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}
	db, err := openDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := migrate(ctx, db, stmts); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Int("statements", len(stmts)).Msg("schema applied")
}
