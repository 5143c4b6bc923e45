package db

import (
	"fmt"
	"time"

	"leadportaal/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Initialize opens the Postgres connection pool and applies the schema.
func Initialize(cfg *config.Config) (*sqlx.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
		)
	}

	conn, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return conn, nil
}

// Migrate creates the tables and indexes when they do not exist yet.
func Migrate(conn *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS quotes (
		id              UUID PRIMARY KEY,
		website_type    TEXT NOT NULL,
		features        TEXT[] NOT NULL DEFAULT '{}',
		budget          TEXT NOT NULL,
		timeline        TEXT NOT NULL,
		company_name    TEXT NOT NULL,
		contact_person  TEXT NOT NULL,
		email           TEXT NOT NULL,
		phone           TEXT NOT NULL,
		additional_info TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'nieuw',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS quotes_email_key ON quotes (email)`,
	`CREATE INDEX IF NOT EXISTS quotes_status_created_at_idx ON quotes (status, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS freelancers (
		id           UUID PRIMARY KEY,
		name         TEXT NOT NULL,
		email        TEXT NOT NULL,
		skills       TEXT[] NOT NULL DEFAULT '{}',
		experience   TEXT NOT NULL,
		availability TEXT NOT NULL,
		rate         TEXT NOT NULL,
		portfolio    TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'beschikbaar',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS freelancers_email_key ON freelancers (email)`,
	`CREATE INDEX IF NOT EXISTS freelancers_status_created_at_idx ON freelancers (status, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS freelancers_skills_idx ON freelancers USING GIN (skills)`,

	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_login    TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_login_ip TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id           UUID PRIMARY KEY,
		description  TEXT NOT NULL,
		type         TEXT NOT NULL,
		related_id   UUID,
		related_type TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS activities_created_at_idx ON activities (created_at DESC)`,
}
