// Package postgres es el store alternativo para despliegues con base
// compartida; se activa configurando db.dsn. Mismo contrato que el
// adapter sqlite.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// pgx en modo extendido no acepta varios statements por Exec, así que
// el DDL va en sentencias sueltas.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		species TEXT,
		breed TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		pet_id BIGINT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		reason TEXT,
		status TEXT DEFAULT 'Pending'
	)`,
	`CREATE TABLE IF NOT EXISTS medical_records (
		id BIGSERIAL PRIMARY KEY,
		pet_id BIGINT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		date TEXT NOT NULL
	)`,
}

// EnsureSchema crea las tablas si faltan (DDL idempotente).
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Seed replica la siembra del adapter sqlite: solo con users vacía,
// ids fijos, re-ejecutable sin duplicar.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password, role) VALUES
			(1, 'Dueño de Prueba', 'test@petagenda.com', 'password', 'user'),
			(2, 'Ana García', 'ana@garcia.com', 'password', 'user'),
			(99, 'Admin', 'admin@petagenda.com', 'password', 'admin')
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO pets (id, user_id, name, species, breed) VALUES
			(1, 1, 'Rex', 'Perro', 'Pastor Alemán')
		ON CONFLICT (id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("seed pets: %w", err)
	}

	// las secuencias no se enteran de los ids explícitos
	for _, table := range []string{"users", "pets"} {
		_, err = db.ExecContext(ctx,
			fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))`, table, table),
		)
		if err != nil {
			return fmt.Errorf("fix %s sequence: %w", table, err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
