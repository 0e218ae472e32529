// Package sqlite es el store por defecto: un único archivo SQLite
// (o ":memory:" para dev/tests) accedido vía database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user'
);

CREATE TABLE IF NOT EXISTS pets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	userId INTEGER NOT NULL,
	name TEXT NOT NULL,
	species TEXT,
	breed TEXT,
	FOREIGN KEY (userId) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS appointments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	petId INTEGER NOT NULL,
	date TEXT NOT NULL,
	reason TEXT,
	status TEXT DEFAULT 'Pending',
	FOREIGN KEY (petId) REFERENCES pets(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS medical_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	petId INTEGER NOT NULL,
	type TEXT NOT NULL,
	name TEXT NOT NULL,
	date TEXT NOT NULL,
	FOREIGN KEY (petId) REFERENCES pets(id) ON DELETE CASCADE
);
`

// Open abre (o crea) el archivo, activa las foreign keys y asegura el
// schema (DDL idempotente). Cualquier fallo aquí es fatal para el
// proceso: sin store no se sirve nada.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Una sola conexión: el PRAGMA aplica siempre y ":memory:" no se
	// parte en bases separadas por conexión del pool.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return db, nil
}

// isUniqueViolation detecta el choque contra un constraint UNIQUE
// (email duplicado). Es la fuente de verdad del 409: el pre-chequeo de
// los services puede perder la carrera, esto no.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
