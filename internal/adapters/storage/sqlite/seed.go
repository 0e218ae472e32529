package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Seed inserta los datos base solo si la tabla users está vacía; un
// segundo arranque contra el mismo archivo no duplica nada. Los ids
// van fijos (1, 2, 99) e INSERT OR IGNORE tolera una siembra parcial
// previa. Que falle no debe tumbar el arranque: el caller loguea y
// sigue.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	seedUsers := []struct {
		id    int64
		name  string
		email string
		role  string
	}{
		{1, "Dueño de Prueba", "test@petagenda.com", "user"},
		{2, "Ana García", "ana@garcia.com", "user"},
		{99, "Admin", "admin@petagenda.com", "admin"},
	}

	for _, u := range seedUsers {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO users (id, name, email, password, role) VALUES (?, ?, ?, ?, ?)`,
			u.id, u.name, u.email, "password", u.role,
		)
		if err != nil {
			return fmt.Errorf("seed user %d: %w", u.id, err)
		}
	}

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO pets (id, userId, name, species, breed) VALUES (?, ?, ?, ?, ?)`,
		1, 1, "Rex", "Perro", "Pastor Alemán",
	)
	if err != nil {
		return fmt.Errorf("seed pet: %w", err)
	}

	return nil
}
