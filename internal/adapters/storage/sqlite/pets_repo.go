package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-agenda/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	// Breed nil llega como NULL; un userId inexistente choca contra la
	// foreign key y el error sube sin mapear (500 genérico arriba).
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (userId, name, species, breed)
		VALUES (?, ?, ?, ?)
	`, p.UserID, p.Name, p.Species, p.Breed)
	if err != nil {
		return 0, fmt.Errorf("insert pet: %w", err)
	}
	return res.LastInsertId()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, userId, name, species, breed
		FROM pets
		WHERE id = ?
	`, id)

	var p pets.Pet
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Species, &p.Breed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, userID int64) ([]pets.Pet, error) {
	return r.list(ctx, `
		SELECT id, userId, name, species, breed
		FROM pets
		WHERE userId = ?
		ORDER BY id ASC
	`, userID)
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, `
		SELECT id, userId, name, species, breed
		FROM pets
		ORDER BY id ASC
	`)
}

func (r *PetsRepo) list(ctx context.Context, query string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Species, &p.Breed); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
