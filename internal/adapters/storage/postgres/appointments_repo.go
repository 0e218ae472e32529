package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-agenda/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO appointments (pet_id, date, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, a.PetID, a.Date, a.Reason, a.Status).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert appointment: %w", err)
	}
	return id, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, date, reason, status
		FROM appointments
		WHERE id = $1
	`, id)

	var a appointments.Appointment
	if err := row.Scan(&a.ID, &a.PetID, &a.Date, &a.Reason, &a.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) ListByPet(ctx context.Context, petID int64) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, date, reason, status
		FROM appointments
		WHERE pet_id = $1
		ORDER BY id ASC
	`, petID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		var a appointments.Appointment
		if err := rows.Scan(&a.ID, &a.PetID, &a.Date, &a.Reason, &a.Status); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
