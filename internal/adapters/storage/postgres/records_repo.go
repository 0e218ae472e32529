package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-agenda/internal/domain/records"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) Create(ctx context.Context, rec records.MedicalRecord) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medical_records (pet_id, type, name, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, rec.PetID, rec.Type, rec.Name, rec.Date).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert medical record: %w", err)
	}
	return id, nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, type, name, date
		FROM medical_records
		WHERE id = $1
	`, id)

	var rec records.MedicalRecord
	if err := row.Scan(&rec.ID, &rec.PetID, &rec.Type, &rec.Name, &rec.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return records.MedicalRecord{}, records.ErrNotFound
		}
		return records.MedicalRecord{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID int64) ([]records.MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, type, name, date
		FROM medical_records
		WHERE pet_id = $1
		ORDER BY id ASC
	`, petID)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer rows.Close()

	out := make([]records.MedicalRecord, 0)
	for rows.Next() {
		var rec records.MedicalRecord
		if err := rows.Scan(&rec.ID, &rec.PetID, &rec.Type, &rec.Name, &rec.Date); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
