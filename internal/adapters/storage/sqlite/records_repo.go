package sqlite

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
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO medical_records (petId, type, name, date)
		VALUES (?, ?, ?, ?)
	`, rec.PetID, rec.Type, rec.Name, rec.Date)
	if err != nil {
		return 0, fmt.Errorf("insert medical record: %w", err)
	}
	return res.LastInsertId()
}

func (r *RecordsRepo) GetByID(ctx context.Context, id int64) (records.MedicalRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, petId, type, name, date
		FROM medical_records
		WHERE id = ?
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
		SELECT id, petId, type, name, date
		FROM medical_records
		WHERE petId = ?
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
