package records

import "context"

type Repository interface {
	Create(ctx context.Context, rec MedicalRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (MedicalRecord, error)
	ListByPet(ctx context.Context, petID int64) ([]MedicalRecord, error)
}
