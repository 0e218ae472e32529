package appointments

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)
	ListByPet(ctx context.Context, petID int64) ([]Appointment, error)
}
