package pets

import "context"

type Repository interface {
	// Create inserta y devuelve el id asignado por el store. Un UserID
	// inexistente revienta contra la foreign key; ese error sube tal cual.
	Create(ctx context.Context, p Pet) (int64, error)

	GetByID(ctx context.Context, id int64) (Pet, error)
	ListByOwner(ctx context.Context, userID int64) ([]Pet, error)
	ListAll(ctx context.Context) ([]Pet, error)
}
