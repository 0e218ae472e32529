package users

import "context"

type Repository interface {
	// Create inserta y devuelve el id asignado por el store.
	// Un email duplicado devuelve ErrEmailTaken (constraint UNIQUE).
	Create(ctx context.Context, u User) (int64, error)

	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByCredentials(ctx context.Context, email, password string) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)

	// Update toca solo name y email. Cero filas afectadas => ErrNotFound.
	Update(ctx context.Context, id int64, name, email string) error

	// Delete borra el usuario; el cascade del store arrastra sus mascotas.
	Delete(ctx context.Context, id int64) error
}
