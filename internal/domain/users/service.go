package users

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login compara email+password contra el store (texto plano, fiel al
// backend original). Devuelve el usuario completo; quitar el password
// antes de responder es responsabilidad del handler.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByCredentials(ctx, strings.TrimSpace(email), password)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// ListClients devuelve las cuentas con rol "user" (los admins no son clientes).
func (s *Service) ListClients(ctx context.Context) ([]User, error) {
	return s.repo.ListByRole(ctx, RoleUser)
}

type CreateClientInput struct {
	Name     string
	Email    string
	Password string
}

// CreateClient inserta un cliente con rol "user" y relee la fila creada.
// El chequeo previo de email es solo fast-path: el 409 autoritativo sale
// del constraint UNIQUE del store (el insert puede perder la carrera).
func (s *Service) CreateClient(ctx context.Context, in CreateClientInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	id, err := s.repo.Create(ctx, User{
		Name:     name,
		Email:    email,
		Password: in.Password,
		Role:     RoleUser,
	})
	if err != nil {
		return User{}, err
	}

	return s.repo.GetByID(ctx, id)
}

type UpdateClientInput struct {
	Name  string
	Email string
}

// UpdateClient actualiza name/email (role y password quedan como están)
// y devuelve la fila actualizada. Email en uso por OTRO usuario => ErrEmailTaken.
func (s *Service) UpdateClient(ctx context.Context, id int64, in UpdateClientInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return User{}, ErrInvalidInput
	}

	if other, err := s.repo.GetByEmail(ctx, email); err == nil {
		if other.ID != id {
			return User{}, ErrEmailTaken
		}
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	if err := s.repo.Update(ctx, id, name, email); err != nil {
		return User{}, err
	}

	return s.repo.GetByID(ctx, id)
}

// DeleteClient borra el usuario; sus mascotas (y las citas y registros
// de estas) caen por el cascade del store, no por código de aplicación.
func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
