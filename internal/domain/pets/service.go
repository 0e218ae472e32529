package pets

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name    string
	Species string
	UserID  int64
	Breed   *string
}

// Create inserta y relee la fila creada. No pre-valida que UserID exista:
// si no existe, la foreign key del store falla y el error sube como
// fallo genérico del store.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	if name == "" || species == "" || in.UserID <= 0 {
		return Pet{}, ErrInvalidInput
	}

	var breed *string
	if in.Breed != nil {
		if b := strings.TrimSpace(*in.Breed); b != "" {
			breed = &b
		}
	}

	id, err := s.repo.Create(ctx, Pet{
		UserID:  in.UserID,
		Name:    name,
		Species: species,
		Breed:   breed,
	})
	if err != nil {
		return Pet{}, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, userID int64) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAll(ctx)
}
