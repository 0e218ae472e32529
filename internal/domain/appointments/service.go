package appointments

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	PetID  int64
	Date   string
	Reason string
}

// Create fija Status en "Pending" siempre y relee la fila creada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	date := strings.TrimSpace(in.Date)
	reason := strings.TrimSpace(in.Reason)
	if in.PetID <= 0 || date == "" || reason == "" {
		return Appointment{}, ErrInvalidInput
	}

	id, err := s.repo.Create(ctx, Appointment{
		PetID:  in.PetID,
		Date:   date,
		Reason: reason,
		Status: StatusPending,
	})
	if err != nil {
		return Appointment{}, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]Appointment, error) {
	return s.repo.ListByPet(ctx, petID)
}
