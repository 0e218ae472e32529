package records

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medical record not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	PetID int64
	Type  string
	Name  string
	Date  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (MedicalRecord, error) {
	typ := strings.TrimSpace(in.Type)
	name := strings.TrimSpace(in.Name)
	date := strings.TrimSpace(in.Date)
	if in.PetID <= 0 || typ == "" || name == "" || date == "" {
		return MedicalRecord{}, ErrInvalidInput
	}

	id, err := s.repo.Create(ctx, MedicalRecord{
		PetID: in.PetID,
		Type:  typ,
		Name:  name,
		Date:  date,
	})
	if err != nil {
		return MedicalRecord{}, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]MedicalRecord, error) {
	return s.repo.ListByPet(ctx, petID)
}
