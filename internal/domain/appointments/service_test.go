package appointments

import (
	"context"
	"testing"
)

type testRepo struct {
	byID   map[int64]Appointment
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Appointment{}, nextID: 1}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) (int64, error) {
	a.ID = r.nextID
	r.nextID++
	r.byID[a.ID] = a
	return a.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID int64) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.PetID == petID {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestService_Create_AlwaysPending(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a, err := svc.Create(context.Background(), CreateInput{PetID: 1, Date: "2026-09-15", Reason: "control"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Status != StatusPending {
		t.Fatalf("expected status %q, got %q", StatusPending, a.Status)
	}
	if a.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	cases := []CreateInput{
		{PetID: 0, Date: "2026-09-15", Reason: "control"},
		{PetID: 1, Date: "", Reason: "control"},
		{PetID: 1, Date: "2026-09-15", Reason: ""},
	}
	for _, in := range cases {
		if _, err := svc.Create(ctx, in); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}
