package pets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pet-agenda/internal/domain/appointments"
	"pet-agenda/internal/domain/records"
	"pet-agenda/internal/middleware"
	"pet-agenda/internal/platform/httpx"
	"pet-agenda/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// OwnerDirectory resuelve el dueño de una mascota sin acoplar este
// paquete al módulo de usuarios (evita ciclos de imports; el router
// arma el adapter). nil sin error significa dueño inexistente.
type OwnerDirectory interface {
	OwnerByID(ctx context.Context, id int64) (*Owner, error)
}

func RegisterRoutes(r chi.Router, svc *Service, owners OwnerDirectory, apptsSvc *appointments.Service, recsSvc *records.Service, log logger.Logger) {
	// Pets (owner)
	r.Get("/pets", listByOwnerHandler(svc, log))

	// Pets (admin)
	r.Route("/admin/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/{petID}", petDetailHandler(svc, owners, apptsSvc, recsSvc, log))
	})
}

type createPetRequest struct {
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   *string `json:"breed"`
	UserID  int64   `json:"userId"`
}

type petDetailResponse struct {
	Pet          Pet                        `json:"pet"`
	Owner        *Owner                     `json:"owner"`
	Appointments []appointments.Appointment `json:"appointments"`
	Records      []records.MedicalRecord    `json:"records"`
}

func listByOwnerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("userId")
		if raw == "" {
			httpx.WriteError(w, http.StatusBadRequest, "userId query parameter is required")
			return
		}
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "userId must be an integer")
			return
		}

		items, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			logStoreError(log, r, "list pets failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		if items == nil {
			// sin mascotas devolvemos [], nunca null ni error
			items = []Pet{}
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Species: req.Species,
			UserID:  req.UserID,
			Breed:   req.Breed,
		})
		switch {
		case errors.Is(err, ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, "name, species and userId are required")
			return
		case err != nil:
			// incluye la violación de foreign key por userId inexistente:
			// no se pre-chequea, el store manda y aquí es un 500 genérico
			logStoreError(log, r, "create pet failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, p)
	}
}

func petDetailHandler(svc *Service, owners OwnerDirectory, apptsSvc *appointments.Service, recsSvc *records.Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)

		p, err := svc.GetByID(r.Context(), id)
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "pet not found")
			return
		case err != nil:
			logStoreError(log, r, "get pet failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		owner, err := owners.OwnerByID(r.Context(), p.UserID)
		if err != nil {
			logStoreError(log, r, "get owner failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		appts, err := apptsSvc.ListByPet(r.Context(), p.ID)
		if err != nil {
			logStoreError(log, r, "list appointments failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}
		if appts == nil {
			appts = []appointments.Appointment{}
		}

		recs, err := recsSvc.ListByPet(r.Context(), p.ID)
		if err != nil {
			logStoreError(log, r, "list records failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}
		if recs == nil {
			recs = []records.MedicalRecord{}
		}

		httpx.WriteJSON(w, http.StatusOK, petDetailResponse{
			Pet:          p,
			Owner:        owner,
			Appointments: appts,
			Records:      recs,
		})
	}
}

func logStoreError(log logger.Logger, r *http.Request, msg string, err error) {
	log.Error(msg, map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"error":      err.Error(),
	})
}
