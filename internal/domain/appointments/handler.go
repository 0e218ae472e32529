package appointments

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-agenda/internal/middleware"
	"pet-agenda/internal/platform/httpx"
	"pet-agenda/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/admin/appointments", createHandler(svc, log))
}

type createRequest struct {
	PetID  int64  `json:"petId"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func createHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PetID:  req.PetID,
			Date:   req.Date,
			Reason: req.Reason,
		})
		switch {
		case errors.Is(err, ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, "petId, date and reason are required")
			return
		case err != nil:
			log.Error("create appointment failed", map[string]any{
				"request_id": middleware.GetRequestID(r.Context()),
				"error":      err.Error(),
			})
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, a)
	}
}
