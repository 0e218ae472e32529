package records

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
	r.Post("/admin/records", createHandler(svc, log))
}

type createRequest struct {
	PetID int64  `json:"petId"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Date  string `json:"date"`
}

func createHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			PetID: req.PetID,
			Type:  req.Type,
			Name:  req.Name,
			Date:  req.Date,
		})
		switch {
		case errors.Is(err, ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, "petId, type, name and date are required")
			return
		case err != nil:
			log.Error("create medical record failed", map[string]any{
				"request_id": middleware.GetRequestID(r.Context()),
				"error":      err.Error(),
			})
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, rec)
	}
}
