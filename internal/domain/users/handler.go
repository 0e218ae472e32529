package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"pet-agenda/internal/domain/pets"
	"pet-agenda/internal/middleware"
	"pet-agenda/internal/platform/httpx"
	"pet-agenda/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// placeholderToken es el marcador fijo que devuelve el login. No hay
// sesiones ni JWT reales detrás.
const placeholderToken = "jwt-fake-token-12345"

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, log logger.Logger) {
	r.Post("/login", loginHandler(svc, log))

	// Clients (admin)
	r.Route("/admin/clients", func(cr chi.Router) {
		cr.Get("/", listClientsHandler(svc, petsSvc, log))
		cr.Post("/", createClientHandler(svc, log))
		cr.Put("/{clientID}", updateClientHandler(svc, log))
		cr.Delete("/{clientID}", deleteClientHandler(svc, log))
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// clientResponse es un User con sus mascotas colgando (el password no
// viaja: el modelo lo excluye del JSON).
type clientResponse struct {
	User
	Pets []pets.Pet `json:"pets"`
}

type createClientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.Password)
		switch {
		case errors.Is(err, ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, "email and password are required")
			return
		case errors.Is(err, ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		case err != nil:
			logStoreError(log, r, "login failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, loginResponse{
			Message: "login successful",
			Token:   placeholderToken,
			User:    u,
		})
	}
}

func listClientsHandler(svc *Service, petsSvc *pets.Service, log logger.Logger) http.HandlerFunc {
	// El join usuarios<->mascotas se hace en memoria, fiel al backend
	// original (dos queries planas, sin JOIN en SQL).
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := svc.ListClients(r.Context())
		if err != nil {
			logStoreError(log, r, "list clients failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		allPets, err := petsSvc.ListAll(r.Context())
		if err != nil {
			logStoreError(log, r, "list pets failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		byOwner := make(map[int64][]pets.Pet, len(clients))
		for _, p := range allPets {
			byOwner[p.UserID] = append(byOwner[p.UserID], p)
		}

		out := make([]clientResponse, 0, len(clients))
		for _, c := range clients {
			ps := byOwner[c.ID]
			if ps == nil {
				ps = []pets.Pet{}
			}
			out = append(out, clientResponse{User: c, Pets: ps})
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func createClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.CreateClient(r.Context(), CreateClientInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		switch {
		case errors.Is(err, ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, "name, email and password are required")
			return
		case errors.Is(err, ErrEmailTaken):
			httpx.WriteError(w, http.StatusConflict, "email already registered")
			return
		case err != nil:
			logStoreError(log, r, "create client failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, clientResponse{User: u, Pets: []pets.Pet{}})
	}
}

func updateClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := parseID(chi.URLParam(r, "clientID"))

		var req updateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.UpdateClient(r.Context(), id, UpdateClientInput{
			Name:  req.Name,
			Email: req.Email,
		})
		switch {
		case errors.Is(err, ErrInvalidInput):
			httpx.WriteError(w, http.StatusBadRequest, "name and email are required")
			return
		case errors.Is(err, ErrEmailTaken):
			httpx.WriteError(w, http.StatusConflict, "email already in use by another client")
			return
		case errors.Is(err, ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "client not found")
			return
		case err != nil:
			logStoreError(log, r, "update client failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, u)
	}
}

func deleteClientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := parseID(chi.URLParam(r, "clientID"))

		err := svc.DeleteClient(r.Context(), id)
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "client not found")
			return
		case err != nil:
			logStoreError(log, r, "delete client failed", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "client deleted"})
	}
}

// parseID convierte el path param; un id no numérico se trata como
// inexistente (el lookup posterior da 404), igual que hacía el original
// al comparar strings en SQL.
func parseID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func logStoreError(log logger.Logger, r *http.Request, msg string, err error) {
	log.Error(msg, map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"error":      err.Error(),
	})
}
