package router

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	pg "pet-agenda/internal/adapters/storage/postgres"
	sqlitestore "pet-agenda/internal/adapters/storage/sqlite"
	"pet-agenda/internal/domain/appointments"
	"pet-agenda/internal/domain/pets"
	"pet-agenda/internal/domain/records"
	"pet-agenda/internal/domain/users"
	"pet-agenda/internal/middleware"
	"pet-agenda/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	// DB es la conexión ya abierta (main la abre y decide si arranca).
	DB *sql.DB

	// Driver elige el set de repos: "sqlite" (default) o "postgres".
	Driver string

	Logger logger.Logger // nil => logger por defecto
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.New(logger.Options{App: "pet-agenda"})
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("¡API de PetAgenda funcionando!"))
	})

	var (
		usersRepo users.Repository
		petsRepo  pets.Repository
		apptsRepo appointments.Repository
		recsRepo  records.Repository
	)

	if opts.Driver == DriverPostgres {
		usersRepo = pg.NewUsersRepo(opts.DB)
		petsRepo = pg.NewPetsRepo(opts.DB)
		apptsRepo = pg.NewAppointmentsRepo(opts.DB)
		recsRepo = pg.NewRecordsRepo(opts.DB)
	} else {
		usersRepo = sqlitestore.NewUsersRepo(opts.DB)
		petsRepo = sqlitestore.NewPetsRepo(opts.DB)
		apptsRepo = sqlitestore.NewAppointmentsRepo(opts.DB)
		recsRepo = sqlitestore.NewRecordsRepo(opts.DB)
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	petsSvc := pets.NewService(petsRepo)
	apptsSvc := appointments.NewService(apptsRepo)
	recsSvc := records.NewService(recsRepo)

	// Rutas por módulo, todas bajo /api
	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc, petsSvc, log)
		pets.RegisterRoutes(api, petsSvc, ownerDirectory{usersSvc}, apptsSvc, recsSvc, log)
		appointments.RegisterRoutes(api, apptsSvc, log)
		records.RegisterRoutes(api, recsSvc, log)
	})

	return r
}

// ownerDirectory adapta users.Service a la interfaz que pets necesita
// para el detalle (evita el ciclo users <-> pets).
type ownerDirectory struct {
	users *users.Service
}

func (d ownerDirectory) OwnerByID(ctx context.Context, id int64) (*pets.Owner, error) {
	u, err := d.users.GetByID(ctx, id)
	if errors.Is(err, users.ErrNotFound) {
		// dueño ausente => owner null en la respuesta, no un error
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pets.Owner{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}
