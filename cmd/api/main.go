package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	pg "pet-agenda/internal/adapters/storage/postgres"
	sqlitestore "pet-agenda/internal/adapters/storage/sqlite"
	"pet-agenda/internal/platform/config"
	"pet-agenda/internal/platform/logger"
	"pet-agenda/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx := context.Background()

	// Sin store no hay server: cualquier fallo de apertura o schema es
	// fatal. La siembra en cambio se loguea y se sigue (el server debe
	// levantar aunque la base quede vacía o a medio sembrar).
	var (
		db     *sql.DB
		driver string
	)
	if cfg.DBDSN != "" {
		driver = router.DriverPostgres
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			log.Fatalf("postgres schema: %v", err)
		}
		if err := pg.Seed(ctx, db); err != nil {
			logg.Warn("seed failed", map[string]any{"error": err.Error()})
		}
	} else {
		driver = router.DriverSQLite
		db, err = sqlitestore.Open(cfg.DBPath)
		if err != nil {
			log.Fatalf("open sqlite: %v", err)
		}
		if err := sqlitestore.Seed(ctx, db); err != nil {
			logg.Warn("seed failed", map[string]any{"error": err.Error()})
		}
	}
	defer db.Close()

	r := router.NewRouter(router.Options{
		DB:     db,
		Driver: driver,
		Logger: logg,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logg.Info("starting server", map[string]any{"addr": cfg.Addr, "driver": driver})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
