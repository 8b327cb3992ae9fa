package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/peoplebook/apiserver/config"
	"github.com/peoplebook/apiserver/internal/db"
	"github.com/peoplebook/apiserver/internal/handlers"
	"github.com/peoplebook/apiserver/internal/middleware"
	"github.com/peoplebook/apiserver/internal/services"
	"github.com/peoplebook/apiserver/internal/storage"
	"github.com/peoplebook/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	recordsDB  *sql.DB
	usersDB    *sql.DB
}

// New constructs a Server: both database pools, the upload store, the
// repositories and services, and the router. All dependencies are built
// here once and injected; nothing is global.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	recordsDB, err := db.Open(ctx, cfg.RecordsDB)
	if err != nil {
		return nil, fmt.Errorf("open records database: %w", err)
	}

	usersDB, err := db.Open(ctx, cfg.UsersDB)
	if err != nil {
		_ = recordsDB.Close()
		return nil, fmt.Errorf("open users database: %w", err)
	}

	uploads, err := newUploadStore(ctx, cfg)
	if err != nil {
		_ = recordsDB.Close()
		_ = usersDB.Close()
		return nil, fmt.Errorf("init upload store: %w", err)
	}
	if err := uploads.EnsureBucket(ctx); err != nil {
		_ = recordsDB.Close()
		_ = usersDB.Close()
		return nil, fmt.Errorf("ensure upload store: %w", err)
	}

	personRepo := store.NewPersonRepository(recordsDB)
	noteRepo := store.NewNoteRepository(recordsDB)
	userRepo := store.NewUserRepository(usersDB)

	personService := services.NewPersonService(personRepo, noteRepo, uploads, cfg.Upload)
	noteService := services.NewNoteService(noteRepo, personRepo)
	userService := services.NewUserService(userRepo)

	router := chi.NewRouter()
	router.Use(
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.RequestLogger,
		chimiddleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api", func(r chi.Router) {
		r.Route("/people", func(r chi.Router) {
			handlers.PeopleRouter(r, personService, noteService, cfg.Upload)
		})
		r.Route("/notes", func(r chi.Router) {
			handlers.NotesRouter(r, noteService)
		})
		handlers.AuthRouter(r, userService)
	})
	router.Route("/uploads", func(r chi.Router) {
		handlers.UploadsRouter(r, personService)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		recordsDB:  recordsDB,
		usersDB:    usersDB,
	}, nil
}

func newUploadStore(ctx context.Context, cfg config.Config) (*storage.Storage, error) {
	switch cfg.Upload.Backend {
	case config.BackendFilesystem, "":
		backend, err := storage.NewFilesystemStore(cfg.Upload.Root)
		if err != nil {
			return nil, err
		}
		return storage.NewStorage(backend), nil
	case config.BackendMinio:
		backend, err := storage.NewMinioStore(cfg.Minio)
		if err != nil {
			return nil, err
		}
		return storage.NewStorage(backend), nil
	case config.BackendGCS:
		backend, err := storage.NewGCSStore(ctx, cfg.GCS)
		if err != nil {
			return nil, err
		}
		return storage.NewStorage(backend), nil
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Upload.Backend)
	}
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.recordsDB != nil {
		_ = s.recordsDB.Close()
	}
	if s.usersDB != nil {
		_ = s.usersDB.Close()
	}
	return s.httpServer.Close()
}
