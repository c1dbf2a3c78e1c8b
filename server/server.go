package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/kasuboski/moviedb/pkg/export"
	"github.com/kasuboski/moviedb/pkg/logger"
	"github.com/kasuboski/moviedb/pkg/movie"
	"github.com/kasuboski/moviedb/pkg/pagination"
	"github.com/kasuboski/moviedb/pkg/storage"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Renderer turns the catalog into the website page
type Renderer interface {
	Render(movies []movie.Movie) ([]byte, error)
}

// Server is a view of the catalog. Handlers only call List, so the one write it can
// cause is the seed List stores when the catalog is missing or corrupt.
type Server struct {
	baseLogger *zap.SugaredLogger
	storage    storage.Storage
	site       Renderer
}

// New creates a new preview server
func New(logger *zap.SugaredLogger, store storage.Storage, site Renderer) Server {
	return Server{
		baseLogger: logger,
		storage:    store,
		site:       site,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	_, err = w.Write(b)
	return err
}

// Router wires every route behind the logging and CORS middleware
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)
	rtr.HandleFunc("/", s.Site()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/movies", s.ListMovies()).Methods(http.MethodGet)
	v1.HandleFunc("/movies/random", s.RandomMovie()).Methods(http.MethodGet)
	v1.HandleFunc("/stats", s.Stats()).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet}),
	)(rtr)
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// Site renders the generated website without writing it to disk
func (s Server) Site() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		movies, err := s.storage.List(r.Context())
		if err != nil {
			log.Errorw("failed to list movies", "error", err)
			http.Error(w, "failed to list movies", http.StatusInternalServerError)
			return
		}

		page, err := s.site.Render(movies)
		if err != nil {
			log.Errorw("failed to render site", "error", err)
			status := http.StatusInternalServerError
			if errors.Is(err, export.ErrTemplateNotFound) {
				status = http.StatusNotFound
			}
			http.Error(w, err.Error(), status)
			return
		}

		w.Header().Set("content-type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

// ListMovies searches, filters, sorts and pages the catalog
func (s Server) ListMovies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		q, err := ParseMovieQuery(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		movies, err := s.storage.List(r.Context())
		if err != nil {
			log.Errorw("failed to list movies", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to list movies"))
			return
		}

		result := pagination.Paginate(q.Apply(movies), params)
		if err := writeResponse(w, http.StatusOK, GenericResponse{Response: result}); err != nil {
			log.Errorw("failed to write response", "error", err)
		}
	}
}

// RandomMovie picks one movie from the catalog
func (s Server) RandomMovie() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		movies, err := s.storage.List(r.Context())
		if err != nil {
			log.Errorw("failed to list movies", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to list movies"))
			return
		}

		m, err := movie.Random(movies, nil)
		if err != nil {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: m})
	}
}

// Stats summarizes the catalog ratings
func (s Server) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		movies, err := s.storage.List(r.Context())
		if err != nil {
			log.Errorw("failed to list movies", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to list movies"))
			return
		}

		stats, err := movie.CalculateStats(movies)
		if err != nil {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: stats})
	}
}
