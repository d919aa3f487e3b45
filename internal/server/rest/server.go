// Package rest exposes the note service over HTTP/JSON.
//
// Routes:
//
//	GET    /notes       list notes in insertion order
//	POST   /notes       create a note, 201 with the stored note
//	PUT    /notes/{id}  update a note, 200 with the stored note
//	DELETE /notes/{id}  delete a note, 204
//	GET    /ping        {"status":"OK"}
//
// Failures carry {"error": "<message>"}: 400 for malformed bodies and
// validation errors, 404 for unknown ids, 500 otherwise.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/models"
	"github.com/gorilla/mux"
)

// NoteService is the business layer the handlers delegate to.
type NoteService interface {
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, id string, note models.Note) (models.Note, error)
	Delete(ctx context.Context, id string) error
}

type Server struct {
	address         string
	notes           NoteService
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewServer(address string, l logging.Logger, notes NoteService, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         address,
		notes:           notes,
		logger:          l.With("module", "rest_server"),
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler builds the router with request logging applied to every route.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.Methods(http.MethodGet).Path("/ping").HandlerFunc(s.ping)
	r.Methods(http.MethodGet).Path("/notes").HandlerFunc(s.listNotes)
	r.Methods(http.MethodPost).Path("/notes").HandlerFunc(s.createNote)
	r.Methods(http.MethodPut).Path("/notes/{id}").HandlerFunc(s.updateNote)
	r.Methods(http.MethodDelete).Path("/notes/{id}").HandlerFunc(s.deleteNote)

	r.NotFoundHandler = s.logRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	}))
	r.MethodNotAllowedHandler = s.logRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}))

	return r
}

// Run listens on the configured address and serves until ctx is done, then
// shuts down gracefully within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-shutdownErr
}
