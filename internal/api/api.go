package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gridline/raceboard-backend/internal/model"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	eventsService eventsService
	snapshots     snapshotRepository
}

type eventsService interface {
	GetOpenEvents(ctx context.Context) ([]*model.Event, error)
	CloseExpiredEvents(ctx context.Context, now time.Time) (*model.ReconciliationResult, error)
}

type snapshotRepository interface {
	Get(ctx context.Context) (*model.ReconciliationResult, error)
	Set(ctx context.Context, res *model.ReconciliationResult) error
}

func NewApi(
	logger *zap.SugaredLogger,
	eventsService eventsService,
	snapshots snapshotRepository,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		eventsService: eventsService,
		snapshots:     snapshots,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", a.listOpenEventsHandler)
		r.Post("/close-expired", a.closeExpiredEventsHandler)
		r.Get("/close-expired/latest", a.latestReconciliationHandler)
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
