package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gridline/raceboard-backend/internal/model"
)

func (a *Api) listOpenEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := a.eventsService.GetOpenEvents(r.Context())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get open events: %w", err))
		return
	}

	resp := make([]*eventResp, len(events))
	for i, e := range events {
		resp[i] = mapToEventResp(e)
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) closeExpiredEventsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := a.eventsService.CloseExpiredEvents(r.Context(), time.Now().UTC())
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("close expired events: %w", err))
		return
	}

	if err := a.snapshots.Set(r.Context(), res); err != nil {
		a.logger.Errorw("failed to store reconciliation snapshot", "err", err)
	}

	message := "no expired events"
	if res.UpdatedCount > 0 {
		message = "closed expired events"
	}

	if err := a.writeJSON(w, http.StatusOK, mapToReconciliationResp(message, res), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) latestReconciliationHandler(w http.ResponseWriter, r *http.Request) {
	res, err := a.snapshots.Get(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("get reconciliation snapshot: %w", err))
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToReconciliationResp("latest reconciliation run", res), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
