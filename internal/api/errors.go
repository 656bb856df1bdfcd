package api

import (
	"fmt"
	"net/http"
)

func (a *Api) logError(_ *http.Request, err error) {
	a.logger.Errorw("server error", "error", err)
}

func (a *Api) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	data := map[string]interface{}{"error": message}

	if err := a.writeJSON(w, status, data, nil); err != nil {
		a.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (a *Api) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	a.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	a.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (a *Api) clientErrorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	a.logger.Debugw("client error", "err", message)
	a.errorResponse(w, r, status, message)
}

func (a *Api) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	a.clientErrorResponse(w, r, http.StatusNotFound, message)
}

func (a *Api) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	a.clientErrorResponse(w, r, http.StatusMethodNotAllowed, message)
}
