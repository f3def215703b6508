package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/covid19-portal/internal/logger"
	"github.com/sbilibin2017/covid19-portal/internal/models"
	"github.com/sbilibin2017/covid19-portal/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: kind, Message: message})
}

// writeServiceError maps an error returned by a service to a response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrStateNotFound):
		writeError(w, http.StatusNotFound, models.ErrorKindNotFound, "State not found")
	case errors.Is(err, services.ErrDistrictNotFound):
		writeError(w, http.StatusNotFound, models.ErrorKindNotFound, "District not found")
	case errors.Is(err, services.ErrInvalidDistrict):
		writeError(w, http.StatusBadRequest, models.ErrorKindBadRequest, err.Error())
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "method", r.Method, "uri", r.RequestURI, "err", err)
		writeError(w, http.StatusInternalServerError, models.ErrorKindInternal, "Internal server error")
	}
}

// idParam reads a positive integer path parameter.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeInvalidID(w http.ResponseWriter, name string) {
	writeError(w, http.StatusBadRequest, models.ErrorKindBadRequest, "invalid "+name)
}
