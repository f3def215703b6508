package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/covid19-portal/internal/models"
)

//go:generate mockgen -source=states.go -destination=mock_states.go -package=handlers

// StateLister lists all states.
type StateLister interface {
	List(ctx context.Context) ([]models.StateDB, error)
}

// StateGetter returns one state.
type StateGetter interface {
	Get(ctx context.Context, stateID int64) (*models.StateDB, error)
}

// StateStatsGetter returns the case totals of one state.
type StateStatsGetter interface {
	Stats(ctx context.Context, stateID int64) (*models.StateStatsDB, error)
}

// NewListStatesHandler returns an HTTP handler listing all states.
// @Summary List states
// @Tags states
// @Produce json
// @Success 200 {array} models.StateResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /states/ [get]
// @Security BearerAuth
func NewListStatesHandler(svc StateLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		states, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		resp := make([]models.StateResponse, 0, len(states))
		for _, s := range states {
			resp = append(resp, models.NewStateResponse(s))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetStateHandler returns an HTTP handler for a single state.
// @Summary Get state
// @Tags states
// @Produce json
// @Param stateId path int true "State ID"
// @Success 200 {object} models.StateResponse
// @Failure 400 {object} models.ErrorResponse "Invalid stateId"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "State not found"
// @Router /states/{stateId}/ [get]
// @Security BearerAuth
func NewGetStateHandler(svc StateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stateID, ok := idParam(r, "stateId")
		if !ok {
			writeInvalidID(w, "stateId")
			return
		}

		state, err := svc.Get(r.Context(), stateID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewStateResponse(*state))
	}
}

// NewGetStateStatsHandler returns an HTTP handler summing a state's district counters.
// @Summary Get state statistics
// @Description Totals of cases, cured, active and deaths over all districts of the state
// @Tags states
// @Produce json
// @Param stateId path int true "State ID"
// @Success 200 {object} models.StateStatsResponse
// @Failure 400 {object} models.ErrorResponse "Invalid stateId"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /states/{stateId}/stats/ [get]
// @Security BearerAuth
func NewGetStateStatsHandler(svc StateStatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stateID, ok := idParam(r, "stateId")
		if !ok {
			writeInvalidID(w, "stateId")
			return
		}

		stats, err := svc.Stats(r.Context(), stateID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewStateStatsResponse(*stats))
	}
}
