package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/covid19-portal/internal/logger"
	"github.com/sbilibin2017/covid19-portal/internal/models"
)

//go:generate mockgen -source=ping.go -destination=mock_ping.go -package=handlers

// Pinger checks that the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewPingHandler returns an HTTP handler reporting service health.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse "Database unavailable"
// @Router /ping [get]
func NewPingHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.FromContext(r.Context()).Errorw("database ping failed", "err", err)
			writeError(w, http.StatusServiceUnavailable, models.ErrorKindUnavailable, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
	}
}
