package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/covid19-portal/internal/logger"
	"github.com/sbilibin2017/covid19-portal/internal/models"
	"github.com/sbilibin2017/covid19-portal/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Invalid user, invalid password or invalid body"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /login/ [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, models.ErrorKindBadRequest, "invalid request body")
			return
		}
		if req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, models.ErrorKindBadRequest, "username and password are required")
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusBadRequest, models.ErrorKindBadRequest, "Invalid user")
			case errors.Is(err, services.ErrInvalidPassword):
				writeError(w, http.StatusBadRequest, models.ErrorKindBadRequest, "Invalid password")
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, models.ErrorKindInternal, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{JWTToken: token})
	}
}
