package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/covid19-portal/internal/models"
	"github.com/sbilibin2017/covid19-portal/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: models.LoginRequest{
				Username: "admin",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "admin", "password123").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.LoginResponse{JWTToken: "JWT_TOKEN"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &models.ErrorResponse{Error: models.ErrorKindBadRequest, Message: "invalid request body"},
		},
		{
			name:         "missing password",
			inputBody:    models.LoginRequest{Username: "admin"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &models.ErrorResponse{Error: models.ErrorKindBadRequest, Message: "username and password are required"},
		},
		{
			name: "unknown user",
			inputBody: models.LoginRequest{
				Username: "ghost",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "ghost", "password123").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &models.ErrorResponse{Error: models.ErrorKindBadRequest, Message: "Invalid user"},
		},
		{
			name: "wrong password",
			inputBody: models.LoginRequest{
				Username: "admin",
				Password: "wrong",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "admin", "wrong").
					Return("", services.ErrInvalidPassword)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &models.ErrorResponse{Error: models.ErrorKindBadRequest, Message: "Invalid password"},
		},
		{
			name: "internal error",
			inputBody: models.LoginRequest{
				Username: "admin",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "admin", "password123").
					Return("", errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &models.ErrorResponse{Error: models.ErrorKindInternal, Message: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/login/", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewLoginHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &models.LoginResponse{}
			default:
				respBody = &models.ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
