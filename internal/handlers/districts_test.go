package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/covid19-portal/internal/models"
	"github.com/sbilibin2017/covid19-portal/internal/services"
	"github.com/stretchr/testify/assert"
)

const adilabadJSON = `{"districtName":"Adilabad","stateId":1,"cases":100,"cured":80,"active":15,"deaths":5}`

func adilabad(id int64) models.DistrictDB {
	return models.DistrictDB{DistrictID: id, DistrictName: "Adilabad", StateID: 1, Cases: 100, Cured: 80, Active: 15, Deaths: 5}
}

func TestCreateDistrictHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setup        func(m *MockDistrictCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: adilabadJSON,
			setup: func(m *MockDistrictCreator) {
				m.EXPECT().Create(gomock.Any(), adilabad(0)).Return(int64(42), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"District Successfully Added","districtId":42}`,
		},
		{
			name:         "invalid json",
			body:         `{"districtName":`,
			setup:        func(m *MockDistrictCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"bad_request","message":"invalid request body"}`,
		},
		{
			name:         "fractional count",
			body:         `{"districtName":"Adilabad","stateId":1,"cases":1.5,"cured":0,"active":0,"deaths":0}`,
			setup:        func(m *MockDistrictCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"bad_request","message":"invalid request body"}`,
		},
		{
			name:         "missing fields",
			body:         `{"districtName":"Adilabad","stateId":1}`,
			setup:        func(m *MockDistrictCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"bad_request","message":"missing fields: cases, cured, active, deaths"}`,
		},
		{
			name: "validation error",
			body: `{"districtName":"Adilabad","stateId":1,"cases":-1,"cured":0,"active":0,"deaths":0}`,
			setup: func(m *MockDistrictCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), fmt.Errorf("%w: %w", services.ErrInvalidDistrict, errors.New("cases must not be negative")))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"bad_request","message":"invalid district: cases must not be negative"}`,
		},
		{
			name: "store error",
			body: adilabadJSON,
			setup: func(m *MockDistrictCreator) {
				m.EXPECT().Create(gomock.Any(), adilabad(0)).Return(int64(0), errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal","message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockDistrictCreator(ctrl)
			tt.setup(svc)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodPost, "/districts/", bytes.NewBufferString(tt.body), nil)
			NewCreateDistrictHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestGetDistrictHandler(t *testing.T) {
	tests := []struct {
		name         string
		districtID   string
		setup        func(m *MockDistrictGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name:       "found",
			districtID: "42",
			setup: func(m *MockDistrictGetter) {
				d := adilabad(42)
				m.EXPECT().Get(gomock.Any(), int64(42)).Return(&d, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"districtId":42,"districtName":"Adilabad","stateId":1,"cases":100,"cured":80,"active":15,"deaths":5}`,
		},
		{
			name:       "not found",
			districtID: "42",
			setup: func(m *MockDistrictGetter) {
				m.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, services.ErrDistrictNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"not_found","message":"District not found"}`,
		},
		{
			name:         "bad id",
			districtID:   "-4",
			setup:        func(m *MockDistrictGetter) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"bad_request","message":"invalid districtId"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockDistrictGetter(ctrl)
			tt.setup(svc)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodGet, "/districts/x", nil, map[string]string{"districtId": tt.districtID})
			NewGetDistrictHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestUpdateDistrictHandler(t *testing.T) {
	tests := []struct {
		name         string
		districtID   string
		body         string
		setup        func(m *MockDistrictUpdater)
		expectedCode int
		expectedBody string
	}{
		{
			name:       "updated",
			districtID: "42",
			body:       adilabadJSON,
			setup: func(m *MockDistrictUpdater) {
				m.EXPECT().Update(gomock.Any(), adilabad(42)).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"District Details Updated"}`,
		},
		{
			name:       "not found",
			districtID: "42",
			body:       adilabadJSON,
			setup: func(m *MockDistrictUpdater) {
				m.EXPECT().Update(gomock.Any(), adilabad(42)).Return(services.ErrDistrictNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"not_found","message":"District not found"}`,
		},
		{
			name:         "partial body",
			districtID:   "42",
			body:         `{"cases":5}`,
			setup:        func(m *MockDistrictUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"bad_request","message":"missing fields: districtName, stateId, cured, active, deaths"}`,
		},
		{
			name:         "bad id",
			districtID:   "x",
			body:         adilabadJSON,
			setup:        func(m *MockDistrictUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"bad_request","message":"invalid districtId"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockDistrictUpdater(ctrl)
			tt.setup(svc)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodPut, "/districts/x/", bytes.NewBufferString(tt.body), map[string]string{"districtId": tt.districtID})
			NewUpdateDistrictHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestDeleteDistrictHandler(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(m *MockDistrictDeleter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "removed",
			setup: func(m *MockDistrictDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"District Removed"}`,
		},
		{
			name: "nothing to delete",
			setup: func(m *MockDistrictDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(42)).Return(services.ErrDistrictNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"not_found","message":"District not found"}`,
		},
		{
			name: "store error",
			setup: func(m *MockDistrictDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(42)).Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal","message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockDistrictDeleter(ctrl)
			tt.setup(svc)

			rr := httptest.NewRecorder()
			req := newRequest(http.MethodDelete, "/districts/42", nil, map[string]string{"districtId": "42"})
			NewDeleteDistrictHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
