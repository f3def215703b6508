package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/covid19-portal/internal/models"
)

//go:generate mockgen -source=districts.go -destination=mock_districts.go -package=handlers

// DistrictCreator adds districts.
type DistrictCreator interface {
	Create(ctx context.Context, d models.DistrictDB) (int64, error)
}

// DistrictGetter returns one district.
type DistrictGetter interface {
	Get(ctx context.Context, districtID int64) (*models.DistrictDB, error)
}

// DistrictUpdater replaces a district.
type DistrictUpdater interface {
	Update(ctx context.Context, d models.DistrictDB) error
}

// DistrictDeleter removes a district.
type DistrictDeleter interface {
	Delete(ctx context.Context, districtID int64) error
}

// decodeDistrict reads a complete DistrictRequest from the body.
func decodeDistrict(w http.ResponseWriter, r *http.Request, districtID int64) (models.DistrictDB, bool) {
	var req models.DistrictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, models.ErrorKindBadRequest, "invalid request body")
		return models.DistrictDB{}, false
	}

	d, err := req.ToDistrict(districtID)
	if err != nil {
		writeError(w, http.StatusBadRequest, models.ErrorKindBadRequest, err.Error())
		return models.DistrictDB{}, false
	}
	return d, true
}

// NewCreateDistrictHandler returns an HTTP handler adding a district.
// @Summary Create district
// @Tags districts
// @Accept json
// @Produce json
// @Param request body models.DistrictRequest true "District"
// @Success 200 {object} models.CreateDistrictResponse "District Successfully Added"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /districts/ [post]
// @Security BearerAuth
func NewCreateDistrictHandler(svc DistrictCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := decodeDistrict(w, r, 0)
		if !ok {
			return
		}

		id, err := svc.Create(r.Context(), d)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.CreateDistrictResponse{
			Message:    "District Successfully Added",
			DistrictID: id,
		})
	}
}

// NewGetDistrictHandler returns an HTTP handler for a single district.
// @Summary Get district
// @Tags districts
// @Produce json
// @Param districtId path int true "District ID"
// @Success 200 {object} models.DistrictResponse
// @Failure 400 {object} models.ErrorResponse "Invalid districtId"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "District not found"
// @Router /districts/{districtId} [get]
// @Security BearerAuth
func NewGetDistrictHandler(svc DistrictGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		districtID, ok := idParam(r, "districtId")
		if !ok {
			writeInvalidID(w, "districtId")
			return
		}

		d, err := svc.Get(r.Context(), districtID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewDistrictResponse(*d))
	}
}

// NewUpdateDistrictHandler returns an HTTP handler replacing a district.
// @Summary Update district
// @Description Full replace, every field is required
// @Tags districts
// @Accept json
// @Produce json
// @Param districtId path int true "District ID"
// @Param request body models.DistrictRequest true "District"
// @Success 200 {object} models.MessageResponse "District Details Updated"
// @Failure 400 {object} models.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "District not found"
// @Router /districts/{districtId}/ [put]
// @Security BearerAuth
func NewUpdateDistrictHandler(svc DistrictUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		districtID, ok := idParam(r, "districtId")
		if !ok {
			writeInvalidID(w, "districtId")
			return
		}

		d, ok := decodeDistrict(w, r, districtID)
		if !ok {
			return
		}

		if err := svc.Update(r.Context(), d); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "District Details Updated"})
	}
}

// NewDeleteDistrictHandler returns an HTTP handler removing a district.
// @Summary Delete district
// @Tags districts
// @Produce json
// @Param districtId path int true "District ID"
// @Success 200 {object} models.MessageResponse "District Removed"
// @Failure 400 {object} models.ErrorResponse "Invalid districtId"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "District not found"
// @Router /districts/{districtId} [delete]
// @Security BearerAuth
func NewDeleteDistrictHandler(svc DistrictDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		districtID, ok := idParam(r, "districtId")
		if !ok {
			writeInvalidID(w, "districtId")
			return
		}

		if err := svc.Delete(r.Context(), districtID); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "District Removed"})
	}
}
