package models

import (
	"errors"
	"fmt"
	"strings"
)

// DistrictDB represents a district row.
// StateID is not checked against the state table.
type DistrictDB struct {
	DistrictID   int64  `db:"district_id"`
	DistrictName string `db:"district_name"`
	StateID      int64  `db:"state_id"`
	Cases        int64  `db:"cases"`
	Cured        int64  `db:"cured"`
	Active       int64  `db:"active"`
	Deaths       int64  `db:"deaths"`
}

// Validate checks the fields a client supplies on create and update.
func (d DistrictDB) Validate() error {
	var errs []error
	if strings.TrimSpace(d.DistrictName) == "" {
		errs = append(errs, errors.New("districtName must not be empty"))
	}
	if d.StateID <= 0 {
		errs = append(errs, errors.New("stateId must be positive"))
	}
	counts := []struct {
		name  string
		value int64
	}{
		{"cases", d.Cases},
		{"cured", d.Cured},
		{"active", d.Active},
		{"deaths", d.Deaths},
	}
	for _, c := range counts {
		if c.value < 0 {
			errs = append(errs, errors.New(c.name+" must not be negative"))
		}
	}
	return errors.Join(errs...)
}

// DistrictRequest is the body of district create and update requests.
// Pointer fields let a missing field be told apart from a zero value.
// swagger:model DistrictRequest
type DistrictRequest struct {
	// required: true
	// example: Adilabad
	DistrictName *string `json:"districtName"`
	// required: true
	// example: 1
	StateID *int64 `json:"stateId"`
	// required: true
	// example: 100
	Cases *int64 `json:"cases"`
	// required: true
	// example: 80
	Cured *int64 `json:"cured"`
	// required: true
	// example: 15
	Active *int64 `json:"active"`
	// required: true
	// example: 5
	Deaths *int64 `json:"deaths"`
}

// ToDistrict builds a district row with the given id.
// It fails when any field is missing from the request.
func (req DistrictRequest) ToDistrict(districtID int64) (DistrictDB, error) {
	var missing []string
	str := func(name string, v *string) string {
		if v == nil {
			missing = append(missing, name)
			return ""
		}
		return *v
	}
	num := func(name string, v *int64) int64 {
		if v == nil {
			missing = append(missing, name)
			return 0
		}
		return *v
	}

	d := DistrictDB{
		DistrictID:   districtID,
		DistrictName: str("districtName", req.DistrictName),
		StateID:      num("stateId", req.StateID),
		Cases:        num("cases", req.Cases),
		Cured:        num("cured", req.Cured),
		Active:       num("active", req.Active),
		Deaths:       num("deaths", req.Deaths),
	}
	if len(missing) > 0 {
		return DistrictDB{}, fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}
	return d, nil
}

// DistrictResponse is the JSON shape of a district.
// swagger:model DistrictResponse
type DistrictResponse struct {
	DistrictID   int64  `json:"districtId"`
	DistrictName string `json:"districtName"`
	StateID      int64  `json:"stateId"`
	Cases        int64  `json:"cases"`
	Cured        int64  `json:"cured"`
	Active       int64  `json:"active"`
	Deaths       int64  `json:"deaths"`
}

// CreateDistrictResponse is returned after a district is added.
// swagger:model CreateDistrictResponse
type CreateDistrictResponse struct {
	// example: District Successfully Added
	Message    string `json:"message"`
	DistrictID int64  `json:"districtId"`
}

// NewDistrictResponse converts a district row to its JSON shape.
func NewDistrictResponse(d DistrictDB) DistrictResponse {
	return DistrictResponse{
		DistrictID:   d.DistrictID,
		DistrictName: d.DistrictName,
		StateID:      d.StateID,
		Cases:        d.Cases,
		Cured:        d.Cured,
		Active:       d.Active,
		Deaths:       d.Deaths,
	}
}
