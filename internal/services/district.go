package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/covid19-portal/internal/logger"
	"github.com/sbilibin2017/covid19-portal/internal/models"
)

//go:generate mockgen -source=district.go -destination=mock_district.go -package=services

var (
	ErrDistrictNotFound = errors.New("district not found")
	ErrInvalidDistrict  = errors.New("invalid district")
)

// DistrictReader reads single districts.
type DistrictReader interface {
	GetByID(ctx context.Context, districtID int64) (*models.DistrictDB, error)
}

// DistrictWriter persists district changes.
// Update and Delete report how many rows they touched.
type DistrictWriter interface {
	Save(ctx context.Context, d models.DistrictDB) (int64, error)
	Update(ctx context.Context, d models.DistrictDB) (int64, error)
	Delete(ctx context.Context, districtID int64) (int64, error)
}

// DistrictService implements district CRUD.
type DistrictService struct {
	reader DistrictReader
	writer DistrictWriter
}

func NewDistrictService(reader DistrictReader, writer DistrictWriter) *DistrictService {
	return &DistrictService{
		reader: reader,
		writer: writer,
	}
}

// Create validates d and stores it, returning the new district id.
func (s *DistrictService) Create(ctx context.Context, d models.DistrictDB) (int64, error) {
	if err := d.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDistrict, err)
	}

	id, err := s.writer.Save(ctx, d)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save district", "district", d, "err", err)
		return 0, err
	}
	return id, nil
}

// Get returns a district or ErrDistrictNotFound.
func (s *DistrictService) Get(ctx context.Context, districtID int64) (*models.DistrictDB, error) {
	d, err := s.reader.GetByID(ctx, districtID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get district", "district_id", districtID, "err", err)
		return nil, err
	}
	if d == nil {
		return nil, ErrDistrictNotFound
	}
	return d, nil
}

// Update replaces every field of an existing district.
func (s *DistrictService) Update(ctx context.Context, d models.DistrictDB) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDistrict, err)
	}

	rows, err := s.writer.Update(ctx, d)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update district", "district", d, "err", err)
		return err
	}
	if rows == 0 {
		return ErrDistrictNotFound
	}
	return nil
}

// Delete removes a district. Deleting a missing district returns ErrDistrictNotFound.
func (s *DistrictService) Delete(ctx context.Context, districtID int64) error {
	rows, err := s.writer.Delete(ctx, districtID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete district", "district_id", districtID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrDistrictNotFound
	}
	return nil
}
