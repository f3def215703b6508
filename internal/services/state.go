package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/covid19-portal/internal/logger"
	"github.com/sbilibin2017/covid19-portal/internal/models"
)

//go:generate mockgen -source=state.go -destination=mock_state.go -package=services

var ErrStateNotFound = errors.New("state not found")

// StateReader reads states and their district totals.
type StateReader interface {
	List(ctx context.Context) ([]models.StateDB, error)
	GetByID(ctx context.Context, stateID int64) (*models.StateDB, error)
	GetStats(ctx context.Context, stateID int64) (*models.StateStatsDB, error)
}

// StateService exposes the read-only state operations.
type StateService struct {
	reader StateReader
}

func NewStateService(reader StateReader) *StateService {
	return &StateService{reader: reader}
}

// List returns all states.
func (s *StateService) List(ctx context.Context) ([]models.StateDB, error) {
	states, err := s.reader.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list states", "err", err)
		return nil, err
	}
	return states, nil
}

// Get returns a state or ErrStateNotFound.
func (s *StateService) Get(ctx context.Context, stateID int64) (*models.StateDB, error) {
	state, err := s.reader.GetByID(ctx, stateID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get state", "state_id", stateID, "err", err)
		return nil, err
	}
	if state == nil {
		return nil, ErrStateNotFound
	}
	return state, nil
}

// Stats sums the case counters of the state's districts.
// Unknown states and states without districts both report zeros.
func (s *StateService) Stats(ctx context.Context, stateID int64) (*models.StateStatsDB, error) {
	stats, err := s.reader.GetStats(ctx, stateID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get state stats", "state_id", stateID, "err", err)
		return nil, err
	}
	if stats == nil {
		stats = &models.StateStatsDB{}
	}
	return stats, nil
}
