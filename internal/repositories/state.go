package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/covid19-portal/internal/models"
)

// StateReadRepository reads states and the district totals per state.
type StateReadRepository struct {
	db *sqlx.DB
}

func NewStateReadRepository(db *sqlx.DB) *StateReadRepository {
	return &StateReadRepository{db: db}
}

// List returns every state ordered by id.
func (r *StateReadRepository) List(ctx context.Context) ([]models.StateDB, error) {
	const query = `
		SELECT state_id, state_name, population
		FROM state
		ORDER BY state_id
	`

	states := []models.StateDB{}
	err := r.db.SelectContext(ctx, &states, query)

	logQuery(ctx, query, nil, len(states), err)

	if err != nil {
		return nil, err
	}
	return states, nil
}

// GetByID returns the state with the given id, or nil when there is none.
func (r *StateReadRepository) GetByID(ctx context.Context, stateID int64) (*models.StateDB, error) {
	const query = `
		SELECT state_id, state_name, population
		FROM state
		WHERE state_id = $1
	`

	var state models.StateDB
	err := r.db.GetContext(ctx, &state, query, stateID)

	logQuery(ctx, query, []any{stateID}, state, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// GetStats sums the counters of every district in the state.
// A state without districts yields zero totals.
func (r *StateReadRepository) GetStats(ctx context.Context, stateID int64) (*models.StateStatsDB, error) {
	const query = `
		SELECT
			COALESCE(SUM(cases), 0)  AS total_cases,
			COALESCE(SUM(cured), 0)  AS total_cured,
			COALESCE(SUM(active), 0) AS total_active,
			COALESCE(SUM(deaths), 0) AS total_deaths
		FROM district
		WHERE state_id = $1
	`

	var stats models.StateStatsDB
	err := r.db.GetContext(ctx, &stats, query, stateID)

	logQuery(ctx, query, []any{stateID}, stats, err)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}
