package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/covid19-portal/internal/models"
)

type DistrictReadRepository struct {
	db *sqlx.DB
}

func NewDistrictReadRepository(db *sqlx.DB) *DistrictReadRepository {
	return &DistrictReadRepository{db: db}
}

// GetByID returns the district with the given id, or nil when there is none.
func (r *DistrictReadRepository) GetByID(ctx context.Context, districtID int64) (*models.DistrictDB, error) {
	const query = `
		SELECT district_id, district_name, state_id, cases, cured, active, deaths
		FROM district
		WHERE district_id = $1
	`

	var district models.DistrictDB
	err := r.db.GetContext(ctx, &district, query, districtID)

	logQuery(ctx, query, []any{districtID}, district, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &district, nil
}

// DistrictWriteRepository handles district inserts, updates and deletes.
type DistrictWriteRepository struct {
	db *sqlx.DB
}

func NewDistrictWriteRepository(db *sqlx.DB) *DistrictWriteRepository {
	return &DistrictWriteRepository{db: db}
}

// Save inserts d and returns the id assigned by the database. d.DistrictID is ignored.
func (r *DistrictWriteRepository) Save(ctx context.Context, d models.DistrictDB) (int64, error) {
	const query = `
		INSERT INTO district (district_name, state_id, cases, cured, active, deaths)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING district_id
	`
	args := []any{d.DistrictName, d.StateID, d.Cases, d.Cured, d.Active, d.Deaths}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logQuery(ctx, query, args, id, err)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces every column of the district d.DistrictID.
// It returns the number of rows changed, 0 when the district does not exist.
func (r *DistrictWriteRepository) Update(ctx context.Context, d models.DistrictDB) (int64, error) {
	const query = `
		UPDATE district SET
			district_name = $1,
			state_id = $2,
			cases = $3,
			cured = $4,
			active = $5,
			deaths = $6
		WHERE district_id = $7
	`
	args := []any{d.DistrictName, d.StateID, d.Cases, d.Cured, d.Active, d.Deaths, d.DistrictID}

	return r.exec(ctx, query, args)
}

// Delete removes the district and returns the number of rows removed.
func (r *DistrictWriteRepository) Delete(ctx context.Context, districtID int64) (int64, error) {
	const query = `
		DELETE FROM district
		WHERE district_id = $1
	`

	return r.exec(ctx, query, []any{districtID})
}

func (r *DistrictWriteRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}
