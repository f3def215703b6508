package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/covid19-portal/internal/migrations"
	"github.com/sbilibin2017/covid19-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Run(ctx, db.DB))
	return db
}

func TestRepositories_Postgres(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	users := NewUserReadRepository(db)
	states := NewStateReadRepository(db)
	districtReader := NewDistrictReadRepository(db)
	districtWriter := NewDistrictWriteRepository(db)

	t.Run("SeededAdmin", func(t *testing.T) {
		user, err := users.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

		ghost, err := users.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, ghost)
	})

	t.Run("States", func(t *testing.T) {
		list, err := states.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, list)
		assert.Equal(t, int64(1), list[0].StateID)

		first, err := states.GetByID(ctx, 1)
		require.NoError(t, err)
		second, err := states.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		missing, err := states.GetByID(ctx, 100000)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("EmptyStats", func(t *testing.T) {
		stats, err := states.GetStats(ctx, 100000)
		require.NoError(t, err)
		assert.Equal(t, &models.StateStatsDB{}, stats)
	})

	t.Run("DistrictLifecycle", func(t *testing.T) {
		d := models.DistrictDB{DistrictName: "Adilabad", StateID: 1, Cases: 100, Cured: 80, Active: 15, Deaths: 5}

		id, err := districtWriter.Save(ctx, d)
		require.NoError(t, err)
		assert.Positive(t, id)

		got, err := districtReader.GetByID(ctx, id)
		require.NoError(t, err)
		d.DistrictID = id
		assert.Equal(t, &d, got)

		stats, err := states.GetStats(ctx, 1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, stats.TotalCases, int64(100))

		d.Cases, d.Active = 120, 35
		rows, err := districtWriter.Update(ctx, d)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		got, err = districtReader.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, &d, got)

		rows, err = districtWriter.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		rows, err = districtWriter.Delete(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, rows)

		got, err = districtReader.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Nil(t, got)

		d.DistrictID = id
		rows, err = districtWriter.Update(ctx, d)
		require.NoError(t, err)
		assert.Zero(t, rows)
	})
}
