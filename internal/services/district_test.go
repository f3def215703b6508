package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/covid19-portal/internal/models"
	"github.com/sbilibin2017/covid19-portal/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDistrictService(t *testing.T) (*services.DistrictService, *services.MockDistrictReader, *services.MockDistrictWriter) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockDistrictReader(ctrl)
	writer := services.NewMockDistrictWriter(ctrl)
	return services.NewDistrictService(reader, writer), reader, writer
}

func adilabad() models.DistrictDB {
	return models.DistrictDB{DistrictName: "Adilabad", StateID: 1, Cases: 100, Cured: 80, Active: 15, Deaths: 5}
}

func TestDistrictService_Create(t *testing.T) {
	t.Run("stores valid district", func(t *testing.T) {
		svc, _, writer := newDistrictService(t)
		writer.EXPECT().Save(gomock.Any(), adilabad()).Return(int64(11), nil)

		id, err := svc.Create(context.Background(), adilabad())
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		svc, _, _ := newDistrictService(t)
		d := adilabad()
		d.Deaths = -1

		_, err := svc.Create(context.Background(), d)
		assert.ErrorIs(t, err, services.ErrInvalidDistrict)
		assert.ErrorContains(t, err, "deaths must not be negative")
	})

	t.Run("store error", func(t *testing.T) {
		svc, _, writer := newDistrictService(t)
		writer.EXPECT().Save(gomock.Any(), adilabad()).Return(int64(0), errors.New("db error"))

		_, err := svc.Create(context.Background(), adilabad())
		assert.EqualError(t, err, "db error")
	})
}

func TestDistrictService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, reader, _ := newDistrictService(t)
		d := adilabad()
		d.DistrictID = 11
		reader.EXPECT().GetByID(gomock.Any(), int64(11)).Return(&d, nil)

		got, err := svc.Get(context.Background(), 11)
		require.NoError(t, err)
		assert.Equal(t, &d, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, reader, _ := newDistrictService(t)
		reader.EXPECT().GetByID(gomock.Any(), int64(11)).Return(nil, nil)

		_, err := svc.Get(context.Background(), 11)
		assert.ErrorIs(t, err, services.ErrDistrictNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		svc, reader, _ := newDistrictService(t)
		reader.EXPECT().GetByID(gomock.Any(), int64(11)).Return(nil, errors.New("db error"))

		_, err := svc.Get(context.Background(), 11)
		assert.EqualError(t, err, "db error")
	})
}

func TestDistrictService_Update(t *testing.T) {
	d := adilabad()
	d.DistrictID = 11

	tests := []struct {
		name    string
		rows    int64
		err     error
		wantErr error
	}{
		{name: "updated", rows: 1},
		{name: "missing", rows: 0, wantErr: services.ErrDistrictNotFound},
		{name: "store error", err: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, writer := newDistrictService(t)
			writer.EXPECT().Update(gomock.Any(), d).Return(tt.rows, tt.err)

			err := svc.Update(context.Background(), d)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr.Error())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		svc, _, _ := newDistrictService(t)
		bad := d
		bad.DistrictName = ""

		err := svc.Update(context.Background(), bad)
		assert.ErrorIs(t, err, services.ErrInvalidDistrict)
	})
}

func TestDistrictService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		rows    int64
		err     error
		wantErr error
	}{
		{name: "deleted", rows: 1},
		{name: "nothing to delete", rows: 0, wantErr: services.ErrDistrictNotFound},
		{name: "store error", err: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, writer := newDistrictService(t)
			writer.EXPECT().Delete(gomock.Any(), int64(11)).Return(tt.rows, tt.err)

			err := svc.Delete(context.Background(), 11)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr.Error())
		})
	}
}
