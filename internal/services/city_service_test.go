package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapi/internal/repositories"
)

type fakeCache struct {
	data map[string]string
	sets int
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := f.data[key]; ok {
		return v, nil
	}
	return "", redis.Nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.data[key] = value
	f.sets++
	return nil
}

func (f *fakeCache) Del(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func TestCitySearchShortQueryReturnsEmpty(t *testing.T) {
	svc := CityService{}
	got, err := svc.Search(context.Background(), "i")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCitySearchHitsDBThenCache(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name FROM cities").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("Istanbul").AddRow("Izmir"))

	fc := &fakeCache{data: map[string]string{}}
	svc := CityService{
		CityRepo: repositories.CityRepository{DB: db},
		Cache:    fc,
	}

	got, err := svc.Search(context.Background(), "is")
	require.NoError(t, err)
	assert.Equal(t, []string{"Istanbul", "Izmir"}, got)
	assert.Equal(t, 1, fc.sets)

	// second lookup is served from cache: no further DB expectation set
	got, err = svc.Search(context.Background(), "is")
	require.NoError(t, err)
	assert.Equal(t, []string{"Istanbul", "Izmir"}, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (string, error) { return "", errors.New("conn refused") }
func (brokenCache) Set(context.Context, string, string, time.Duration) error {
	return errors.New("conn refused")
}
func (brokenCache) Del(context.Context, string) error { return errors.New("conn refused") }

func TestCitySearchSurvivesBrokenCache(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name FROM cities").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Antalya"))

	svc := CityService{
		CityRepo: repositories.CityRepository{DB: db},
		Cache:    brokenCache{},
	}
	got, err := svc.Search(context.Background(), "an")
	require.NoError(t, err)
	assert.Equal(t, []string{"Antalya"}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
