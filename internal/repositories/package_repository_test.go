package repositories

import (
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapi/internal/domain/models"
)

func packageRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "slug", "title", "destination", "package_type",
		"duration_days", "summary", "pricing",
	})
}

func TestPackageScanTreatsNullPricingAsAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM packages WHERE slug").
		WithArgs("istanbul-4d").
		WillReturnRows(packageRows().
			AddRow(1, "istanbul-4d", "Istanbul 4 Days", "istanbul", "WITH_HOTEL", 4, "", nil))

	pkg, err := PackageRepository{DB: db}.GetBySlug("istanbul-4d")
	require.NoError(t, err)
	assert.Nil(t, pkg.Pricing)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageScanKeepsPricingBlob(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM packages WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(packageRows().
			AddRow(2, "cappadocia-3d", "Cappadocia 3 Days", "cappadocia", "LAND_ONLY", 3, "", `{"sicPrice":120}`))

	pkg, err := PackageRepository{DB: db}.GetByID(2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sicPrice":120}`, string(pkg.Pricing))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePricingStoresNullForEmptyBlob(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE packages SET pricing").
		WithArgs(nil, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = PackageRepository{DB: db}.UpdatePricing(3, json.RawMessage(""))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestItineraryInsertMarshalsCityNights(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO itinerary_requests").
		WithArgs("abc-123", `[{"city":"Istanbul","nights":3}]`, "2027-04-01", 3,
			2, 0, "four", "private", "Jane Doe", "jane@example.com", "+331234567").
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := ItineraryRepository{DB: db}.Insert(models.ItineraryRequest{
		UUID:          "abc-123",
		CityNights:    []models.CityNights{{City: "Istanbul", Nights: 3}},
		StartDate:     "2027-04-01",
		TotalNights:   3,
		Adults:        2,
		HotelCategory: "four",
		TourType:      "private",
		ContactName:   "Jane Doe",
		ContactEmail:  "jane@example.com",
		ContactPhone:  "+331234567",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 11, id)
	require.NoError(t, mock.ExpectationsWereMet())
}
