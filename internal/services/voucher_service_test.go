package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
)

func TestVoucherGenerate(t *testing.T) {
	svc := VoucherService{
		Loader: func(ref string) (models.Booking, error) {
			return models.Booking{
				ReferenceNumber: ref,
				PackageTitle:    "Istanbul 4 Days",
				TravelDate:      "2027-05-01",
				Adults:          2,
				ContactName:     "Jane Doe",
				ContactEmail:    "jane@example.com",
				TotalPrice:      500,
				Passengers: []models.Passenger{
					validPassenger("ADULT"),
					validPassenger("ADULT"),
				},
			}, nil
		},
	}

	pdf, filename, err := svc.Generate("TB-9000")
	require.NoError(t, err)
	assert.Equal(t, "VOUCHER_TB-9000.pdf", filename)
	assert.True(t, len(pdf) > 500)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestVoucherGenerateUnknownReference(t *testing.T) {
	svc := VoucherService{
		Loader: func(string) (models.Booking, error) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		},
	}
	_, _, err := svc.Generate("TB-0")
	assert.True(t, domain.IsNotFound(err))
}
