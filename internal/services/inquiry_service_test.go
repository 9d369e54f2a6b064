package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
	"tourapi/internal/repositories"
)

func TestInquirySubmitStoresComposedMessage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO inquiries").
		WithArgs("Jane Doe", "jane@example.com", "+33123456789", "France",
			"Trip inquiry", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	svc := InquiryService{InquiryRepo: repositories.InquiryRepository{DB: db}}
	stored, err := svc.Submit(models.Inquiry{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "+33 123 456 789",
		Country:      "France",
		Destinations: []string{"Rome", "Florence"},
		Duration:     "7-10 days",
		BudgetRange:  "2000-3000",
		TravelDate:   "2027-05-10",
		Adults:       2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), stored.ID)

	assert.Contains(t, stored.Message, "Destinations: Rome, Florence")
	assert.Contains(t, stored.Message, "Duration: 7-10 days")
	assert.Contains(t, stored.Message, "2027-05-10")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInquirySubmitRejectsMissingContact(t *testing.T) {
	svc := InquiryService{}

	_, err := svc.Submit(models.Inquiry{Email: "jane@example.com"})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Submit(models.Inquiry{Name: "Jane"})
	assert.True(t, domain.IsValidation(err))
}

func TestComposeInquiryMessageStripsMarkup(t *testing.T) {
	msg := ComposeInquiryMessage(models.Inquiry{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: `<script>alert("x")</script>Please call me`,
	})
	assert.NotContains(t, msg, "<script>")
	assert.Contains(t, msg, "Please call me")
}
