package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapi/internal/utils"
)

func TestCreateInquiry(t *testing.T) {
	_, mock, r := newTestAPI(t)

	var storedMessage string
	mock.ExpectExec("INSERT INTO inquiries").
		WithArgs("John Smith", "john@example.com", "+441234567", sqlmock.AnyArg(),
			"Trip inquiry", messageCapture{&storedMessage}).
		WillReturnResult(sqlmock.NewResult(7, 1))

	w, body := doJSON(t, r, http.MethodPost, "/api/inquiries", map[string]any{
		"name":         "John Smith",
		"email":        "john@example.com",
		"phone":        "+44 123 4567",
		"country":      "United Kingdom",
		"destinations": []string{"Cappadocia"},
		"duration":     "4-6 days",
		"budgetRange":  "1000-2000",
		"travelDate":   "2027-05-01",
		"adults":       2,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 7, body["id"])
	assert.Equal(t, "john@example.com", body["email"])

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Contains(t, storedMessage, "Destinations: Cappadocia")
	assert.Contains(t, storedMessage, "Duration: 4-6 days")
	assert.Contains(t, storedMessage, "2027-05-01")
}

func TestCreateInquiryMissingEmail(t *testing.T) {
	_, mock, r := newTestAPI(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/inquiries", map[string]any{
		"name":    "John Smith",
		"country": "United Kingdom",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "email")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceLogsCarryRequestID(t *testing.T) {
	_, mock, r := newTestAPI(t)

	var logs bytes.Buffer
	utils.SetLogOutput(&logs)
	defer utils.SetLogOutput(io.Discard)

	mock.ExpectExec("INSERT INTO inquiries").
		WillReturnResult(sqlmock.NewResult(1, 1))

	payload, err := json.Marshal(map[string]any{
		"name":  "John Smith",
		"email": "john@example.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-test-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, logs.String(), `"request_id":"req-test-42"`)
	assert.Contains(t, logs.String(), `"module":"INQUIRY"`)
}
