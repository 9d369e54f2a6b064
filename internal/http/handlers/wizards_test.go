package handlers

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapi/internal/http/middleware"
	"tourapi/internal/repositories"
	"tourapi/internal/services"
	"tourapi/internal/utils"
)

func newTestAPI(t *testing.T) (*API, sqlmock.Sqlmock, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.SetLogOutput(io.Discard)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	api := buildAPI(db)
	r := gin.New()
	wireTestRoutes(r, api)
	return api, mock, r
}

func buildAPI(db *sql.DB) *API {
	inquirySvc := services.InquiryService{InquiryRepo: repositories.InquiryRepository{DB: db}}
	plannerSvc := services.PlannerService{ItineraryRepo: repositories.ItineraryRepository{DB: db}}
	bookingSvc := services.BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		PackageRepo: repositories.PackageRepository{DB: db},
		RefGen:      fixedRef{"TB-9000"},
	}
	return &API{
		Inquiry: inquirySvc,
		Planner: plannerSvc,
		Booking: bookingSvc,
		Cities: services.CityService{
			CityRepo: repositories.CityRepository{DB: db},
		},
		Flows: services.FlowFactory{
			Inquiry: inquirySvc,
			Planner: plannerSvc,
			Booking: bookingSvc,
		},
		Sessions: services.NewSessionStore(time.Minute),
	}
}

func wireTestRoutes(r *gin.Engine, a *API) {
	r.Use(middleware.RequestID())
	api := r.Group("/api")
	api.POST("/inquiries", a.CreateInquiry)
	api.GET("/cities", a.SearchCities)
	wizards := api.Group("/wizards")
	wizards.POST("", a.StartWizard)
	wizards.GET("/:id", a.GetWizard)
	wizards.PUT("/:id/fields", a.SetWizardFields)
	wizards.POST("/:id/next", a.WizardNext)
	wizards.POST("/:id/back", a.WizardBack)
	wizards.POST("/:id/submit", a.WizardSubmit)
}

type fixedRef struct{ ref string }

func (g fixedRef) ReferenceNumber() string { return g.ref }

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func TestInquiryWizardEndToEnd(t *testing.T) {
	_, mock, r := newTestAPI(t)

	var storedMessage string
	mock.ExpectExec("INSERT INTO inquiries").
		WithArgs("Jane Doe", "jane@example.com", "+33123456789", "France",
			"Trip inquiry", messageCapture{&storedMessage}).
		WillReturnResult(sqlmock.NewResult(1, 1))

	travelDate := time.Now().AddDate(0, 2, 0).Format("2006-01-02")

	w, state := doJSON(t, r, http.MethodPost, "/api/wizards?flow=inquiry", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := state["sessionId"].(string)
	base := "/api/wizards/" + sessionID

	// step 1: contact info
	doJSON(t, r, http.MethodPut, base+"/fields", map[string]any{
		"name": "Jane Doe", "email": "jane@example.com",
		"phone": "+33 123 456 789", "country": "France",
	})
	w, state = doJSON(t, r, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 2, state["step"])

	// step 2: trip preferences
	doJSON(t, r, http.MethodPut, base+"/fields", map[string]any{
		"destinations": []string{"Rome", "Florence"},
		"duration":     "7-10 days",
		"budgetRange":  "2000-3000",
	})
	w, state = doJSON(t, r, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 3, state["step"])

	// step 3: group & date, then submit
	doJSON(t, r, http.MethodPut, base+"/fields", map[string]any{
		"adults": "2", "travelDate": travelDate,
	})
	w, state = doJSON(t, r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, true, state["done"])
	result := state["result"].(map[string]any)
	// the success view renders the submitted email address
	assert.Equal(t, "jane@example.com", result["email"])

	// exactly one insert, with the labelled message body
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Contains(t, storedMessage, "Destinations: Rome, Florence")
	assert.Contains(t, storedMessage, "Duration: 7-10 days")
	assert.Contains(t, storedMessage, travelDate)

	// session is gone after a successful submit
	w, _ = doJSON(t, r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// messageCapture matches any string argument and records it.
type messageCapture struct{ dst *string }

func (m messageCapture) Match(v driver.Value) bool {
	s, ok := v.(string)
	if ok {
		*m.dst = s
	}
	return ok
}

func TestInquiryWizardStepOneGating(t *testing.T) {
	_, _, r := newTestAPI(t)

	w, state := doJSON(t, r, http.MethodPost, "/api/wizards?flow=inquiry", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/wizards/" + state["sessionId"].(string)

	doJSON(t, r, http.MethodPut, base+"/fields", map[string]any{
		"email": "not-an-email",
	})
	w, state = doJSON(t, r, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.EqualValues(t, 1, state["step"])

	errs := state["errors"].(map[string]any)
	// exactly the failing fields, no others
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "country")
	assert.Len(t, errs, 4)
}

func TestPlannerWizardBlocksEmptyCities(t *testing.T) {
	_, _, r := newTestAPI(t)

	w, state := doJSON(t, r, http.MethodPost, "/api/wizards?flow=planner", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/wizards/" + state["sessionId"].(string)

	startDate := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	doJSON(t, r, http.MethodPut, base+"/fields", map[string]any{
		"city_nights": []map[string]any{},
		"start_date":  startDate,
	})
	w, state = doJSON(t, r, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.EqualValues(t, 1, state["step"])
	assert.Contains(t, state["errors"].(map[string]any), "city_nights")

	// a whitespace-only city is not a city
	doJSON(t, r, http.MethodPut, base+"/fields", map[string]any{
		"city_nights": []map[string]any{{"city": "   ", "nights": 3}},
	})
	w, state = doJSON(t, r, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.EqualValues(t, 1, state["step"])
	assert.Contains(t, state["errors"].(map[string]any), "city_nights")

	// one real city unblocks the step
	doJSON(t, r, http.MethodPut, base+"/fields", map[string]any{
		"city_nights": []map[string]any{{"city": "Istanbul", "nights": 3}},
	})
	w, state = doJSON(t, r, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, state["step"])
}

func TestWizardBackKeepsData(t *testing.T) {
	_, _, r := newTestAPI(t)

	w, state := doJSON(t, r, http.MethodPost, "/api/wizards?flow=inquiry", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/wizards/" + state["sessionId"].(string)

	doJSON(t, r, http.MethodPut, base+"/fields", map[string]any{
		"name": "Jane Doe", "email": "jane@example.com",
		"phone": "+33 123 456 789", "country": "France",
	})
	w, _ = doJSON(t, r, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	doJSON(t, r, http.MethodPut, base+"/fields", map[string]any{
		"destinations": []string{"Rome"},
		"duration":     "7-10 days",
		"budgetRange":  "2000-3000",
	})

	// back to step 1 and forward again without re-entering step 2 data
	doJSON(t, r, http.MethodPost, base+"/back", nil)
	w, state = doJSON(t, r, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 2, state["step"])
	w, state = doJSON(t, r, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, state["step"])
}

func TestUnknownWizardFlowRejected(t *testing.T) {
	_, _, r := newTestAPI(t)
	w, _ := doJSON(t, r, http.MethodPost, "/api/wizards?flow=mystery", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWizardSeedFromQueryParams(t *testing.T) {
	a, _, r := newTestAPI(t)

	w, state := doJSON(t, r, http.MethodPost, "/api/wizards?flow=inquiry&destination=Athens", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	ctrl, _, err := a.Sessions.Get(state["sessionId"].(string))
	require.NoError(t, err)
	assert.Equal(t, "Athens", ctrl.Form().Str("destination"))
}
