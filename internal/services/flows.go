package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"tourapi/internal/domain/models"
	"tourapi/internal/utils"
	"tourapi/internal/wizard"
)

// Flow names accepted by the wizard endpoints.
const (
	FlowInquiry = "inquiry"
	FlowPlanner = "planner"
	FlowBooking = "booking"
)

// FlowFactory builds wizard controllers wired to the submit services. One
// step table per flow, so adding a flow is a table plus a submit adapter.
type FlowFactory struct {
	Inquiry InquiryService
	Planner PlannerService
	Booking BookingService
}

// New returns a controller for the named flow, or false for unknown flows.
// Seed values carry query-string defaults like a preselected destination.
func (f FlowFactory) New(flow string, seed wizard.Form) (*wizard.Controller, bool) {
	switch flow {
	case FlowInquiry:
		return wizard.New(inquirySteps(), f.submitInquiry, seed), true
	case FlowPlanner:
		return wizard.New(plannerSteps(), f.submitPlanner, seed), true
	case FlowBooking:
		return wizard.New(bookingSteps(), f.submitBooking, seed), true
	default:
		return nil, false
	}
}

// inquirySteps: contact info / trip preferences / group & date.
func inquirySteps() []wizard.Step {
	return []wizard.Step{
		{Name: "contact", Rules: []wizard.Rule{
			wizard.NonEmpty("name", "name is required"),
			wizard.Email("email", "enter a valid email"),
			wizard.Phone("phone", "enter a valid phone number"),
			wizard.NonEmpty("country", "country is required"),
		}},
		{Name: "preferences", Rules: []wizard.Rule{
			wizard.MinLen("destinations", 1, "select at least one destination"),
			wizard.NonEmpty("duration", "choose a trip duration"),
			wizard.NonEmpty("budgetRange", "choose a budget range"),
		}},
		{Name: "group_and_date", Rules: []wizard.Rule{
			wizard.PositiveInt("adults", "at least one adult"),
			wizard.FutureDate("travelDate", "pick a future travel date"),
		}},
	}
}

// plannerSteps: destinations / preferences / details / contact.
func plannerSteps() []wizard.Step {
	return []wizard.Step{
		{Name: "destinations", Rules: []wizard.Rule{
			wizard.Custom("city_nights", "add at least one city", hasCity),
			wizard.FutureDate("start_date", "pick a future start date"),
		}},
		{Name: "preferences", Rules: []wizard.Rule{
			wizard.NonEmpty("hotelCategory", "choose a hotel category"),
			wizard.NonEmpty("tourType", "choose a tour type"),
		}},
		{Name: "details", Rules: []wizard.Rule{
			wizard.PositiveInt("adults", "at least one adult"),
		}},
		{Name: "contact", Rules: []wizard.Rule{
			wizard.NonEmpty("name", "name is required"),
			wizard.Email("email", "enter a valid email"),
			wizard.Phone("phone", "enter a valid phone number"),
		}},
	}
}

// bookingSteps: party & dates / passengers / review.
func bookingSteps() []wizard.Step {
	return []wizard.Step{
		{Name: "party_and_dates", Rules: []wizard.Rule{
			wizard.PositiveInt("packageId", "package is required"),
			wizard.PositiveInt("adults", "at least one adult"),
			wizard.FutureDate("travelDate", "pick a future travel date"),
		}},
		{Name: "passengers", Rules: []wizard.Rule{
			wizard.Custom("passengers", "complete every passenger", passengersComplete),
		}},
		{Name: "review", Rules: []wizard.Rule{
			wizard.NonEmpty("contactName", "contact name is required"),
			wizard.Email("contactEmail", "enter a valid email"),
			wizard.Custom("passengers", "complete every passenger", passengersComplete),
		}},
	}
}

// hasCity accepts city_nights as []CityNights, decoded JSON ([]any of
// objects), or a plain string list; at least one non-blank city counts.
func hasCity(f wizard.Form) bool {
	cities, _ := decodeCityNights(f["city_nights"])
	return len(cities) > 0
}

func passengersComplete(f wizard.Form) bool {
	passengers, ok := decodePassengers(f["passengers"])
	if !ok {
		return false
	}
	declared := formInt(f, "adults") + formInt(f, "children3to5") + formInt(f, "children6to10")
	return len(ValidatePassengers(passengers, declared)) == 0
}

func (f FlowFactory) submitInquiry(ctx context.Context, form wizard.Form) (wizard.Result, error) {
	inq := models.Inquiry{
		Name:         form.Str("name"),
		Email:        form.Str("email"),
		Phone:        form.Str("phone"),
		Country:      form.Str("country"),
		Subject:      form.Str("subject"),
		Destinations: form.Strs("destinations"),
		Duration:     form.Str("duration"),
		BudgetRange:  form.Str("budgetRange"),
		TravelDate:   form.Str("travelDate"),
		Adults:       formInt(form, "adults"),
		Children:     formInt(form, "children"),
		Message:      form.Str("message"),
	}
	svc := f.Inquiry
	svc.RequestID = utils.RequestIDFrom(ctx)
	stored, err := svc.Submit(inq)
	if err != nil {
		return nil, err
	}
	return wizard.Result{"id": stored.ID, "email": stored.Email}, nil
}

func (f FlowFactory) submitPlanner(ctx context.Context, form wizard.Form) (wizard.Result, error) {
	cities, _ := decodeCityNights(form["city_nights"])
	req := models.ItineraryRequest{
		CityNights:    cities,
		StartDate:     form.Str("start_date"),
		Adults:        formInt(form, "adults"),
		Children:      formInt(form, "children"),
		HotelCategory: form.Str("hotelCategory"),
		TourType:      form.Str("tourType"),
		ContactName:   form.Str("name"),
		ContactEmail:  form.Str("email"),
		ContactPhone:  form.Str("phone"),
	}
	svc := f.Planner
	svc.RequestID = utils.RequestIDFrom(ctx)
	stored, err := svc.Submit(req)
	if err != nil {
		return nil, err
	}
	return wizard.Result{"uuid": stored.UUID}, nil
}

func (f FlowFactory) submitBooking(ctx context.Context, form wizard.Form) (wizard.Result, error) {
	passengers, _ := decodePassengers(form["passengers"])
	b := models.Booking{
		PackageID:     int64(formInt(form, "packageId")),
		TravelDate:    form.Str("travelDate"),
		Adults:        formInt(form, "adults"),
		Children3To5:  formInt(form, "children3to5"),
		Children6To10: formInt(form, "children6to10"),
		HotelCategory: form.Str("hotelCategory"),
		ContactName:   form.Str("contactName"),
		ContactEmail:  form.Str("contactEmail"),
		ContactPhone:  form.Str("contactPhone"),
		Passengers:    passengers,
	}
	svc := f.Booking
	svc.RequestID = utils.RequestIDFrom(ctx)
	stored, err := svc.Submit(b)
	if err != nil {
		return nil, err
	}
	return wizard.Result{
		"referenceNumber": stored.ReferenceNumber,
		"totalPrice":      stored.TotalPrice,
	}, nil
}

// formInt tolerates numeric counters posted as strings by select inputs.
func formInt(f wizard.Form, key string) int {
	if s := f.Str(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		return 0
	}
	return f.Int(key)
}

func decodeCityNights(v any) ([]models.CityNights, bool) {
	switch val := v.(type) {
	case []models.CityNights:
		return nonBlankCities(val), true
	case []string:
		out := make([]models.CityNights, 0, len(val))
		for _, city := range val {
			out = append(out, models.CityNights{City: city, Nights: 1})
		}
		return nonBlankCities(out), true
	case []any:
		cities, ok := decodeViaJSON[[]models.CityNights](val)
		if !ok {
			return nil, false
		}
		return nonBlankCities(cities), true
	default:
		return nil, false
	}
}

func decodePassengers(v any) ([]models.Passenger, bool) {
	switch val := v.(type) {
	case []models.Passenger:
		return val, true
	case []any:
		return decodeViaJSON[[]models.Passenger](val)
	default:
		return nil, false
	}
}

// decodeViaJSON re-marshals a generically decoded body into the typed slice.
func decodeViaJSON[T any](v any) (T, bool) {
	var out T
	b, err := json.Marshal(v)
	if err != nil {
		return out, false
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, false
	}
	return out, true
}

func nonBlankCities(in []models.CityNights) []models.CityNights {
	out := make([]models.CityNights, 0, len(in))
	for _, cn := range in {
		if strings.TrimSpace(cn.City) != "" {
			out = append(out, cn)
		}
	}
	return out
}
