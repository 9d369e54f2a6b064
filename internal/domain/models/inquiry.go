package models

// Inquiry is a contact request produced by the multi-step inquiry form. The
// structured trip preferences are flattened into Message before storage so
// the sales team reads one human-formatted text.
type Inquiry struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Country      string   `json:"country"`
	Subject      string   `json:"subject"`
	Destinations []string `json:"destinations"`
	Duration     string   `json:"duration"`
	BudgetRange  string   `json:"budgetRange"`
	TravelDate   string   `json:"travelDate"`
	Adults       int      `json:"adults"`
	Children     int      `json:"children"`
	Message      string   `json:"message"`
	CreatedAt    string   `json:"createdAt,omitempty"`
}

// CityNights pairs a city with the nights spent there in a planner request.
type CityNights struct {
	City   string `json:"city"`
	Nights int    `json:"nights"`
}

// ItineraryRequest is a smart-planner submission. UUID is the public handle
// the frontend redirects to once the itinerary view is ready.
type ItineraryRequest struct {
	ID            int64        `json:"id"`
	UUID          string       `json:"uuid"`
	CityNights    []CityNights `json:"cityNights"`
	StartDate     string       `json:"startDate"`
	TotalNights   int          `json:"totalNights"`
	Adults        int          `json:"adults"`
	Children      int          `json:"children"`
	HotelCategory string       `json:"hotelCategory"`
	TourType      string       `json:"tourType"`
	ContactName   string       `json:"contactName"`
	ContactEmail  string       `json:"contactEmail"`
	ContactPhone  string       `json:"contactPhone"`
	CreatedAt     string       `json:"createdAt,omitempty"`
}
