package models

// Passenger types used by the booking flow. Child brackets follow the
// product's age bands.
const (
	PassengerAdult      = "ADULT"
	PassengerChild3To5  = "CHILD_3_5"
	PassengerChild6To10 = "CHILD_6_10"
)

// Passenger holds the passport-level detail captured per traveler before a
// booking may be submitted. Every field except MiddleName is required.
type Passenger struct {
	ID              int64  `json:"id,omitempty"`
	BookingID       int64  `json:"bookingId,omitempty"`
	PassengerType   string `json:"passengerType"`
	FirstName       string `json:"firstName"`
	MiddleName      string `json:"middleName,omitempty"`
	LastName        string `json:"lastName"`
	DateOfBirth     string `json:"dateOfBirth"` // YYYY-MM-DD
	Gender          string `json:"gender"`
	Nationality     string `json:"nationality"`
	PassportNumber  string `json:"passportNumber"`
	PassportExpiry  string `json:"passportExpiry"` // YYYY-MM-DD
	PassportCountry string `json:"passportCountry"`
}

// Booking is a confirmed reservation for a tour package.
type Booking struct {
	ID              int64       `json:"id"`
	ReferenceNumber string      `json:"referenceNumber"`
	PackageID       int64       `json:"packageId"`
	PackageTitle    string      `json:"packageTitle,omitempty"`
	TravelDate      string      `json:"travelDate"`
	Adults          int         `json:"adults"`
	Children3To5    int         `json:"children3to5"`
	Children6To10   int         `json:"children6to10"`
	HotelCategory   string      `json:"hotelCategory,omitempty"`
	ContactName     string      `json:"contactName"`
	ContactEmail    string      `json:"contactEmail"`
	ContactPhone    string      `json:"contactPhone"`
	TotalPrice      float64     `json:"totalPrice"`
	Status          string      `json:"status"`
	Passengers      []Passenger `json:"passengers,omitempty"`
	CreatedAt       string      `json:"createdAt,omitempty"`
}

// PartySize reports the declared total traveler count.
func (b Booking) PartySize() int {
	return b.Adults + b.Children3To5 + b.Children6To10
}
