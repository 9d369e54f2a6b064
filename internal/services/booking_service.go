package services

import (
	"fmt"
	"net/url"
	"strings"

	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
	"tourapi/internal/idgen"
	"tourapi/internal/pricing"
	"tourapi/internal/repositories"
	"tourapi/internal/utils"
)

type BookingService struct {
	BookingRepo repositories.BookingRepository
	PackageRepo repositories.PackageRepository
	RefGen      idgen.Generator
	RequestID   string
}

// Submit validates the full passenger manifest and writes booking plus
// passengers atomically. There is no partial save: one bad passenger
// rejects the whole submission.
func (s BookingService) Submit(b models.Booking) (models.Booking, error) {
	b.ContactName = utils.TrimOrEmpty(b.ContactName)
	b.ContactEmail = utils.TrimOrEmpty(b.ContactEmail)
	b.ContactPhone = utils.NormalizePhone(b.ContactPhone)

	if b.PackageID <= 0 {
		return b, domain.ValidationError{Field: "packageId", Msg: "package is required"}
	}
	if !utils.IsFutureDate(b.TravelDate) {
		return b, domain.ValidationError{Field: "travelDate", Msg: "travel date must be today or later"}
	}
	if b.Adults < 1 {
		return b, domain.ValidationError{Field: "adults", Msg: "at least one adult is required"}
	}
	if b.ContactName == "" || b.ContactEmail == "" {
		return b, domain.ValidationError{Field: "contact", Msg: "contact name and email are required"}
	}
	if errs := ValidatePassengers(b.Passengers, b.PartySize()); len(errs) > 0 {
		return b, domain.FieldsError{Fields: errs}
	}

	pkg, err := s.PackageRepo.GetByID(b.PackageID)
	if err != nil {
		return b, err
	}
	perPerson := pricing.Resolve(pkg.Pricing)
	b.TotalPrice = perPerson * float64(b.PartySize())
	b.Status = "PENDING"
	b.ReferenceNumber = s.RefGen.ReferenceNumber()

	id, err := s.BookingRepo.InsertWithPassengers(b)
	if err != nil {
		utils.LogError(s.RequestID, "booking", "submit", err)
		return b, domain.InternalError{Msg: "could not store booking", Err: err}
	}
	b.ID = id
	b.PackageTitle = pkg.Title
	utils.LogEvent(s.RequestID, "booking", "submit", "reference="+b.ReferenceNumber)
	return b, nil
}

// Get loads a booking by reference number.
func (s BookingService) Get(ref string) (models.Booking, error) {
	ref = utils.TrimOrEmpty(ref)
	if ref == "" {
		return models.Booking{}, domain.ValidationError{Field: "reference", Msg: "reference is required"}
	}
	return s.BookingRepo.GetByReference(ref)
}

// ValidatePassengers checks the manifest matches the declared party size and
// that every passenger carries the required passport-level fields. Keys in
// the returned map are "passengers[i].field".
func ValidatePassengers(passengers []models.Passenger, declared int) map[string]string {
	errs := map[string]string{}
	if len(passengers) != declared {
		errs["passengers"] = fmt.Sprintf("expected %d passengers, got %d", declared, len(passengers))
		return errs
	}
	for i, p := range passengers {
		key := func(field string) string { return fmt.Sprintf("passengers[%d].%s", i, field) }
		require := func(field, value string) {
			if strings.TrimSpace(value) == "" {
				errs[key(field)] = field + " is required"
			}
		}
		require("firstName", p.FirstName)
		require("lastName", p.LastName)
		require("gender", p.Gender)
		require("nationality", p.Nationality)
		require("passportNumber", p.PassportNumber)
		require("passportCountry", p.PassportCountry)
		switch p.PassengerType {
		case models.PassengerAdult, models.PassengerChild3To5, models.PassengerChild6To10:
		default:
			errs[key("passengerType")] = "unknown passenger type"
		}
		if _, err := utils.ParseDate(p.DateOfBirth); err != nil {
			errs[key("dateOfBirth")] = "date of birth must be YYYY-MM-DD"
		}
		if !utils.IsFutureDate(p.PassportExpiry) {
			errs[key("passportExpiry")] = "passport must be valid on the travel date"
		}
	}
	return errs
}

// BlankManifest pre-sizes the passenger list from the declared counts, the
// way the booking modal seeds its form when it opens.
func BlankManifest(adults, children3to5, children6to10 int) []models.Passenger {
	out := make([]models.Passenger, 0, adults+children3to5+children6to10)
	for i := 0; i < adults; i++ {
		out = append(out, models.Passenger{PassengerType: models.PassengerAdult})
	}
	for i := 0; i < children3to5; i++ {
		out = append(out, models.Passenger{PassengerType: models.PassengerChild3To5})
	}
	for i := 0; i < children6to10; i++ {
		out = append(out, models.Passenger{PassengerType: models.PassengerChild6To10})
	}
	return out
}

// WhatsAppLink builds the confirmation deep link. Emoji are plain UTF-8
// literals; the message is URL-encoded once, here.
func WhatsAppLink(number string, b models.Booking) string {
	msg := fmt.Sprintf(
		"✅ Booking confirmed!\nReference: %s\n🏝 %s\n📅 %s\n👥 %d travelers\nTotal: %s",
		b.ReferenceNumber,
		b.PackageTitle,
		b.TravelDate,
		b.PartySize(),
		utils.FormatEUR(b.TotalPrice),
	)
	return "https://wa.me/" + utils.NormalizePhone(number) + "?text=" + url.QueryEscape(msg)
}
