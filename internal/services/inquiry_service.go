package services

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
	"tourapi/internal/repositories"
	"tourapi/internal/utils"
)

// sanitizer strips any markup from free-text fields before they are
// concatenated into the message body the sales team reads.
var sanitizer = bluemonday.StrictPolicy()

type InquiryService struct {
	InquiryRepo repositories.InquiryRepository
	RequestID   string
}

// Submit stores an inquiry, flattening the structured trip preferences into
// one human-readable message. Returns the stored inquiry with its id set.
func (s InquiryService) Submit(inq models.Inquiry) (models.Inquiry, error) {
	inq.Name = utils.TrimOrEmpty(inq.Name)
	inq.Email = utils.TrimOrEmpty(inq.Email)
	inq.Phone = utils.NormalizePhone(inq.Phone)
	inq.Country = utils.TrimOrEmpty(inq.Country)
	inq.Destinations = utils.CleanList(inq.Destinations)

	if inq.Name == "" {
		return inq, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if inq.Email == "" {
		return inq, domain.ValidationError{Field: "email", Msg: "email is required"}
	}

	inq.Subject = utils.FirstNonEmpty(inq.Subject, "Trip inquiry")
	inq.Message = ComposeInquiryMessage(inq)

	id, err := s.InquiryRepo.Insert(inq)
	if err != nil {
		utils.LogError(s.RequestID, "inquiry", "submit", err)
		return inq, domain.InternalError{Msg: "could not store inquiry", Err: err}
	}
	inq.ID = id
	utils.LogEvent(s.RequestID, "inquiry", "submit", fmt.Sprintf("id=%d", id))
	return inq, nil
}

// ComposeInquiryMessage renders the labelled, human-readable body sent to
// the sales inbox. Free text passes through the sanitizer first.
func ComposeInquiryMessage(inq models.Inquiry) string {
	clean := func(s string) string {
		return utils.NormalizeSpace(sanitizer.Sanitize(s))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New trip inquiry from %s\n\n", clean(inq.Name))
	fmt.Fprintf(&b, "Email: %s\n", clean(inq.Email))
	if inq.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", clean(inq.Phone))
	}
	if inq.Country != "" {
		fmt.Fprintf(&b, "Country: %s\n", clean(inq.Country))
	}
	if len(inq.Destinations) > 0 {
		fmt.Fprintf(&b, "Destinations: %s\n", clean(strings.Join(inq.Destinations, ", ")))
	}
	if inq.Duration != "" {
		fmt.Fprintf(&b, "Duration: %s\n", clean(inq.Duration))
	}
	if inq.BudgetRange != "" {
		fmt.Fprintf(&b, "Budget: %s\n", clean(inq.BudgetRange))
	}
	if inq.TravelDate != "" {
		fmt.Fprintf(&b, "Travel date: %s\n", clean(inq.TravelDate))
	}
	if inq.Adults > 0 || inq.Children > 0 {
		fmt.Fprintf(&b, "Party: %d adults, %d children\n", inq.Adults, inq.Children)
	}
	if msg := clean(inq.Message); msg != "" {
		fmt.Fprintf(&b, "\n%s\n", msg)
	}
	return b.String()
}
