package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/phpdave11/gofpdf"

	"tourapi/internal/domain/models"
	"tourapi/internal/repositories"
	"tourapi/internal/utils"
)

// VoucherService renders the booking confirmation voucher PDF.
type VoucherService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(ref string) (models.Booking, error)
}

// Generate builds the voucher PDF for a booking reference. Returns the PDF
// bytes and a download filename.
func (s VoucherService) Generate(ref string) ([]byte, string, error) {
	b, err := s.loadBooking(ref)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "voucher", "generate", "reference="+b.ReferenceNumber)
	return buildVoucherPDF(b)
}

func (s VoucherService) loadBooking(ref string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(ref)
	}
	return s.BookingRepo.GetByReference(ref)
}

func buildVoucherPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference      : %s", safe(b.ReferenceNumber, "-")),
		fmt.Sprintf("Package        : %s", safe(b.PackageTitle, "-")),
		fmt.Sprintf("Travel date    : %s", safe(b.TravelDate, "-")),
		fmt.Sprintf("Travelers      : %d adults, %d children 3-5, %d children 6-10",
			b.Adults, b.Children3To5, b.Children6To10),
		fmt.Sprintf("Hotel category : %s", safe(b.HotelCategory, "-")),
		fmt.Sprintf("Lead contact   : %s", safe(b.ContactName, "-")),
		fmt.Sprintf("Email          : %s", safe(b.ContactEmail, "-")),
		fmt.Sprintf("Issued         : %s", utils.FormatDate(utils.NowUTC())),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, p := range b.Passengers {
		entry := fmt.Sprintf("%d) %s %s - %s, passport %s (%s), expires %s",
			i+1, safe(p.FirstName, "-"), safe(p.LastName, "-"),
			safe(p.PassengerType, "-"), safe(p.PassportNumber, "-"),
			safe(p.Nationality, "-"), safe(p.PassportExpiry, "-"))
		pdf.MultiCell(0, 6, entry, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	// core fonts are cp1252, so spell the currency out instead of using €
	pdf.Cell(0, 8, "Total: EUR "+utils.FormatMoney(b.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Present this voucher with valid passports at the start of your tour.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%s.pdf", safeFilenamePart(b.ReferenceNumber))
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

var filenameRe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func safeFilenamePart(s string) string {
	s = filenameRe.ReplaceAllString(strings.TrimSpace(s), "_")
	return strings.Trim(s, "_")
}
