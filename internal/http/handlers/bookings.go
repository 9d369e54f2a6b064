package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourapi/internal/domain/models"
	"tourapi/internal/services"
)

// CreateBooking accepts a structured booking with its passenger manifest.
// POST /api/bookings
func (a *API) CreateBooking(c *gin.Context) {
	var b models.Booking
	if !BindJSONOrError(c, &b) {
		return
	}
	stored, err := a.booking(c).Submit(b)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"referenceNumber": stored.ReferenceNumber,
		"totalPrice":      stored.TotalPrice,
	})
}

// GetBooking loads a booking by reference for the confirmation page.
// GET /api/bookings/:ref
func (a *API) GetBooking(c *gin.Context) {
	b, err := a.booking(c).Get(c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBookingVoucher streams the confirmation voucher PDF.
// GET /api/bookings/:ref/voucher
func (a *API) GetBookingVoucher(c *gin.Context) {
	pdf, filename, err := a.voucher(c).Generate(c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetBookingManifest pre-sizes the passenger list from declared counts, the
// payload the booking modal uses to seed its passenger step.
// GET /api/bookings/manifest?adults=2&children3to5=1&children6to10=0
func (a *API) GetBookingManifest(c *gin.Context) {
	adults := intQuery(c, "adults", 1)
	c35 := intQuery(c, "children3to5", 0)
	c610 := intQuery(c, "children6to10", 0)
	c.JSON(http.StatusOK, gin.H{
		"passengers": services.BlankManifest(adults, c35, c610),
	})
}

// GetBookingWhatsAppLink builds the confirmation deep link.
// GET /api/bookings/:ref/whatsapp?number=...
func (a *API) GetBookingWhatsAppLink(c *gin.Context) {
	b, err := a.booking(c).Get(c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	number := c.Query("number")
	if number == "" {
		RespondError(c, http.StatusBadRequest, "number is required", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": services.WhatsAppLink(number, b)})
}

func intQuery(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
