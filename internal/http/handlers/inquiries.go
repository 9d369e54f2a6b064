package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourapi/internal/domain/models"
)

// CreateInquiry accepts a full inquiry payload from non-wizard clients.
// POST /api/inquiries
func (a *API) CreateInquiry(c *gin.Context) {
	var inq models.Inquiry
	if !BindJSONOrError(c, &inq) {
		return
	}
	stored, err := a.inquiry(c).Submit(inq)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":    stored.ID,
		"email": stored.Email,
	})
}
