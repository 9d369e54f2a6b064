package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourapi/internal/domain/models"
)

// CreateItinerary accepts a full smart-planner payload and returns the
// uuid the frontend redirects to.
// POST /api/itineraries
func (a *API) CreateItinerary(c *gin.Context) {
	var req models.ItineraryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	stored, err := a.planner(c).Submit(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"uuid": stored.UUID})
}

// GetItinerary returns a planner request for the itinerary view route.
// GET /api/itineraries/:uuid
func (a *API) GetItinerary(c *gin.Context) {
	req, err := a.planner(c).Get(c.Param("uuid"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}
