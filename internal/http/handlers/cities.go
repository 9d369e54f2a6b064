package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchCities backs the city autocomplete box.
// GET /api/cities?search=ist
//
// When a wizard session id is supplied the response carries a monotonic
// generation number; a response whose generation is no longer current is
// flagged stale so rapid typing cannot let an old result clobber a newer
// one.
func (a *API) SearchCities(c *gin.Context) {
	query := c.Query("search")

	sessionID := c.Query("session")
	var gen uint64
	if sessionID != "" {
		g, err := a.Sessions.NextSearchGeneration(sessionID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		gen = g
	}

	cities, err := a.cities(c).Search(c.Request.Context(), query)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "city search failed", nil)
		return
	}

	payload := gin.H{"cities": cities}
	if sessionID != "" {
		payload["generation"] = gen
		payload["stale"] = !a.Sessions.SearchGenerationCurrent(sessionID, gen)
	}
	c.JSON(http.StatusOK, payload)
}
