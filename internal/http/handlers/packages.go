package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListPackages returns browsable packages with resolved display prices.
// GET /api/packages?destination=...
func (a *API) ListPackages(c *gin.Context) {
	pkgs, err := a.packages(c).List(c.Query("destination"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": pkgs})
}

// GetPackage returns one package including its full rate table.
// GET /api/packages/:slug
func (a *API) GetPackage(c *gin.Context) {
	pkg, err := a.packages(c).Get(c.Param("slug"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// ListDestinations returns destinations with package counts.
// GET /api/destinations
func (a *API) ListDestinations(c *gin.Context) {
	dests, err := a.packages(c).Destinations()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": dests})
}

type updatePricingRequest struct {
	Pricing json.RawMessage `json:"pricing" binding:"required"`
}

// UpdatePackagePricing replaces a package's pricing blob (admin only).
// PUT /api/admin/packages/:id/pricing
func (a *API) UpdatePackagePricing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid package id", nil)
		return
	}
	var req updatePricingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	norm, err := a.packages(c).UpdatePricing(id, req.Pricing)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"shape":        norm.Shape,
		"displayPrice": norm.DisplayPrice,
	})
}
