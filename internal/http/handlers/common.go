package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourapi/internal/http/middleware"
	"tourapi/internal/services"
)

// API bundles the wired services behind the HTTP surface. One instance is
// built at startup and shared by all handlers.
type API struct {
	Packages services.PackageService
	Inquiry  services.InquiryService
	Planner  services.PlannerService
	Booking  services.BookingService
	Voucher  services.VoucherService
	Cities   services.CityService
	Auth     services.AuthService
	Flows    services.FlowFactory
	Sessions *services.SessionStore
}

// Per-request copies carrying the request id, so service log lines stay
// correlated with the access log.

func (a *API) packages(c *gin.Context) services.PackageService {
	s := a.Packages
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (a *API) inquiry(c *gin.Context) services.InquiryService {
	s := a.Inquiry
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (a *API) planner(c *gin.Context) services.PlannerService {
	s := a.Planner
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (a *API) booking(c *gin.Context) services.BookingService {
	s := a.Booking
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (a *API) voucher(c *gin.Context) services.VoucherService {
	s := a.Voucher
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (a *API) cities(c *gin.Context) services.CityService {
	s := a.Cities
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (a *API) auth(c *gin.Context) services.AuthService {
	s := a.Auth
	s.RequestID = middleware.GetRequestID(c)
	return s
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
