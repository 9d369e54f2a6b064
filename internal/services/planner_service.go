package services

import (
	"github.com/google/uuid"

	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
	"tourapi/internal/repositories"
	"tourapi/internal/utils"
)

type PlannerService struct {
	ItineraryRepo repositories.ItineraryRepository
	RequestID     string
}

// Submit persists a smart-planner request and returns its public uuid used
// by the frontend for the itinerary view redirect.
func (s PlannerService) Submit(req models.ItineraryRequest) (models.ItineraryRequest, error) {
	cities := make([]models.CityNights, 0, len(req.CityNights))
	total := 0
	for _, cn := range req.CityNights {
		cn.City = utils.TrimOrEmpty(cn.City)
		if cn.City == "" {
			continue
		}
		if cn.Nights < 1 {
			cn.Nights = 1
		}
		total += cn.Nights
		cities = append(cities, cn)
	}
	if len(cities) == 0 {
		return req, domain.ValidationError{Field: "city_nights", Msg: "add at least one city"}
	}
	if _, err := utils.ParseDate(req.StartDate); err != nil {
		return req, domain.ValidationError{Field: "start_date", Msg: "start date must be YYYY-MM-DD"}
	}
	req.CityNights = cities
	req.TotalNights = total
	if req.Adults < 1 {
		req.Adults = 1
	}
	req.UUID = uuid.NewString()

	id, err := s.ItineraryRepo.Insert(req)
	if err != nil {
		utils.LogError(s.RequestID, "planner", "submit", err)
		return req, domain.InternalError{Msg: "could not store itinerary request", Err: err}
	}
	req.ID = id
	utils.LogEvent(s.RequestID, "planner", "submit", "uuid="+req.UUID)
	return req, nil
}

// Get loads a planner request by uuid for the itinerary view.
func (s PlannerService) Get(id string) (models.ItineraryRequest, error) {
	return s.ItineraryRepo.GetByUUID(id)
}
