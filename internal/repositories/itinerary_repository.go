package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"tourapi/internal/db"
	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
)

type ItineraryRepository struct {
	DB *sql.DB
}

// Insert stores a smart-planner request keyed by its public uuid.
func (r ItineraryRepository) Insert(req models.ItineraryRequest) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO itinerary_requests
			(uuid, city_nights, start_date, total_nights, adults, children,
			 hotel_category, tour_type, contact_name, contact_email, contact_phone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.UUID, db.JSONOrNull(req.CityNights), req.StartDate, req.TotalNights,
		req.Adults, req.Children, req.HotelCategory, req.TourType,
		req.ContactName, req.ContactEmail, req.ContactPhone,
	)
	if err != nil {
		return 0, fmt.Errorf("insert itinerary request: %w", err)
	}
	return res.LastInsertId()
}

// GetByUUID loads a planner request for the itinerary view route.
func (r ItineraryRepository) GetByUUID(uuid string) (models.ItineraryRequest, error) {
	var req models.ItineraryRequest
	var cityNights sql.NullString
	err := r.DB.QueryRow(`
		SELECT id, uuid, city_nights, start_date, total_nights, adults, children,
			hotel_category, tour_type, contact_name, contact_email, contact_phone
		FROM itinerary_requests WHERE uuid = ? LIMIT 1`, uuid).Scan(
		&req.ID, &req.UUID, &cityNights, &req.StartDate, &req.TotalNights,
		&req.Adults, &req.Children, &req.HotelCategory, &req.TourType,
		&req.ContactName, &req.ContactEmail, &req.ContactPhone,
	)
	if err == sql.ErrNoRows {
		return models.ItineraryRequest{}, domain.NotFoundError{Resource: "itinerary"}
	}
	if err != nil {
		return models.ItineraryRequest{}, fmt.Errorf("get itinerary request: %w", err)
	}
	if raw := db.NullString(cityNights); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.CityNights); err != nil {
			// stored by us, but tolerate hand-edited rows
			req.CityNights = nil
		}
	}
	return req, nil
}
