package repositories

import (
	"database/sql"
	"fmt"

	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

// InsertWithPassengers writes the booking and all passenger rows in one
// transaction. Partial saves are not allowed: any failure rolls everything
// back.
func (r BookingRepository) InsertWithPassengers(b models.Booking) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO bookings
			(reference_number, package_id, travel_date, adults, children_3_5,
			 children_6_10, hotel_category, contact_name, contact_email,
			 contact_phone, total_price, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ReferenceNumber, b.PackageID, b.TravelDate, b.Adults, b.Children3To5,
		b.Children6To10, b.HotelCategory, b.ContactName, b.ContactEmail,
		b.ContactPhone, b.TotalPrice, b.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	bookingID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, p := range b.Passengers {
		if _, err := tx.Exec(`
			INSERT INTO booking_passengers
				(booking_id, passenger_type, first_name, middle_name, last_name,
				 date_of_birth, gender, nationality, passport_number,
				 passport_expiry, passport_country)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			bookingID, p.PassengerType, p.FirstName, p.MiddleName, p.LastName,
			p.DateOfBirth, p.Gender, p.Nationality, p.PassportNumber,
			p.PassportExpiry, p.PassportCountry,
		); err != nil {
			return 0, fmt.Errorf("insert passenger: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit booking tx: %w", err)
	}
	return bookingID, nil
}

// GetByReference loads a booking with its passengers and package title.
func (r BookingRepository) GetByReference(ref string) (models.Booking, error) {
	var b models.Booking
	err := r.DB.QueryRow(`
		SELECT b.id, b.reference_number, b.package_id, COALESCE(p.title, ''),
			b.travel_date, b.adults, b.children_3_5, b.children_6_10,
			b.hotel_category, b.contact_name, b.contact_email, b.contact_phone,
			b.total_price, b.status
		FROM bookings b
		LEFT JOIN packages p ON p.id = b.package_id
		WHERE b.reference_number = ? LIMIT 1`, ref).Scan(
		&b.ID, &b.ReferenceNumber, &b.PackageID, &b.PackageTitle,
		&b.TravelDate, &b.Adults, &b.Children3To5, &b.Children6To10,
		&b.HotelCategory, &b.ContactName, &b.ContactEmail, &b.ContactPhone,
		&b.TotalPrice, &b.Status,
	)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.Booking{}, fmt.Errorf("get booking: %w", err)
	}

	rows, err := r.DB.Query(`
		SELECT id, booking_id, passenger_type, first_name, middle_name,
			last_name, date_of_birth, gender, nationality, passport_number,
			passport_expiry, passport_country
		FROM booking_passengers WHERE booking_id = ? ORDER BY id ASC`, b.ID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("get passengers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(
			&p.ID, &p.BookingID, &p.PassengerType, &p.FirstName, &p.MiddleName,
			&p.LastName, &p.DateOfBirth, &p.Gender, &p.Nationality,
			&p.PassportNumber, &p.PassportExpiry, &p.PassportCountry,
		); err != nil {
			return models.Booking{}, err
		}
		b.Passengers = append(b.Passengers, p)
	}
	return b, rows.Err()
}
