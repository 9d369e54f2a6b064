package repositories

import (
	"database/sql"
	"fmt"

	"tourapi/internal/domain/models"
)

type InquiryRepository struct {
	DB *sql.DB
}

// Insert stores an inquiry with its pre-formatted message body.
func (r InquiryRepository) Insert(inq models.Inquiry) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO inquiries (name, email, phone, country, subject, message)
		VALUES (?, ?, ?, ?, ?, ?)`,
		inq.Name, inq.Email, inq.Phone, inq.Country, inq.Subject, inq.Message,
	)
	if err != nil {
		return 0, fmt.Errorf("insert inquiry: %w", err)
	}
	return res.LastInsertId()
}
