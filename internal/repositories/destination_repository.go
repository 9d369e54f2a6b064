package repositories

import (
	"database/sql"
	"fmt"

	"tourapi/internal/domain/models"
)

type DestinationRepository struct {
	DB *sql.DB
}

// List returns browsable destinations with their package counts.
func (r DestinationRepository) List() ([]models.Destination, error) {
	rows, err := r.DB.Query(`
		SELECT d.id, d.slug, d.name, d.country, COALESCE(d.summary, ''),
			(SELECT COUNT(*) FROM packages p WHERE p.destination = d.slug)
		FROM destinations d
		ORDER BY d.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Slug, &d.Name, &d.Country, &d.Summary, &d.PackageCount); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
