package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"tourapi/internal/db"
	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
)

type PackageRepository struct {
	DB *sql.DB
}

const packageColumns = `id, slug, title, destination, package_type, duration_days, COALESCE(summary, ''), pricing`

// List returns packages, optionally filtered by destination slug/name.
func (r PackageRepository) List(destination string) ([]models.TourPackage, error) {
	query := `SELECT ` + packageColumns + ` FROM packages`
	args := []any{}
	if destination != "" {
		query += ` WHERE destination = ?`
		args = append(args, destination)
	}
	query += ` ORDER BY title ASC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	out := []models.TourPackage{}
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pkg)
	}
	return out, rows.Err()
}

// GetBySlug loads one package for the detail page.
func (r PackageRepository) GetBySlug(slug string) (models.TourPackage, error) {
	row := r.DB.QueryRow(`SELECT `+packageColumns+` FROM packages WHERE slug = ? LIMIT 1`, slug)
	pkg, err := scanPackage(row)
	if err == sql.ErrNoRows {
		return models.TourPackage{}, domain.NotFoundError{Resource: "package"}
	}
	return pkg, err
}

// GetByID loads one package by primary key.
func (r PackageRepository) GetByID(id int64) (models.TourPackage, error) {
	row := r.DB.QueryRow(`SELECT `+packageColumns+` FROM packages WHERE id = ? LIMIT 1`, id)
	pkg, err := scanPackage(row)
	if err == sql.ErrNoRows {
		return models.TourPackage{}, domain.NotFoundError{Resource: "package"}
	}
	return pkg, err
}

// UpdatePricing replaces the pricing blob for a package.
func (r PackageRepository) UpdatePricing(id int64, pricing json.RawMessage) error {
	res, err := r.DB.Exec(`UPDATE packages SET pricing = ? WHERE id = ?`, db.NullIfEmpty(string(pricing)), id)
	if err != nil {
		return fmt.Errorf("update pricing: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row rowScanner) (models.TourPackage, error) {
	var pkg models.TourPackage
	var pricing sql.NullString
	err := row.Scan(
		&pkg.ID, &pkg.Slug, &pkg.Title, &pkg.Destination,
		&pkg.PackageType, &pkg.DurationDays, &pkg.Summary, &pricing,
	)
	if err != nil {
		return models.TourPackage{}, err
	}
	if s := db.NullString(pricing); s != "" {
		pkg.Pricing = json.RawMessage(s)
	}
	return pkg, nil
}
