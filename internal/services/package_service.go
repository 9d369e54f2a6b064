package services

import (
	"encoding/json"

	"tourapi/internal/domain"
	"tourapi/internal/domain/models"
	"tourapi/internal/pricing"
	"tourapi/internal/repositories"
	"tourapi/internal/utils"
)

type PackageService struct {
	PackageRepo     repositories.PackageRepository
	DestinationRepo repositories.DestinationRepository
	RequestID       string
}

// List returns packages with their display price resolved once at load.
// The raw pricing blob stays server-side on list pages.
func (s PackageService) List(destination string) ([]models.TourPackage, error) {
	pkgs, err := s.PackageRepo.List(destination)
	if err != nil {
		return nil, err
	}
	for i := range pkgs {
		norm := pricing.Normalize(pkgs[i].Pricing)
		pkgs[i].DisplayPrice = norm.DisplayPrice
		pkgs[i].PricingShape = string(norm.Shape)
		pkgs[i].Pricing = nil
	}
	return pkgs, nil
}

// Get returns one package with resolved price and the raw blob included,
// which the detail page needs to show the full rate table.
func (s PackageService) Get(slug string) (models.TourPackage, error) {
	pkg, err := s.PackageRepo.GetBySlug(slug)
	if err != nil {
		return models.TourPackage{}, err
	}
	norm := pricing.Normalize(pkg.Pricing)
	pkg.DisplayPrice = norm.DisplayPrice
	pkg.PricingShape = string(norm.Shape)
	return pkg, nil
}

// Destinations lists browsable destinations.
func (s PackageService) Destinations() ([]models.Destination, error) {
	return s.DestinationRepo.List()
}

// UpdatePricing replaces a package's pricing blob after a shape sanity
// check: the new blob must be valid JSON and classify to a known shape.
func (s PackageService) UpdatePricing(id int64, raw json.RawMessage) (pricing.Normalized, error) {
	if id <= 0 {
		return pricing.Normalized{}, domain.ValidationError{Field: "id", Msg: "invalid package id"}
	}
	var probe map[string]any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return pricing.Normalized{}, domain.ValidationError{Field: "pricing", Msg: "pricing must be a JSON object"}
	}
	norm := pricing.Normalize(probe)
	if norm.Shape == pricing.ShapeUnknown {
		return norm, domain.ValidationError{Field: "pricing", Msg: "pricing matches no known shape"}
	}
	if err := s.PackageRepo.UpdatePricing(id, raw); err != nil {
		return norm, err
	}
	utils.LogEvent(s.RequestID, "packages", "update_pricing", "shape="+string(norm.Shape))
	return norm, nil
}
