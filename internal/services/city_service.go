package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"tourapi/internal/cache"
	"tourapi/internal/repositories"
	"tourapi/internal/utils"
)

// MinSearchLen is the autocomplete threshold: shorter queries return an
// empty list without touching the database.
const MinSearchLen = 2

const cityCacheTTL = 5 * time.Minute

type CityService struct {
	CityRepo  repositories.CityRepository
	Cache     cache.Cache // optional; nil means DB-only
	RequestID string
}

// Search returns city names for the autocomplete box, reading through the
// cache when one is configured. Cache failures degrade to the DB silently.
func (s CityService) Search(ctx context.Context, query string) ([]string, error) {
	query = utils.NormalizeSpace(query)
	if len([]rune(query)) < MinSearchLen {
		return []string{}, nil
	}

	key := "cities:" + strings.ToLower(query)
	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, key)
		if err == nil {
			var cached []string
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		} else if !cache.IsMiss(err) {
			// a broken cache degrades to the DB, a miss is silent
			utils.LogError(s.RequestID, "cities", "cache_get", err)
		}
	}

	cities, err := s.CityRepo.SearchPrefix(query, 10)
	if err != nil {
		utils.LogError(s.RequestID, "cities", "search", err)
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(cities); err == nil {
			_ = s.Cache.Set(ctx, key, string(raw), cityCacheTTL)
		}
	}
	return cities, nil
}
