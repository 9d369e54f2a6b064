package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourapi/internal/domain/models"
	"tourapi/internal/wizard"
)

func TestHasCityRejectsBlankCities(t *testing.T) {
	// JSON bodies arrive as []any of map[string]any
	form := wizard.Form{"city_nights": []any{
		map[string]any{"city": "   ", "nights": 3},
	}}
	assert.False(t, hasCity(form))

	form["city_nights"] = []any{
		map[string]any{"city": "   ", "nights": 3},
		map[string]any{"city": "Istanbul", "nights": 2},
	}
	assert.True(t, hasCity(form))
}

func TestDecodeCityNightsFiltersEveryShape(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  int
	}{
		{"typed slice", []models.CityNights{{City: "Rome", Nights: 2}, {City: " "}}, 1},
		{"string slice", []string{"Rome", "", "Florence"}, 2},
		{"decoded json", []any{
			map[string]any{"city": "Rome", "nights": 2},
			map[string]any{"city": ""},
		}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := decodeCityNights(tc.input)
			require.True(t, ok)
			assert.Len(t, got, tc.want)
		})
	}

	_, ok := decodeCityNights("not a list")
	assert.False(t, ok)
}
