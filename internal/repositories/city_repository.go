package repositories

import (
	"database/sql"
	"fmt"
	"strings"
)

type CityRepository struct {
	DB *sql.DB
}

// SearchPrefix returns city names matching the prefix, capped at limit.
func (r CityRepository) SearchPrefix(prefix string, limit int) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.DB.Query(
		`SELECT name FROM cities WHERE name LIKE ? ORDER BY name ASC LIMIT ?`,
		escapeLike(prefix)+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search cities: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return replacer.Replace(s)
}
