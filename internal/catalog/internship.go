package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Internship is a single opportunity in the catalog. The catalog is
// loaded once at startup and never mutated afterwards, so it is safe to
// share across concurrent recommendation requests.
type Internship struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Organization    string   `json:"organization"`
	Location        string   `json:"location"`
	EducationLevels []string `json:"education_levels"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	Description     string   `json:"description"`
	Compensation    string   `json:"compensation"`
	DeliveryMode    string   `json:"delivery_mode"`
}

// LoadInternships reads the internship catalog from a JSON file
// containing an array of internship records.
func LoadInternships(path string) ([]Internship, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var items []Internship
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	for i := range items {
		applyDefaults(&items[i])
	}
	return items, nil
}

func applyDefaults(it *Internship) {
	if it.Compensation == "" {
		it.Compensation = "Unknown"
	}
	if it.DeliveryMode == "" {
		it.DeliveryMode = "Unknown"
	}
}
