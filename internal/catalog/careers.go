package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CareerRecord is one row of the career reference dataset. The hybrid
// recommender uses it to compute the rule-based alignment boost for a
// career label.
type CareerRecord struct {
	CandidateID       string
	Name              string
	Age               int
	Education         string
	Skills            string
	Interests         string
	RecommendedCareer string
	Score             float64
}

// Careers holds the career reference dataset, indexed by career label.
// When multiple rows share a label, the first row encountered is
// authoritative for boost computation.
type Careers struct {
	records []CareerRecord
	byLabel map[string]int
	labels  []string
}

// columnNames maps the dataset's original CSV headers to canonical
// names, mirroring the published column layout of the dataset.
var columnNames = map[string]string{
	"CandidateID":          "candidate_id",
	"Name":                 "name",
	"Age":                  "age",
	"Education":            "education",
	"Skills":               "skills",
	"Interests":            "interests",
	"Recommended_Career":   "recommended_career",
	"Recommendation_Score": "recommendation_score",
}

// LoadCareers reads the career reference dataset from a CSV file.
func LoadCareers(path string) (*Careers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open careers dataset: %w", err)
	}
	defer f.Close()

	return ParseCareers(f)
}

// ParseCareers parses the career reference dataset from CSV data.
func ParseCareers(r io.Reader) (*Careers, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read careers header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if canonical, ok := columnNames[name]; ok {
			name = canonical
		}
		columns[name] = i
	}
	if _, ok := columns["recommended_career"]; !ok {
		return nil, fmt.Errorf("careers dataset is missing the Recommended_Career column")
	}

	c := &Careers{byLabel: make(map[string]int)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read careers row: %w", err)
		}

		rec := CareerRecord{
			CandidateID:       field(row, columns, "candidate_id"),
			Name:              field(row, columns, "name"),
			Education:         field(row, columns, "education"),
			Skills:            field(row, columns, "skills"),
			Interests:         field(row, columns, "interests"),
			RecommendedCareer: field(row, columns, "recommended_career"),
		}
		if v := field(row, columns, "age"); v != "" {
			rec.Age, _ = strconv.Atoi(v)
		}
		if v := field(row, columns, "recommendation_score"); v != "" {
			rec.Score, _ = strconv.ParseFloat(v, 64)
		}
		if rec.RecommendedCareer == "" {
			continue
		}

		c.records = append(c.records, rec)
		if _, seen := c.byLabel[rec.RecommendedCareer]; !seen {
			c.byLabel[rec.RecommendedCareer] = len(c.records) - 1
			c.labels = append(c.labels, rec.RecommendedCareer)
		}
	}

	return c, nil
}

func field(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Len returns the number of rows in the dataset.
func (c *Careers) Len() int {
	return len(c.records)
}

// Labels returns the distinct career labels in first-seen order.
func (c *Careers) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// RecordFor returns the authoritative record for a career label, or nil
// when the label has no backing row.
func (c *Careers) RecordFor(label string) *CareerRecord {
	i, ok := c.byLabel[label]
	if !ok {
		return nil
	}
	return &c.records[i]
}
