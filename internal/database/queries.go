package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/internmatch/internmatch/internal/catalog"
)

// listSeparator joins multi-valued text attributes into a single
// column. The token normalizer treats ";" as a separator, so values
// survive the round trip.
const listSeparator = "; "

// ImportInternships replaces the stored catalog with the given items,
// preserving their order.
func (db *DB) ImportInternships(ctx context.Context, items []catalog.Internship) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM internships`); err != nil {
			return fmt.Errorf("clear internships: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO internships (
				id, title, organization, location, education_levels,
				skills, interests, description, compensation, delivery_mode, position
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, item := range items {
			_, err := stmt.ExecContext(ctx,
				item.ID,
				item.Title,
				item.Organization,
				item.Location,
				joinList(item.EducationLevels),
				joinList(item.Skills),
				joinList(item.Interests),
				item.Description,
				item.Compensation,
				item.DeliveryMode,
				i,
			)
			if err != nil {
				return fmt.Errorf("insert internship %s: %w", item.ID, err)
			}
		}

		return nil
	})
}

// ListInternships returns the stored catalog in import order.
func (db *DB) ListInternships(ctx context.Context) ([]catalog.Internship, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, organization, location, education_levels,
		       skills, interests, description, compensation, delivery_mode
		FROM internships
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query internships: %w", err)
	}
	defer rows.Close()

	var items []catalog.Internship
	for rows.Next() {
		var it catalog.Internship
		var educationLevels, skills, interests string
		err := rows.Scan(
			&it.ID, &it.Title, &it.Organization, &it.Location,
			&educationLevels, &skills, &interests,
			&it.Description, &it.Compensation, &it.DeliveryMode,
		)
		if err != nil {
			return nil, fmt.Errorf("scan internship: %w", err)
		}
		it.EducationLevels = splitList(educationLevels)
		it.Skills = splitList(skills)
		it.Interests = splitList(interests)
		items = append(items, it)
	}

	return items, rows.Err()
}

// CountInternships returns the number of stored catalog entries.
func (db *DB) CountInternships(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM internships`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count internships: %w", err)
	}
	return count, nil
}

func joinList(items []string) string {
	return strings.Join(items, listSeparator)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
