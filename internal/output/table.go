package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/internmatch/internmatch/internal/match"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []match.Recommendation:
		return recommendationsTable(w, v)
	case []match.CareerSuggestion:
		return suggestionsTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func recommendationsTable(w io.Writer, recs []match.Recommendation) error {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No matches found. Try broadening your skills or location keywords.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Title", "Organization", "Location", "Score", "Why"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, rec := range recs {
		table.Append([]string{
			strconv.Itoa(i + 1),
			rec.Internship.Title,
			rec.Internship.Organization,
			rec.Internship.Location,
			fmt.Sprintf("%.2f", rec.Score),
			rec.Explanation(),
		})
	}

	table.Render()
	return nil
}

func suggestionsTable(w io.Writer, suggestions []match.CareerSuggestion) error {
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "No career suggestions for this profile.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Career", "Score", "Rationale"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, s := range suggestions {
		table.Append([]string{
			strconv.Itoa(i + 1),
			s.Career,
			fmt.Sprintf("%.2f", s.Score),
			s.Rationale,
		})
	}

	table.Render()
	return nil
}
