package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mariana/talent-hub/internal/db"
)

// csvHeader is the column order of the CSV export.
var csvHeader = []string{
	"id", "name", "email", "phone", "status", "fit_score",
	"application_date", "skills", "summary",
}

// WriteCSV writes candidates as CSV. Fields containing commas, quotes, or
// newlines are quoted per RFC 4180.
func WriteCSV(w io.Writer, candidates []*db.Candidate) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range candidates {
		record := []string{
			c.ID.String(),
			c.Name,
			c.Resume.Contact.Email,
			c.Resume.Contact.Phone,
			c.Status,
			strconv.FormatFloat(c.FitScore, 'f', -1, 64),
			c.ApplicationDate.Format("2006-01-02"),
			strings.Join(c.Skills, "; "),
			c.Summary,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write candidate %s: %w", c.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
