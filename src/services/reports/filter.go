package reports

import (
	"strings"
	"time"

	"Backend-ECW-B2S/src/models"
)

// MatchAll is the wildcard the dashboard filter dropdowns submit.
const MatchAll = "all"

// Criteria narrows flat rows per the dashboard filter bar. An empty or "all"
// value always matches; date bounds are inclusive calendar dates.
type Criteria struct {
	Directorate string `query:"directorate"`
	Volunteer   string `query:"volunteer"`
	StartDate   string `query:"startDate"`
	EndDate     string `query:"endDate"`
}

// Filter returns the matching subsequence of rows, preserving order. Applying
// the same criteria to its own output returns the same rows.
func Filter(rows []models.FlatRow, c Criteria) []models.FlatRow {
	out := make([]models.FlatRow, 0, len(rows))
	for _, row := range rows {
		if c.matches(row) {
			out = append(out, row)
		}
	}
	return out
}

func (c Criteria) matches(row models.FlatRow) bool {
	if c.Directorate != "" && c.Directorate != MatchAll && row.Directorate != c.Directorate {
		return false
	}
	if c.Volunteer != "" && c.Volunteer != MatchAll && row.VolunteerName != c.Volunteer {
		return false
	}
	if c.StartDate == "" && c.EndDate == "" {
		return true
	}

	// A row whose date cannot be read is excluded only because a bound was
	// actually supplied; without bounds it passes above.
	day, ok := parseDay(row.ActivityDate)
	if !ok {
		return false
	}
	if start, ok := parseDay(c.StartDate); ok && day.Before(start) {
		return false
	}
	if end, ok := parseDay(c.EndDate); ok && day.After(end) {
		return false
	}
	return true
}

// parseDay reads the calendar-date prefix of an ISO 8601 value.
func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
