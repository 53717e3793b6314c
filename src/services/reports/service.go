package reports

import (
	"context"
	"sort"
	"time"

	"Backend-ECW-B2S/src/models"
	"Backend-ECW-B2S/src/services/submissions"
)

// DetailedDashboard is the filtered view: stats over the matching rows, the
// filter option lists (always drawn from the full dataset, so narrowing one
// filter never empties the others), and a page of the matching rows.
type DetailedDashboard struct {
	Stats        Stats                     `json:"stats"`
	Directorates []string                  `json:"directorates"`
	Volunteers   []string                  `json:"volunteers"`
	Rows         *models.PaginatedResponse `json:"rows"`
}

// Summary aggregates every submission for the overview dashboard.
func Summary(ctx context.Context) (Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	subs, err := submissions.GetAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Aggregate(FlattenAll(subs)), nil
}

// Detailed loads, flattens, filters, aggregates, and paginates in one pass
// for the detailed dashboard.
func Detailed(ctx context.Context, criteria Criteria, params models.PaginationParams) (*DetailedDashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	subs, err := submissions.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	all := FlattenAll(subs)
	filtered := Filter(all, criteria)

	params.Normalize()
	start, end := params.Bounds(len(filtered))

	return &DetailedDashboard{
		Stats:        Aggregate(filtered),
		Directorates: distinct(all, func(r models.FlatRow) string { return r.Directorate }),
		Volunteers:   distinct(all, func(r models.FlatRow) string { return r.VolunteerName }),
		Rows:         models.NewPaginatedResponse(filtered[start:end], int64(len(filtered)), params),
	}, nil
}

// FilteredRows flattens and filters the full dataset, for the exporters.
func FilteredRows(ctx context.Context, criteria Criteria) ([]models.FlatRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	subs, err := submissions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(FlattenAll(subs), criteria), nil
}

func distinct(rows []models.FlatRow, key func(models.FlatRow) string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, row := range rows {
		v := key(row)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
