package reports

import (
	"time"

	"Backend-ECW-B2S/src/models"
)

// BeneficiaryTotals splits beneficiaries by gender, each summed across
// resident + returnee + displaced.
type BeneficiaryTotals struct {
	Girls int `json:"girls"`
	Boys  int `json:"boys"`
	Women int `json:"women"`
	Men   int `json:"men"`
}

// Stats is everything the dashboard cards and charts need.
type Stats struct {
	TotalRecords         int               `json:"totalRecords"`
	TodayRecords         int               `json:"todayRecords"`
	TotalBeneficiaries   int               `json:"totalBeneficiaries"`
	TotalVolunteers      int               `json:"totalVolunteers"`
	TotalDirectorates    int               `json:"totalDirectorates"`
	CountsByDirectorate  map[string]int    `json:"countsByDirectorate"`
	CountsByActivityType map[string]int    `json:"countsByActivityType"`
	BeneficiaryTotals    BeneficiaryTotals `json:"beneficiaryTotals"`
}

// Aggregate computes Stats over rows against today's UTC date.
func Aggregate(rows []models.FlatRow) Stats {
	return AggregateAt(rows, time.Now().UTC().Format("2006-01-02"))
}

// AggregateAt is Aggregate with an injectable "today". Pure: empty input
// yields zero counts and empty maps, and the result is the same whether rows
// came from a full reload or were reassembled from filtered subsets.
func AggregateAt(rows []models.FlatRow, today string) Stats {
	stats := Stats{
		CountsByDirectorate:  map[string]int{},
		CountsByActivityType: map[string]int{},
	}
	volunteers := map[string]struct{}{}
	directorates := map[string]struct{}{}

	for i := range rows {
		row := &rows[i]
		stats.TotalRecords++
		if row.ActivityDate == today {
			stats.TodayRecords++
		}
		volunteers[row.VolunteerName] = struct{}{}
		directorates[row.Directorate] = struct{}{}
		stats.CountsByDirectorate[row.Directorate]++
		stats.CountsByActivityType[row.ActivityType]++
		stats.TotalBeneficiaries += int(row.TotalBeneficiaries)

		for _, f := range models.BeneficiaryFields {
			n := int(*f.Row(row))
			switch f.Gender {
			case "girls":
				stats.BeneficiaryTotals.Girls += n
			case "boys":
				stats.BeneficiaryTotals.Boys += n
			case "women":
				stats.BeneficiaryTotals.Women += n
			case "men":
				stats.BeneficiaryTotals.Men += n
			}
		}
	}

	stats.TotalVolunteers = len(volunteers)
	stats.TotalDirectorates = len(directorates)
	return stats
}
