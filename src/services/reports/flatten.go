package reports

import (
	"sort"

	"Backend-ECW-B2S/src/models"
)

// FlattenOne projects a single submission into flat rows, one per activity.
// A submission with no activities contributes no rows.
func FlattenOne(subKey string, sub models.Submission) []models.FlatRow {
	if len(sub.Activities) == 0 {
		return nil
	}
	rows := make([]models.FlatRow, 0, len(sub.Activities))
	for i := range sub.Activities {
		rows = append(rows, flatRow(subKey, i, &sub, &sub.Activities[i]))
	}
	return rows
}

// FlattenAll projects the full id→submission mapping. Output is sorted by
// submission key then activity index so a full reload is deterministic; the
// per-row content is identical to what FlattenOne produces for the same
// submission, which is what lets the grid patch incrementally.
func FlattenAll(subs map[string]models.Submission) []models.FlatRow {
	keys := make([]string, 0, len(subs))
	for key := range subs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rows []models.FlatRow
	for _, key := range keys {
		rows = append(rows, FlattenOne(key, subs[key])...)
	}
	return rows
}

func flatRow(subKey string, index int, sub *models.Submission, act *models.Activity) models.FlatRow {
	row := models.FlatRow{
		SubKey:             subKey,
		ActivityIndex:      index,
		Directorate:        orDash(sub.Directorate),
		VolunteerName:      orDash(sub.VolunteerName),
		ActivityDate:       orDash(act.ActivityDate),
		ActivityType:       orDash(act.ActivityType),
		DistrictArea:       orDash(act.DistrictArea),
		TotalBeneficiaries: act.TotalBeneficiaries(),
	}
	for _, f := range models.CountFields {
		*f.Row(&row) = *f.Field(act)
	}
	return row
}

// orDash keeps blank cells visible in tables and exports.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
