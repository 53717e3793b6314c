package reports

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-ECW-B2S/src/models"
)

func TestFlattenOne(t *testing.T) {
	t.Run("OneRowPerActivity", func(t *testing.T) {
		sub := models.Submission{
			Directorate:   "Aden",
			VolunteerName: "V. Saleh",
			Activities: []models.Activity{
				{ActivityType: "Awareness session", ActivityDate: "2025-08-20", GirlsResident: 3},
				{ActivityType: "Referral", ActivityDate: "2025-08-21", BoysReturnee: 2},
			},
		}

		rows := FlattenOne("sub-1", sub)
		require.Len(t, rows, 2)

		assert.Equal(t, "sub-1", rows[0].SubKey)
		assert.Equal(t, 0, rows[0].ActivityIndex)
		assert.Equal(t, 1, rows[1].ActivityIndex)
		assert.Equal(t, "Aden", rows[0].Directorate)
		assert.Equal(t, "V. Saleh", rows[1].VolunteerName)
		assert.Equal(t, models.Count(3), rows[0].GirlsResident)
		assert.Equal(t, models.Count(3), rows[0].TotalBeneficiaries)
		assert.Equal(t, models.Count(2), rows[1].TotalBeneficiaries)
	})

	t.Run("NoActivitiesNoRows", func(t *testing.T) {
		assert.Empty(t, FlattenOne("sub-1", models.Submission{Directorate: "Aden"}))
	})

	t.Run("BlankStringsBecomeDash", func(t *testing.T) {
		sub := models.Submission{Activities: []models.Activity{{}}}
		rows := FlattenOne("sub-1", sub)
		require.Len(t, rows, 1)

		assert.Equal(t, "-", rows[0].Directorate)
		assert.Equal(t, "-", rows[0].VolunteerName)
		assert.Equal(t, "-", rows[0].ActivityDate)
		assert.Equal(t, "-", rows[0].ActivityType)
		assert.Equal(t, "-", rows[0].DistrictArea)
	})
}

func TestFlattenAll(t *testing.T) {
	subs := map[string]models.Submission{
		"b": {Directorate: "Taiz", Activities: []models.Activity{{ActivityType: "Referral"}}},
		"a": {Directorate: "Aden", Activities: []models.Activity{
			{ActivityType: "Session"}, {ActivityType: "Session"},
		}},
		"c": {Directorate: "Ibb"}, // no activities
	}

	rows := FlattenAll(subs)
	require.Len(t, rows, 3)

	// sorted by key, activity order preserved inside a submission
	assert.Equal(t, "a", rows[0].SubKey)
	assert.Equal(t, 0, rows[0].ActivityIndex)
	assert.Equal(t, "a", rows[1].SubKey)
	assert.Equal(t, 1, rows[1].ActivityIndex)
	assert.Equal(t, "b", rows[2].SubKey)

	// the bulk path and the single path agree row for row
	assert.Equal(t, FlattenOne("a", subs["a"]), rows[:2])
}

// The whole pipeline from a raw JSON snapshot (counters as form text) to
// flattened rows: parse coerces, flatten copies, totals derive.
func TestFlattenFromRawJSON(t *testing.T) {
	payload := `{
		"directorate": "Aden",
		"volunteer_name": "V. Saleh",
		"activities": [{
			"activity_type": "Back to School session",
			"district_area": "Al-Mansura",
			"activity_date": "2025-08-20",
			"sessions": "1",
			"iec_materials": "",
			"girls_resident": "3",
			"boys_resident": "2",
			"women_resident": "junk"
		}]
	}`

	var sub models.Submission
	require.NoError(t, json.Unmarshal([]byte(payload), &sub))

	rows := FlattenOne("sub-1", sub)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, models.Count(1), row.Sessions)
	assert.Equal(t, models.Count(0), row.IECMaterials)
	assert.Equal(t, models.Count(3), row.GirlsResident)
	assert.Equal(t, models.Count(2), row.BoysResident)
	assert.Equal(t, models.Count(0), row.WomenResident)
	assert.Equal(t, models.Count(5), row.TotalBeneficiaries)
}
