package exports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Backend-ECW-B2S/src/models"
)

func exportRows() []models.FlatRow {
	return []models.FlatRow{
		{
			SubKey: "sub-1", ActivityIndex: 0,
			Directorate: "Aden", VolunteerName: "Huda",
			ActivityDate: "2025-08-20", ActivityType: "Session", DistrictArea: "Al-Mansura",
			Sessions: 2, IECMaterials: 30, GirlsResident: 3, BoysReturnee: 2,
			TotalBeneficiaries: 5,
		},
		{
			SubKey: "sub-2", ActivityIndex: 1,
			Directorate: "Taiz", VolunteerName: "Sami",
			ActivityDate: "2025-08-21", ActivityType: "Referral", DistrictArea: "-",
			WomenDisplaced: 4, TotalBeneficiaries: 4,
		},
	}
}

func TestColumns(t *testing.T) {
	headers := Headers()

	// 7 identity/label columns + 14 counters + the derived total
	require.Len(t, headers, 22)
	assert.Equal(t, "Submission", headers[0])
	assert.Equal(t, "District / Area", headers[6])
	assert.Equal(t, "Sessions", headers[7])
	assert.Equal(t, "Girls (Resident)", headers[9])
	assert.Equal(t, "Total Beneficiaries", headers[21])

	row := exportRows()[0]
	cells := Cells(&row)
	require.Len(t, cells, len(headers))
	assert.Equal(t, "sub-1", cells[0])
	assert.Equal(t, "0", cells[1])
	assert.Equal(t, "Aden", cells[2])
	assert.Equal(t, "2", cells[7])  // sessions
	assert.Equal(t, "3", cells[9])  // girls resident
	assert.Equal(t, "5", cells[21]) // total
}

func TestEncodeCSV(t *testing.T) {
	data, err := encodeCSV(exportRows())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Headers(), records[0])
	assert.Equal(t, "sub-1", records[1][0])
	assert.Equal(t, "Huda", records[1][3])
	assert.Equal(t, "4", records[2][21])
}

func TestEncodeXLSX(t *testing.T) {
	data, err := encodeXLSX(exportRows())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Activities"}, f.GetSheetList())

	xlsxRows, err := f.GetRows("Activities")
	require.NoError(t, err)
	require.Len(t, xlsxRows, 3)

	assert.Equal(t, "Submission", xlsxRows[0][0])
	assert.Equal(t, "sub-1", xlsxRows[1][0])
	assert.Equal(t, "Referral", xlsxRows[2][5])
}

func TestRenderHTML(t *testing.T) {
	html, err := renderHTML(exportRows())
	require.NoError(t, err)

	assert.Contains(t, html, "Volunteer Activities")
	assert.Contains(t, html, "2 activities")
	assert.Contains(t, html, "<th>Sessions</th>")
	assert.Contains(t, html, "<td>Al-Mansura</td>")
	assert.Contains(t, html, "<td>Sami</td>")
}

func TestExport(t *testing.T) {
	t.Run("CSV", func(t *testing.T) {
		res, err := Export(exportRows(), FormatCSV)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(res.Filename, "activities_"))
		assert.True(t, strings.HasSuffix(res.Filename, ".csv"))
		assert.Equal(t, "text/csv", res.MimeType)
		assert.NotEmpty(t, res.Data)
	})

	t.Run("XLSX", func(t *testing.T) {
		res, err := Export(exportRows(), FormatXLSX)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(res.Filename, ".xlsx"))
		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			res.MimeType)
	})

	t.Run("FilenamesAreUnique", func(t *testing.T) {
		a, err := Export(nil, FormatCSV)
		require.NoError(t, err)
		b, err := Export(nil, FormatCSV)
		require.NoError(t, err)
		assert.NotEqual(t, a.Filename, b.Filename)
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := Export(exportRows(), Format("docx"))
		assert.Error(t, err)
	})
}
