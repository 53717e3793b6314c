package exports

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"Backend-ECW-B2S/src/models"
)

// Format selects the download encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Result is an encoded download.
type Result struct {
	Data     []byte
	Filename string
	MimeType string
}

type column struct {
	Header string
	Value  func(*models.FlatRow) string
}

// columns follows the flattener's field order exactly; every encoder walks
// this one table so CSV, XLSX, and PDF always agree.
var columns = buildColumns()

func buildColumns() []column {
	cols := []column{
		{"Submission", func(r *models.FlatRow) string { return r.SubKey }},
		{"Activity #", func(r *models.FlatRow) string { return strconv.Itoa(r.ActivityIndex) }},
		{"Directorate", func(r *models.FlatRow) string { return r.Directorate }},
		{"Volunteer", func(r *models.FlatRow) string { return r.VolunteerName }},
		{"Activity Date", func(r *models.FlatRow) string { return r.ActivityDate }},
		{"Activity Type", func(r *models.FlatRow) string { return r.ActivityType }},
		{"District / Area", func(r *models.FlatRow) string { return r.DistrictArea }},
	}
	for _, f := range models.CountFields {
		f := f
		cols = append(cols, column{
			Header: headerFor(f.Name),
			Value:  func(r *models.FlatRow) string { return strconv.Itoa(int(*f.Row(r))) },
		})
	}
	cols = append(cols, column{"Total Beneficiaries", func(r *models.FlatRow) string {
		return strconv.Itoa(int(r.TotalBeneficiaries))
	}})
	return cols
}

var headerNames = map[string]string{
	"sessions":        "Sessions",
	"iec_materials":   "IEC Materials",
	"girls_resident":  "Girls (Resident)",
	"girls_returnee":  "Girls (Returnee)",
	"girls_displaced": "Girls (Displaced)",
	"boys_resident":   "Boys (Resident)",
	"boys_returnee":   "Boys (Returnee)",
	"boys_displaced":  "Boys (Displaced)",
	"women_resident":  "Women (Resident)",
	"women_returnee":  "Women (Returnee)",
	"women_displaced": "Women (Displaced)",
	"men_resident":    "Men (Resident)",
	"men_returnee":    "Men (Returnee)",
	"men_displaced":   "Men (Displaced)",
}

func headerFor(name string) string {
	if h, ok := headerNames[name]; ok {
		return h
	}
	return name
}

// Headers returns the column titles in export order.
func Headers() []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = col.Header
	}
	return out
}

// Cells renders one row in export order.
func Cells(row *models.FlatRow) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = col.Value(row)
	}
	return out
}

// Export encodes rows in the requested format. Rows arrive already filtered,
// so whatever the view showed is what the file contains.
func Export(rows []models.FlatRow, format Format) (*Result, error) {
	name := fmt.Sprintf("activities_%s_%s",
		time.Now().UTC().Format("20060102_150405"), uuid.NewString()[:8])

	switch format {
	case FormatCSV:
		data, err := encodeCSV(rows)
		if err != nil {
			return nil, err
		}
		return &Result{Data: data, Filename: name + ".csv", MimeType: "text/csv"}, nil
	case FormatXLSX:
		data, err := encodeXLSX(rows)
		if err != nil {
			return nil, err
		}
		return &Result{
			Data:     data,
			Filename: name + ".xlsx",
			MimeType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}, nil
	case FormatPDF:
		data, err := encodePDF(rows)
		if err != nil {
			return nil, err
		}
		return &Result{Data: data, Filename: name + ".pdf", MimeType: "application/pdf"}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
