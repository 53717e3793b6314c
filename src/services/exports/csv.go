package exports

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"Backend-ECW-B2S/src/models"
)

func encodeCSV(rows []models.FlatRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Headers()); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := range rows {
		if err := w.Write(Cells(&rows[i])); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
