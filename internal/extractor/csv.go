package extractor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/ledgerlift/ledgerlift/internal/apperrors"
)

// ExtractCSVText renders CSV bytes as column-aligned plain text: cells joined
// by double spaces, one record per line. The statement parser then treats a
// CSV exactly like layout-preserved PDF text, header detection included.
func ExtractCSVText(data []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // bank CSVs have ragged rows
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: invalid CSV: %v", apperrors.ErrExtractionFailed, err)
	}
	if len(records) == 0 {
		return "", fmt.Errorf("%w: CSV file is empty", apperrors.ErrExtractionFailed)
	}

	var sb strings.Builder
	for _, record := range records {
		cells := make([]string, 0, len(record))
		for _, cell := range record {
			cells = append(cells, strings.TrimSpace(cell))
		}
		sb.WriteString(strings.Join(cells, "  "))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
