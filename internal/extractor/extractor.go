package extractor

import (
	"fmt"

	"github.com/ledgerlift/ledgerlift/internal/apperrors"
	"github.com/ledgerlift/ledgerlift/internal/core/domain"
)

// ExtractText converts raw document bytes into statement text according to
// the declared media type.
func ExtractText(data []byte, mediaType domain.MediaType) (string, error) {
	switch mediaType {
	case domain.MediaPDF:
		return ExtractPDFText(data)
	case domain.MediaCSV:
		return ExtractCSVText(data)
	case domain.MediaText:
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: unsupported media type %q", apperrors.ErrValidation, mediaType)
	}
}
