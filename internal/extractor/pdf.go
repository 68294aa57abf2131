// Package extractor converts uploaded document bytes into plain statement
// text for the parser. Extraction fidelity is best-effort: the parser is
// designed to survive whatever whitespace this produces.
package extractor

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ledgerlift/ledgerlift/internal/apperrors"
)

// ExtractPDFText pulls plain text out of PDF bytes, trying row-based
// extraction first (best layout preservation), then coordinate-based row
// reconstruction, then plain-text extraction. Returns ErrExtractionFailed
// when nothing readable comes out.
func ExtractPDFText(data []byte) (string, error) {
	text, err := extractWithLibrary(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrExtractionFailed, err)
	}
	if !isReadableText(text) {
		return "", fmt.Errorf("%w: PDF yielded no readable text; it may be image-based or use undecodable font encodings", apperrors.ErrExtractionFailed)
	}
	return text, nil
}

func extractWithLibrary(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	numPages := reader.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	if text := extractByRow(reader, numPages); isReadableText(text) {
		return text, nil
	}
	if text := extractByContent(reader, numPages); isReadableText(text) {
		return text, nil
	}
	return extractPlainText(reader)
}

// extractByRow uses GetTextByRow, joining words with double spaces so the
// parser's column-splitting heuristic can see the gaps.
func extractByRow(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, "  "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n\n")
}

// extractByContent reconstructs rows from raw text objects by grouping on Y
// coordinate and sorting by X, inserting column gaps where text items sit
// far apart horizontally.
func extractByContent(r *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		type textItem struct {
			x float64
			s string
		}
		rowMap := make(map[int][]textItem)
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			yKey := int(math.Round(t.Y))
			rowMap[yKey] = append(rowMap[yKey], textItem{x: t.X, s: t.S})
		}

		yKeys := make([]int, 0, len(rowMap))
		for y := range rowMap {
			yKeys = append(yKeys, y)
		}
		// PDF Y grows bottom-to-top, so rows sort descending.
		sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

		var lines []string
		for _, y := range yKeys {
			items := rowMap[y]
			sort.Slice(items, func(a, b int) bool { return items[a].x < items[b].x })

			var sb strings.Builder
			var prevX float64
			for j, item := range items {
				if j > 0 && item.x-prevX > 15 {
					sb.WriteString("  ")
				}
				sb.WriteString(item.s)
				prevX = item.x
			}
			if line := strings.TrimSpace(sb.String()); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n\n")
}

func extractPlainText(r *pdf.Reader) (string, error) {
	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// isReadableText guards against identity-encoded font garbage: enough
// length, mostly readable ASCII, and at least one word every bank statement
// contains.
func isReadableText(text string) bool {
	if len(strings.TrimSpace(text)) <= 50 {
		return false
	}
	if textQuality(text) <= 0.6 {
		return false
	}
	return containsCommonWords(text)
}

func textQuality(text string) float64 {
	total := 0
	readable := 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
			r == ' ' || r == '\n' || r == '\t' || r == '\r' ||
			strings.ContainsRune(".,-/:;()'\"£$€%&@#!?+=*", r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

var commonWords = []string{
	"bank", "account", "balance", "date", "payment", "statement",
	"total", "amount", "credit", "debit", "transaction", "sort code",
	"money", "paid", "opening", "closing", "transfer",
}

func containsCommonWords(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range commonWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
