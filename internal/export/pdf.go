package export

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"
)

// PDF renders the result set as a portrait A4 document: a centered bold
// title, a gap, then one "label: value" body line per pair in insertion
// order. Result sets longer than a page flow onto further pages.
func PDF(res *Results, title string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	doc.Ln(10)

	doc.SetFont("Arial", "", 12)
	for _, p := range res.Pairs() {
		s, err := formatValue(p.Value)
		if err != nil {
			return nil, err
		}
		doc.CellFormat(0, 10, fmt.Sprintf("%s: %s", p.Label, s), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return buf.Bytes(), nil
}
