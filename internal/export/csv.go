package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSV renders the result set as a two-row UTF-8 CSV document: a header
// row of labels and a data row of values, in insertion order.
func CSV(res *Results) ([]byte, error) {
	header := make([]string, 0, res.Len())
	row := make([]string, 0, res.Len())

	for _, p := range res.Pairs() {
		s, err := formatValue(p.Value)
		if err != nil {
			return nil, err
		}
		header = append(header, p.Label)
		row = append(row, s)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll([][]string{header, row}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return buf.Bytes(), nil
}
