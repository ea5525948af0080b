package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"engcalc/internal/formula"
)

func sampleResults() *Results {
	res := &Results{}
	res.Add("A", 1.0).Add("B", "x")
	return res
}

func TestCSVRoundTrips(t *testing.T) {
	out, err := CSV(sampleResults())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"A", "B"}, records[0])
	assert.Equal(t, []string{"1", "x"}, records[1])
}

func TestCSVPreservesInsertionOrder(t *testing.T) {
	res := &Results{}
	res.Add("Z", 3.0).Add("A", 1.0).Add("M", 2.0)

	out, err := CSV(res)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "A", "M"}, records[0])
	assert.Equal(t, []string{"3", "1", "2"}, records[1])
}

func TestCSVRejectsUnsupportedValue(t *testing.T) {
	res := &Results{}
	res.Add("A", struct{}{})

	out, err := CSV(res)
	require.ErrorIs(t, err, ErrSerialize)
	assert.Nil(t, out, "no partial output on failure")
}

func TestPDFOutput(t *testing.T) {
	out, err := PDF(sampleResults(), "Exported Results")
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "document must start with the PDF magic")
}

func TestPDFRejectsUnsupportedValue(t *testing.T) {
	res := &Results{}
	res.Add("A", []int{1, 2})

	out, err := PDF(res, "broken")
	require.ErrorIs(t, err, ErrSerialize)
	assert.Nil(t, out)
}

func TestPDFManyRowsFlowsAcrossPages(t *testing.T) {
	res := &Results{}
	for i := 0; i < 60; i++ {
		res.Add("Row", float64(i))
	}

	out, err := PDF(res, "Long Results")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.003809, Round(0.0038088, 6))
	assert.Equal(t, 1.5753, Round(1.575299832, 4))
	assert.Equal(t, -2.5, Round(-2.5004, 3))
}

func TestRenderCurve(t *testing.T) {
	curve := formula.SampleCurve(formula.ZIPLoadRequest{
		P0: 100, Q0: 50, V0: 1, A: 0.5, B: 0.3, D: 0.5, E: 0.3,
	})

	png, err := RenderCurve(curve, 1.0, FormatPNG)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")), "PNG magic header")

	pdf, err := RenderCurve(curve, 1.0, FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "PDF magic header")
}

func TestRenderCurveEmptyCurve(t *testing.T) {
	_, err := RenderCurve(nil, 1.0, FormatPNG)
	require.ErrorIs(t, err, ErrSerialize)
}

func TestRenderCurveUnknownFormat(t *testing.T) {
	curve := formula.SampleCurve(formula.ZIPLoadRequest{P0: 1, Q0: 1, V0: 1})
	_, err := RenderCurve(curve, 1.0, "bmp")
	require.ErrorIs(t, err, ErrSerialize)
}
