package export

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"engcalc/internal/formula"
)

// Plot output formats accepted by RenderCurve.
const (
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// RenderCurve draws the sampled P(V) and Q(V) curves with a dashed red
// marker at the operating voltage and encodes the figure in the given
// format, FormatPNG or FormatPDF.
func RenderCurve(curve []formula.CurvePoint, operatingV float64, format string) ([]byte, error) {
	if len(curve) == 0 {
		return nil, fmt.Errorf("%w: empty curve", ErrSerialize)
	}

	p := plot.New()
	p.X.Label.Text = "Voltage (p.u.)"
	p.Y.Label.Text = "Power (MW / MVAr)"

	pxy := make(plotter.XYs, len(curve))
	qxy := make(plotter.XYs, len(curve))
	for i, pt := range curve {
		pxy[i] = plotter.XY{X: pt.V, Y: pt.P}
		qxy[i] = plotter.XY{X: pt.V, Y: pt.Q}
	}

	pLine, err := plotter.NewLine(pxy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	pLine.Color = color.RGBA{B: 255, A: 255}

	qLine, err := plotter.NewLine(qxy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	qLine.Color = color.RGBA{G: 160, A: 255}

	marker, err := operatingLine(curve, operatingV)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	p.Add(pLine, qLine, marker)
	p.Legend.Add("P(V)", pLine)
	p.Legend.Add("Q(V)", qLine)
	p.Legend.Add("Operating V", marker)

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return buf.Bytes(), nil
}

// operatingLine builds the dashed vertical marker spanning the vertical
// extent of the plotted data at voltage v.
func operatingLine(curve []formula.CurvePoint, v float64) (*plotter.Line, error) {
	yMin, yMax := curve[0].P, curve[0].P
	for _, pt := range curve {
		for _, y := range [2]float64{pt.P, pt.Q} {
			if y < yMin {
				yMin = y
			}
			if y > yMax {
				yMax = y
			}
		}
	}

	line, err := plotter.NewLine(plotter.XYs{{X: v, Y: yMin}, {X: v, Y: yMax}})
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{R: 255, A: 255}
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	return line, nil
}
