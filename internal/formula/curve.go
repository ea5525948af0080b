package formula

// Voltage sweep used for plotting the ZIP response.
const (
	CurveVMin    = 0.5
	CurveVMax    = 1.5
	CurveSamples = 200
)

// CurvePoint is one (voltage, P, Q) sample of the ZIP response.
type CurvePoint struct {
	V float64
	P float64
	Q float64
}

// SampleCurve evaluates the ZIP model at CurveSamples evenly spaced
// voltages spanning [CurveVMin, CurveVMax], both endpoints included,
// in strictly increasing voltage order.
func SampleCurve(req ZIPLoadRequest) []CurvePoint {
	pts := make([]CurvePoint, CurveSamples)
	step := (CurveVMax - CurveVMin) / float64(CurveSamples-1)

	for i := range pts {
		v := CurveVMin + float64(i)*step
		if i == CurveSamples-1 {
			v = CurveVMax // pin the endpoint against accumulated rounding
		}
		p, q := ZIPLoad(req, v)
		pts[i] = CurvePoint{V: v, P: p, Q: q}
	}
	return pts
}
