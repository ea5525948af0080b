package formula

// ZIPLoadRequest holds the ZIP load model bases and coefficients. The
// constant-power shares are derived, c = 1-A-B for real power and
// f = 1-D-E for reactive power. A+B and D+E are not clamped to [0,1];
// out-of-range coefficients are evaluated as given.
type ZIPLoadRequest struct {
	P0 float64 // base real power, MW
	Q0 float64 // base reactive power, MVAr
	V0 float64 // base voltage, p.u.
	A  float64 // real constant-impedance share
	B  float64 // real constant-current share
	D  float64 // reactive constant-impedance share
	E  float64 // reactive constant-current share
}

// RealShares returns the real-power coefficient triple (a, b, c).
func (req ZIPLoadRequest) RealShares() (a, b, c float64) {
	return req.A, req.B, 1 - req.A - req.B
}

// ReactiveShares returns the reactive-power coefficient triple (d, e, f).
func (req ZIPLoadRequest) ReactiveShares() (d, e, f float64) {
	return req.D, req.E, 1 - req.D - req.E
}

// ZIPLoad evaluates the model at voltage v (p.u.):
//
//	P = P0 (a·r² + b·r + c)
//	Q = Q0 (d·r² + e·r + f)   with r = v / V0.
func ZIPLoad(req ZIPLoadRequest, v float64) (p, q float64) {
	r := v / req.V0
	a, b, c := req.RealShares()
	d, e, f := req.ReactiveShares()

	p = req.P0 * (a*r*r + b*r + c)
	q = req.Q0 * (d*r*r + e*r + f)
	return p, q
}
