package formula

import "fmt"

// PerUnitRequest describes a transmission line by its system bases and
// per-kilometer parameters.
type PerUnitRequest struct {
	BaseMVA  float64 // system apparent power base, MVA
	BaseKV   float64 // line-to-line voltage base, kV
	LengthKm float64 // line length, km
	RPerKm   float64 // resistance, ohm/km
	XPerKm   float64 // reactance, ohm/km
	BPerKm   float64 // susceptance, S/km
}

// PerUnitResult carries the line totals and their per-unit values at full
// precision. Callers that display or export the values round them to six
// decimal places.
type PerUnitResult struct {
	ZBase  float64 // impedance base, ohm
	YBase  float64 // admittance base, S
	RTotal float64 // ohm
	XTotal float64 // ohm
	BTotal float64 // S
	RPu    float64
	XPu    float64
	BPu    float64
}

// PerUnit normalizes the line parameters against the system bases:
// ZBase = BaseKV² / BaseMVA and YBase = 1/ZBase, totals are the per-km
// values scaled by length, and R and X convert against ZBase. Susceptance
// converts against the admittance base, BPu = BTotal / YBase, which is
// algebraically BTotal × ZBase.
//
// Fails with ErrDivisionByZero when BaseMVA is zero.
func PerUnit(req PerUnitRequest) (PerUnitResult, error) {
	if req.BaseMVA == 0 {
		return PerUnitResult{}, fmt.Errorf("per-unit: base %g MVA: %w", req.BaseMVA, ErrDivisionByZero)
	}

	zBase := req.BaseKV * req.BaseKV / req.BaseMVA
	yBase := 1 / zBase

	res := PerUnitResult{
		ZBase:  zBase,
		YBase:  yBase,
		RTotal: req.RPerKm * req.LengthKm,
		XTotal: req.XPerKm * req.LengthKm,
		BTotal: req.BPerKm * req.LengthKm,
	}
	res.RPu = res.RTotal / zBase
	res.XPu = res.XTotal / zBase
	res.BPu = res.BTotal / yBase

	return res, nil
}
